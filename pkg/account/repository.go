package account

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository defines the interface for credential store operations
type AccountRepository interface {
	// CreateAccount inserts a new account and returns it with its assigned ID
	CreateAccount(ctx context.Context, params CreateAccountParams) (*Account, error)

	// GetAccountByEmail returns the account with the given email, or
	// ErrAccountNotFound. Email is unique in practice but not enforced by a
	// constraint; if duplicates exist the first match wins.
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)

	// GetAccountByID returns the account with the given ID, or ErrAccountNotFound
	GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// MarkAccountVerified sets verified to true for the account
	MarkAccountVerified(ctx context.Context, id uuid.UUID) error

	// DeleteAccount removes the account. Deleting a missing account is a no-op.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}
