package account

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemAccountRepository implements AccountRepository with an in-memory map.
// Intended for tests and local development.
type InMemAccountRepository struct {
	accounts map[uuid.UUID]*Account
	mutex    sync.RWMutex
}

// NewInMemAccountRepository creates a new in-memory account repository
func NewInMemAccountRepository() *InMemAccountRepository {
	return &InMemAccountRepository{
		accounts: make(map[uuid.UUID]*Account),
	}
}

// CreateAccount inserts a new account with verified = false
func (r *InMemAccountRepository) CreateAccount(ctx context.Context, params CreateAccountParams) (*Account, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	a := &Account{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		DateOfBirth:  params.DateOfBirth,
		Verified:     false,
		CreatedAt:    time.Now().UTC(),
	}
	r.accounts[a.ID] = a

	copied := *a
	return &copied, nil
}

// GetAccountByEmail retrieves the oldest account with the given email
func (r *InMemAccountRepository) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var found *Account
	for _, a := range r.accounts {
		if a.Email != email {
			continue
		}
		if found == nil || a.CreatedAt.Before(found.CreatedAt) {
			found = a
		}
	}
	if found == nil {
		return nil, ErrAccountNotFound
	}

	copied := *found
	return &copied, nil
}

// GetAccountByID retrieves an account by ID
func (r *InMemAccountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}

	copied := *a
	return &copied, nil
}

// MarkAccountVerified sets verified to true for the account
func (r *InMemAccountRepository) MarkAccountVerified(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if a, ok := r.accounts[id]; ok {
		a.Verified = true
	}
	return nil
}

// DeleteAccount removes the account. Deleting a missing account is a no-op.
func (r *InMemAccountRepository) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.accounts, id)
	return nil
}
