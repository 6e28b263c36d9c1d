package verification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PendingVerification maps an unverified account to the bcrypt hash of its
// one-time verification token. The plaintext token only ever exists in the
// outbound email link.
type PendingVerification struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// VerificationRepository defines the interface for verification ledger operations.
// The design assumes at most one live entry per account; this is not enforced
// by a uniqueness constraint.
type VerificationRepository interface {
	// CreateVerification inserts a new ledger entry
	CreateVerification(ctx context.Context, accountID uuid.UUID, tokenHash string, createdAt, expiresAt time.Time) (*PendingVerification, error)

	// GetVerificationByAccountID returns the entry for the account, or ErrNoRecord
	GetVerificationByAccountID(ctx context.Context, accountID uuid.UUID) (*PendingVerification, error)

	// DeleteVerificationByAccountID removes the entry for the account.
	// Deleting a missing entry is a no-op, not an error.
	DeleteVerificationByAccountID(ctx context.Context, accountID uuid.UUID) error
}
