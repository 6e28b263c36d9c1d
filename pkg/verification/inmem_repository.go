package verification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemVerificationRepository implements VerificationRepository with an
// in-memory map keyed by account ID. Intended for tests and local development.
type InMemVerificationRepository struct {
	verifications map[uuid.UUID]*PendingVerification
	mutex         sync.RWMutex
}

// NewInMemVerificationRepository creates a new in-memory verification repository
func NewInMemVerificationRepository() *InMemVerificationRepository {
	return &InMemVerificationRepository{
		verifications: make(map[uuid.UUID]*PendingVerification),
	}
}

// CreateVerification inserts a new ledger entry
func (r *InMemVerificationRepository) CreateVerification(ctx context.Context, accountID uuid.UUID, tokenHash string, createdAt, expiresAt time.Time) (*PendingVerification, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	pv := &PendingVerification{
		ID:        uuid.New(),
		AccountID: accountID,
		TokenHash: tokenHash,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}
	r.verifications[accountID] = pv

	copied := *pv
	return &copied, nil
}

// GetVerificationByAccountID returns the entry for the account, or ErrNoRecord
func (r *InMemVerificationRepository) GetVerificationByAccountID(ctx context.Context, accountID uuid.UUID) (*PendingVerification, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	pv, ok := r.verifications[accountID]
	if !ok {
		return nil, ErrNoRecord
	}

	copied := *pv
	return &copied, nil
}

// DeleteVerificationByAccountID removes the entry. Missing entries are a no-op.
func (r *InMemVerificationRepository) DeleteVerificationByAccountID(ctx context.Context, accountID uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.verifications, accountID)
	return nil
}
