package verification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresVerificationRepository implements VerificationRepository using PostgreSQL
type PostgresVerificationRepository struct {
	db *pgxpool.Pool
}

// NewPostgresVerificationRepository creates a new PostgreSQL verification repository
func NewPostgresVerificationRepository(db *pgxpool.Pool) *PostgresVerificationRepository {
	return &PostgresVerificationRepository{db: db}
}

// CreateVerification inserts a new ledger entry
func (r *PostgresVerificationRepository) CreateVerification(ctx context.Context, accountID uuid.UUID, tokenHash string, createdAt, expiresAt time.Time) (*PendingVerification, error) {
	query := `
		INSERT INTO pending_verifications (account_id, token_hash, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, account_id, token_hash, created_at, expires_at
	`

	var pv PendingVerification
	err := r.db.QueryRow(ctx, query, accountID, tokenHash, createdAt, expiresAt).Scan(
		&pv.ID,
		&pv.AccountID,
		&pv.TokenHash,
		&pv.CreatedAt,
		&pv.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}

	return &pv, nil
}

// GetVerificationByAccountID returns the newest entry for the account
func (r *PostgresVerificationRepository) GetVerificationByAccountID(ctx context.Context, accountID uuid.UUID) (*PendingVerification, error) {
	query := `
		SELECT id, account_id, token_hash, created_at, expires_at
		FROM pending_verifications
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var pv PendingVerification
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&pv.ID,
		&pv.AccountID,
		&pv.TokenHash,
		&pv.CreatedAt,
		&pv.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, err
	}

	return &pv, nil
}

// DeleteVerificationByAccountID removes all entries for the account.
// Deleting a missing entry is a no-op.
func (r *PostgresVerificationRepository) DeleteVerificationByAccountID(ctx context.Context, accountID uuid.UUID) error {
	query := `
		DELETE FROM pending_verifications
		WHERE account_id = $1
	`

	_, err := r.db.Exec(ctx, query, accountID)
	return err
}
