package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresAccountRepository implements AccountRepository using PostgreSQL
type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

// NewPostgresAccountRepository creates a new PostgreSQL account repository
func NewPostgresAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// CreateAccount inserts a new account with verified = false
func (r *PostgresAccountRepository) CreateAccount(ctx context.Context, params CreateAccountParams) (*Account, error) {
	query := `
		INSERT INTO accounts (name, email, password_hash, date_of_birth, verified)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id, name, email, password_hash, date_of_birth, verified, created_at
	`

	var a Account
	err := r.db.QueryRow(ctx, query, params.Name, params.Email, params.PasswordHash, params.DateOfBirth).Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.DateOfBirth,
		&a.Verified,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccountByEmail retrieves an account by email
func (r *PostgresAccountRepository) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	query := `
		SELECT id, name, email, password_hash, date_of_birth, verified, created_at
		FROM accounts
		WHERE email = $1
		ORDER BY created_at
		LIMIT 1
	`

	var a Account
	err := r.db.QueryRow(ctx, query, email).Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.DateOfBirth,
		&a.Verified,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &a, nil
}

// GetAccountByID retrieves an account by ID
func (r *PostgresAccountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	query := `
		SELECT id, name, email, password_hash, date_of_birth, verified, created_at
		FROM accounts
		WHERE id = $1
	`

	var a Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.DateOfBirth,
		&a.Verified,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &a, nil
}

// MarkAccountVerified sets verified to true for the account
func (r *PostgresAccountRepository) MarkAccountVerified(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE accounts
		SET verified = TRUE
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query, id)
	return err
}

// DeleteAccount removes the account. Deleting a missing account is a no-op.
func (r *PostgresAccountRepository) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM accounts
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query, id)
	return err
}
