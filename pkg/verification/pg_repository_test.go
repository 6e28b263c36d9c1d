package verification

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/accountd/accountd/pkg/account"
)

const testSchema = `
CREATE TABLE accounts (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    date_of_birth DATE NOT NULL,
    verified BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT (NOW() AT TIME ZONE 'UTC')
);

CREATE INDEX idx_accounts_email ON accounts (email);

CREATE TABLE pending_verifications (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    account_id UUID NOT NULL,
    token_hash TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    expires_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX idx_pending_verifications_account_id ON pending_verifications (account_id);
`

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	postgresContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, testSchema)
	require.NoError(t, err)

	return pool
}

func TestPostgresRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	pool := setupPostgres(t)
	ctx := context.Background()

	accounts := account.NewPostgresAccountRepository(pool)
	verifications := NewPostgresVerificationRepository(pool)

	a, err := accounts.CreateAccount(ctx, account.CreateAccountParams{
		Name:         "Ada Lovelace",
		Email:        "ada@x.com",
		PasswordHash: "hashed",
		DateOfBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.False(t, a.Verified)

	t.Run("GetAccountByEmail", func(t *testing.T) {
		got, err := accounts.GetAccountByEmail(ctx, "ada@x.com")
		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)

		_, err = accounts.GetAccountByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, account.ErrAccountNotFound)
	})

	t.Run("VerificationLifecycle", func(t *testing.T) {
		createdAt := time.Now().UTC().Truncate(time.Microsecond)
		expiresAt := createdAt.Add(6 * time.Hour)

		pv, err := verifications.CreateVerification(ctx, a.ID, "token-hash", createdAt, expiresAt)
		require.NoError(t, err)
		assert.Equal(t, a.ID, pv.AccountID)
		assert.True(t, pv.ExpiresAt.Equal(expiresAt))

		got, err := verifications.GetVerificationByAccountID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, pv.ID, got.ID)

		err = verifications.DeleteVerificationByAccountID(ctx, a.ID)
		require.NoError(t, err)

		_, err = verifications.GetVerificationByAccountID(ctx, a.ID)
		assert.ErrorIs(t, err, ErrNoRecord)

		// Double delete is a no-op
		err = verifications.DeleteVerificationByAccountID(ctx, a.ID)
		assert.NoError(t, err)
	})

	t.Run("MarkAccountVerified", func(t *testing.T) {
		err := accounts.MarkAccountVerified(ctx, a.ID)
		require.NoError(t, err)

		got, err := accounts.GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, got.Verified)
	})

	t.Run("DeleteAccount", func(t *testing.T) {
		err := accounts.DeleteAccount(ctx, a.ID)
		require.NoError(t, err)

		_, err = accounts.GetAccountByID(ctx, a.ID)
		assert.ErrorIs(t, err, account.ErrAccountNotFound)

		err = accounts.DeleteAccount(ctx, a.ID)
		assert.NoError(t, err)
	})
}
