package account

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(email string) CreateAccountParams {
	return CreateAccountParams{
		Name:         "Ada Lovelace",
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		DateOfBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestInMemAccountRepository_CreateAccount(t *testing.T) {
	repo := NewInMemAccountRepository()
	ctx := context.Background()

	a, err := repo.CreateAccount(ctx, testParams("ada@x.com"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, "ada@x.com", a.Email)
	assert.False(t, a.Verified)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestInMemAccountRepository_GetAccountByEmail(t *testing.T) {
	repo := NewInMemAccountRepository()
	ctx := context.Background()

	created, err := repo.CreateAccount(ctx, testParams("ada@x.com"))
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		a, err := repo.GetAccountByEmail(ctx, "ada@x.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, a.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.GetAccountByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestInMemAccountRepository_MarkAccountVerified(t *testing.T) {
	repo := NewInMemAccountRepository()
	ctx := context.Background()

	created, err := repo.CreateAccount(ctx, testParams("ada@x.com"))
	require.NoError(t, err)

	err = repo.MarkAccountVerified(ctx, created.ID)
	require.NoError(t, err)

	a, err := repo.GetAccountByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, a.Verified)
}

func TestInMemAccountRepository_DeleteAccount(t *testing.T) {
	repo := NewInMemAccountRepository()
	ctx := context.Background()

	created, err := repo.CreateAccount(ctx, testParams("ada@x.com"))
	require.NoError(t, err)

	err = repo.DeleteAccount(ctx, created.ID)
	require.NoError(t, err)

	_, err = repo.GetAccountByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	t.Run("DeleteMissingIsNoOp", func(t *testing.T) {
		err := repo.DeleteAccount(ctx, uuid.New())
		assert.NoError(t, err)
	})
}
