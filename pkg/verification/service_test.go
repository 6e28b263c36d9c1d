package verification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accountd/accountd/pkg/account"
	"github.com/accountd/accountd/pkg/hashing"
	"github.com/accountd/accountd/pkg/notification"
)

type serviceFixture struct {
	service       *VerificationService
	verifications *InMemVerificationRepository
	accounts      *account.InMemAccountRepository
	notifier      *notification.MockNotifier
	hasher        *hashing.BcryptHasher
}

func setupService(t *testing.T, opts ...VerificationServiceOption) *serviceFixture {
	t.Helper()

	verifications := NewInMemVerificationRepository()
	accounts := account.NewInMemAccountRepository()
	// Low cost keeps the bcrypt work factor out of the test runtime
	hasher := hashing.NewBcryptHasherWithCost(4)
	notifier := &notification.MockNotifier{}

	nm := notification.NewNotificationManager()
	nm.RegisterNotifier(notification.EmailSystem, notifier)
	err := nm.RegisterNotification(notification.EmailVerification, notification.EmailSystem, notification.NoticeTemplate{
		Subject: "Verify Your Email",
		Html:    "<p>{{.VerificationLink}}</p>",
	})
	require.NoError(t, err)

	opts = append([]VerificationServiceOption{WithNotificationManager(nm)}, opts...)
	service := NewVerificationService(verifications, accounts, hasher, "http://localhost:5000", opts...)

	return &serviceFixture{
		service:       service,
		verifications: verifications,
		accounts:      accounts,
		notifier:      notifier,
		hasher:        hasher,
	}
}

func (f *serviceFixture) createAccount(t *testing.T) *account.Account {
	t.Helper()
	a, err := f.accounts.CreateAccount(context.Background(), account.CreateAccountParams{
		Name:         "Ada Lovelace",
		Email:        "ada@x.com",
		PasswordHash: "irrelevant",
		DateOfBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return a
}

func TestVerificationService_Issue(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()
	a := f.createAccount(t)

	token, err := f.service.Issue(ctx, a.ID, a.Name, a.Email)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	t.Run("TokenBoundToAccount", func(t *testing.T) {
		assert.Contains(t, token, a.ID.String())
	})

	t.Run("LedgerEntryCreated", func(t *testing.T) {
		pv, err := f.verifications.GetVerificationByAccountID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.ID, pv.AccountID)
		assert.True(t, pv.ExpiresAt.Equal(pv.CreatedAt.Add(6*time.Hour)))
	})

	t.Run("OnlyHashPersisted", func(t *testing.T) {
		pv, err := f.verifications.GetVerificationByAccountID(ctx, a.ID)
		require.NoError(t, err)
		assert.NotEqual(t, token, pv.TokenHash)

		match, err := f.hasher.Verify(token, pv.TokenHash)
		require.NoError(t, err)
		assert.True(t, match)
	})

	t.Run("EmailContainsLink", func(t *testing.T) {
		require.Len(t, f.notifier.SentNotifications, 1)
		sent := f.notifier.SentNotifications[0]
		assert.Equal(t, a.Email, sent.To)

		wantLink := fmt.Sprintf("http://localhost:5000/user/verify/%s/%s", a.ID, token)
		assert.Equal(t, wantLink, sent.Data["VerificationLink"])
		assert.Equal(t, "6", sent.Data["ExpiryHours"])
	})
}

func TestVerificationService_Issue_DeliveryFailure(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()
	a := f.createAccount(t)

	f.notifier.Err = fmt.Errorf("smtp connection refused")

	_, err := f.service.Issue(ctx, a.ID, a.Name, a.Email)
	assert.ErrorIs(t, err, ErrDeliveryFailed)

	// The ledger entry is not rolled back on delivery failure
	pv, err := f.verifications.GetVerificationByAccountID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, pv.AccountID)
}

func TestVerificationService_Redeem_Confirmed(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()
	a := f.createAccount(t)

	token, err := f.service.Issue(ctx, a.ID, a.Name, a.Email)
	require.NoError(t, err)

	err = f.service.Redeem(ctx, a.ID, token)
	require.NoError(t, err)

	t.Run("AccountVerified", func(t *testing.T) {
		got, err := f.accounts.GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, got.Verified)
	})

	t.Run("LedgerEntryDeleted", func(t *testing.T) {
		_, err := f.verifications.GetVerificationByAccountID(ctx, a.ID)
		assert.ErrorIs(t, err, ErrNoRecord)
	})

	t.Run("SecondRedemptionYieldsNoRecord", func(t *testing.T) {
		err := f.service.Redeem(ctx, a.ID, token)
		assert.ErrorIs(t, err, ErrNoRecord)
	})
}

func TestVerificationService_Redeem_Expired(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()
	a := f.createAccount(t)

	token := generateToken(a.ID)
	tokenHash, err := f.hasher.Hash(token)
	require.NoError(t, err)

	createdAt := time.Now().UTC().Add(-7 * time.Hour)
	_, err = f.verifications.CreateVerification(ctx, a.ID, tokenHash, createdAt, createdAt.Add(6*time.Hour))
	require.NoError(t, err)

	err = f.service.Redeem(ctx, a.ID, token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	t.Run("LedgerEntryDeleted", func(t *testing.T) {
		_, err := f.verifications.GetVerificationByAccountID(ctx, a.ID)
		assert.ErrorIs(t, err, ErrNoRecord)
	})

	t.Run("AccountDeleted", func(t *testing.T) {
		_, err := f.accounts.GetAccountByID(ctx, a.ID)
		assert.ErrorIs(t, err, account.ErrAccountNotFound)
	})
}

func TestVerificationService_Redeem_Mismatch(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()
	a := f.createAccount(t)

	_, err := f.service.Issue(ctx, a.ID, a.Name, a.Email)
	require.NoError(t, err)

	err = f.service.Redeem(ctx, a.ID, "not-the-token")
	assert.ErrorIs(t, err, ErrTokenMismatch)

	t.Run("RecordsLeftIntact", func(t *testing.T) {
		pv, err := f.verifications.GetVerificationByAccountID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.ID, pv.AccountID)

		got, err := f.accounts.GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		assert.False(t, got.Verified)
	})

	t.Run("LegitimateLinkStillWorks", func(t *testing.T) {
		// Re-issue to get a fresh known token, then redeem it
		token, err := f.service.Issue(ctx, a.ID, a.Name, a.Email)
		require.NoError(t, err)

		err = f.service.Redeem(ctx, a.ID, token)
		assert.NoError(t, err)
	})
}

func TestVerificationService_Redeem_NoRecord(t *testing.T) {
	f := setupService(t)

	err := f.service.Redeem(context.Background(), uuid.New(), "whatever")
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestVerificationService_CustomExpiry(t *testing.T) {
	f := setupService(t, WithTokenExpiry(1*time.Hour))
	ctx := context.Background()
	a := f.createAccount(t)

	_, err := f.service.Issue(ctx, a.ID, a.Name, a.Email)
	require.NoError(t, err)

	pv, err := f.verifications.GetVerificationByAccountID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, pv.ExpiresAt.Equal(pv.CreatedAt.Add(1*time.Hour)))
}
