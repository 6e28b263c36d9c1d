package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/accountd/accountd/pkg/account"
	"github.com/accountd/accountd/pkg/hashing"
	"github.com/accountd/accountd/pkg/notification"
)

// VerificationService issues one-time verification tokens and resolves
// their redemption. Only the bcrypt hash of a token is ever persisted; the
// plaintext is embedded in the emailed link and nowhere else.
type VerificationService struct {
	verifications       VerificationRepository
	accounts            account.AccountRepository
	hasher              hashing.Hasher
	notificationManager *notification.NotificationManager
	baseURL             string
	tokenExpiry         time.Duration
}

// VerificationServiceOption defines configuration options
type VerificationServiceOption func(*VerificationService)

// WithTokenExpiry overrides the token expiration window
func WithTokenExpiry(expiry time.Duration) VerificationServiceOption {
	return func(s *VerificationService) {
		s.tokenExpiry = expiry
	}
}

// WithNotificationManager sets the delivery transport for verification emails
func WithNotificationManager(nm *notification.NotificationManager) VerificationServiceOption {
	return func(s *VerificationService) {
		s.notificationManager = nm
	}
}

// NewVerificationService creates a new verification service. Tokens expire
// 6 hours after issuance unless overridden.
func NewVerificationService(
	verifications VerificationRepository,
	accounts account.AccountRepository,
	hasher hashing.Hasher,
	baseURL string,
	opts ...VerificationServiceOption,
) *VerificationService {
	service := &VerificationService{
		verifications: verifications,
		accounts:      accounts,
		hasher:        hasher,
		baseURL:       baseURL,
		tokenExpiry:   6 * time.Hour,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// generateToken produces a globally-unique token bound to the account:
// a random UUID concatenated with the account ID, so a colliding random
// part still cannot be replayed against another account.
func generateToken(accountID uuid.UUID) string {
	return uuid.NewString() + accountID.String()
}

// Issue creates a verification token for the account, persists its hash
// with a 6 hour expiry, and emails the plaintext link. A delivery failure
// after the ledger write returns ErrDeliveryFailed; the ledger entry is
// kept so the account stays pending rather than orphaned without a record.
func (s *VerificationService) Issue(ctx context.Context, accountID uuid.UUID, name, email string) (string, error) {
	token := generateToken(accountID)

	tokenHash, err := s.hasher.Hash(token)
	if err != nil {
		slog.Error("Failed to hash verification token", "account_id", accountID, "error", err)
		return "", fmt.Errorf("failed to hash verification token: %w", err)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenExpiry)

	pv, err := s.verifications.CreateVerification(ctx, accountID, tokenHash, now, expiresAt)
	if err != nil {
		slog.Error("Failed to save verification record", "account_id", accountID, "error", err)
		return "", fmt.Errorf("failed to save verification record: %w", err)
	}

	verificationLink := fmt.Sprintf("%s/user/verify/%s/%s", s.baseURL, accountID, token)

	if err := s.sendVerificationEmail(email, name, verificationLink); err != nil {
		slog.Error("Failed to send verification email", "account_id", accountID, "error", err)
		return "", ErrDeliveryFailed
	}

	slog.Info("Verification token issued", "account_id", accountID, "verification_id", pv.ID, "expires_at", expiresAt)
	return token, nil
}

// Redeem resolves an inbound verification link carrying the account ID and
// the plaintext token. Outcomes:
//
//   - ErrNoRecord: no pending verification for the account (never signed up,
//     or already verified and the ledger entry removed). A second redemption
//     of an already-confirmed token lands here, which is intentional.
//   - ErrTokenExpired: the link is past its expiry. The ledger entry and the
//     unverified account are both deleted; the user must sign up again.
//   - ErrTokenMismatch: wrong token. Records are left intact so the
//     legitimate link still works until expiry.
//   - nil: confirmed. The account is marked verified and the ledger entry
//     deleted, enforcing single use.
//
// Storage failures during any transition are reported as wrapped errors
// distinct from the outcome sentinels; no partial state is rolled back.
func (s *VerificationService) Redeem(ctx context.Context, accountID uuid.UUID, token string) error {
	pv, err := s.verifications.GetVerificationByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNoRecord) {
			slog.Warn("No verification record", "account_id", accountID)
			return ErrNoRecord
		}
		slog.Error("Failed to look up verification record", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to look up verification record: %w", err)
	}

	if time.Now().UTC().After(pv.ExpiresAt) {
		slog.Warn("Verification link expired", "account_id", accountID, "expires_at", pv.ExpiresAt)

		if err := s.verifications.DeleteVerificationByAccountID(ctx, accountID); err != nil {
			slog.Error("Failed to clear expired verification record", "account_id", accountID, "error", err)
			return fmt.Errorf("failed to clear expired verification record: %w", err)
		}
		if err := s.accounts.DeleteAccount(ctx, accountID); err != nil {
			slog.Error("Failed to clear account with expired verification", "account_id", accountID, "error", err)
			return fmt.Errorf("failed to clear account with expired verification: %w", err)
		}
		return ErrTokenExpired
	}

	match, err := s.hasher.Verify(token, pv.TokenHash)
	if err != nil {
		slog.Error("Failed to compare verification token", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to compare verification token: %w", err)
	}
	if !match {
		slog.Warn("Verification token mismatch", "account_id", accountID)
		return ErrTokenMismatch
	}

	if err := s.accounts.MarkAccountVerified(ctx, accountID); err != nil {
		slog.Error("Failed to mark account verified", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to mark account verified: %w", err)
	}

	// Single-use enforcement: the record goes away on success, so a repeat
	// redemption resolves to ErrNoRecord.
	if err := s.verifications.DeleteVerificationByAccountID(ctx, accountID); err != nil {
		slog.Error("Failed to finalize verification", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to finalize verification: %w", err)
	}

	slog.Info("Account verified", "account_id", accountID)
	return nil
}

// sendVerificationEmail sends the verification email
func (s *VerificationService) sendVerificationEmail(email, name, verificationLink string) error {
	if s.notificationManager == nil {
		slog.Warn("Notification manager not configured, skipping email send")
		return nil
	}

	notificationData := notification.NotificationData{
		To: email,
		Data: map[string]string{
			"Name":             name,
			"VerificationLink": verificationLink,
			"ExpiryHours":      fmt.Sprintf("%.0f", s.tokenExpiry.Hours()),
		},
	}

	return s.notificationManager.Send(notification.EmailVerification, notification.EmailSystem, notificationData)
}
