package signup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/accountd/accountd/pkg/account"
	"github.com/accountd/accountd/pkg/hashing"
	"github.com/accountd/accountd/pkg/verification"
)

// SignupService handles user registration: validation, duplicate check,
// password hashing, account creation, and verification token issuance —
// strictly in that order.
type SignupService struct {
	accounts            account.AccountRepository
	hasher              hashing.Hasher
	verificationService *verification.VerificationService
}

// NewSignupService creates a new SignupService
func NewSignupService(
	accounts account.AccountRepository,
	hasher hashing.Hasher,
	verificationService *verification.VerificationService,
) *SignupService {
	return &SignupService{
		accounts:            accounts,
		hasher:              hasher,
		verificationService: verificationService,
	}
}

// Register creates a new unverified account and issues a verification
// token for it. On success the caller should report a pending status: the
// account exists but cannot sign in until the emailed link is redeemed.
//
// The duplicate check and the insert are separate storage operations with
// no uniqueness constraint behind them, so two concurrent signups with the
// same email can both pass the check. This matches the source system and
// is a documented gap, not a bug to fix here.
func (s *SignupService) Register(ctx context.Context, req SignupRequest) (*account.Account, error) {
	if verr := validateSignupRequest(&req); verr != nil {
		return nil, verr
	}

	_, err := s.accounts.GetAccountByEmail(ctx, req.Email)
	if err == nil {
		slog.Warn("Signup with existing email", "email", req.Email)
		return nil, &SignupError{
			Code:    ErrCodeAccountExists,
			Message: "User with the provided email already exists",
		}
	}
	if !errors.Is(err, account.ErrAccountNotFound) {
		slog.Error("Failed to check for existing account", "error", err)
		return nil, &SignupError{
			Code:    ErrCodeStorageFailed,
			Message: "An error occurred while checking for existing user!",
		}
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		slog.Error("Failed to hash password", "error", err)
		return nil, &SignupError{
			Code:    ErrCodeHashingFailed,
			Message: "An error occurred while hashing password!",
		}
	}

	// Validation guarantees the layout parses
	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, &SignupError{Code: ErrCodeInvalidInput, Message: "Invalid date of birth entered"}
	}

	a, err := s.accounts.CreateAccount(ctx, account.CreateAccountParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		DateOfBirth:  dateOfBirth,
	})
	if err != nil {
		slog.Error("Failed to create account", "error", err)
		return nil, &SignupError{
			Code:    ErrCodeStorageFailed,
			Message: "An error occurred while saving user account!",
		}
	}

	_, err = s.verificationService.Issue(ctx, a.ID, a.Name, a.Email)
	if err != nil {
		if errors.Is(err, verification.ErrDeliveryFailed) {
			// The account and its ledger entry are persisted; only the
			// email failed. Not rolled back.
			return nil, &SignupError{
				Code:    ErrCodeDeliveryFailed,
				Message: "Verification email failed",
			}
		}
		slog.Error("Failed to issue verification token", "account_id", a.ID, "error", err)
		return nil, &SignupError{
			Code:    ErrCodeIssuanceFailed,
			Message: "Couldn't save verification email data!",
		}
	}

	slog.Info("Account registered, verification pending", "account_id", a.ID, "email", a.Email)
	return a, nil
}
