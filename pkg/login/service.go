package login

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/accountd/accountd/pkg/account"
	"github.com/accountd/accountd/pkg/hashing"
)

// LoginService handles signin: lookup, verified-status gate, and password
// comparison. It issues no session or token; a successful login simply
// returns the account.
type LoginService struct {
	accounts account.AccountRepository
	hasher   hashing.Hasher
}

// NewLoginService creates a new LoginService
func NewLoginService(accounts account.AccountRepository, hasher hashing.Hasher) *LoginService {
	return &LoginService{
		accounts: accounts,
		hasher:   hasher,
	}
}

// Login authenticates an email/password pair. An unknown email yields
// ErrInvalidCredentials without revealing whether the email is registered;
// an unverified account yields the distinct ErrEmailNotVerified so the
// caller can point the user at their inbox.
func (s *LoginService) Login(ctx context.Context, email, password string) (*account.Account, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	a, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			slog.Warn("Login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		slog.Error("Failed to look up account", "error", err)
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !a.Verified {
		slog.Warn("Login attempt on unverified account", "account_id", a.ID)
		return nil, ErrEmailNotVerified
	}

	match, err := s.hasher.Verify(password, a.PasswordHash)
	if err != nil {
		slog.Error("Failed to compare password", "account_id", a.ID, "error", err)
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}
	if !match {
		slog.Warn("Login attempt with wrong password", "account_id", a.ID)
		return nil, ErrInvalidPassword
	}

	slog.Info("Login successful", "account_id", a.ID)
	return a, nil
}
