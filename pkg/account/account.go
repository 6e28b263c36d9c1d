package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is the credential record for a registered user. PasswordHash is
// the bcrypt hash of the submitted password; the plaintext is never stored.
type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	DateOfBirth  time.Time
	Verified     bool
	CreatedAt    time.Time
}

// CreateAccountParams carries the fields needed to create a new account.
// Verified always starts false; it flips to true exactly once when a
// verification token is redeemed.
type CreateAccountParams struct {
	Name         string
	Email        string
	PasswordHash string
	DateOfBirth  time.Time
}
