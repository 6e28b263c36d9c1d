package verification

import "errors"

var (
	// ErrNoRecord is returned when no pending verification exists for the
	// account: it either never signed up, was already verified (and its
	// ledger entry removed), or never existed at all.
	ErrNoRecord = errors.New("verification record not found")

	// ErrTokenExpired is returned when the verification link is past its
	// expiry. Redemption after expiry deletes both the ledger entry and
	// the unverified account.
	ErrTokenExpired = errors.New("verification link has expired")

	// ErrTokenMismatch is returned when the presented token does not match
	// the stored hash. The ledger entry is left intact so the legitimate
	// link still works until expiry.
	ErrTokenMismatch = errors.New("invalid verification details")

	// ErrDeliveryFailed is returned when the verification email could not
	// be sent. The ledger entry is already persisted and is not rolled back.
	ErrDeliveryFailed = errors.New("verification email delivery failed")
)
