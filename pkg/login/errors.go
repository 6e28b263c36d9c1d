package login

import "errors"

var (
	// ErrEmptyCredentials is returned when email or password is blank
	ErrEmptyCredentials = errors.New("empty credentials supplied")

	// ErrInvalidCredentials is returned when no account matches the email.
	// Deliberately generic so callers cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials entered")

	// ErrEmailNotVerified is returned for accounts that exist but have not
	// redeemed their verification link yet
	ErrEmailNotVerified = errors.New("email has not been verified")

	// ErrInvalidPassword is returned when the password comparison fails
	ErrInvalidPassword = errors.New("invalid password entered")
)
