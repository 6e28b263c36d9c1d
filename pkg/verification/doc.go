// Package verification implements the email verification token lifecycle.
//
// A token is issued when an account signs up: the service generates a
// unique token, stores only its bcrypt hash alongside an expiry timestamp,
// and emails the plaintext to the account holder inside a verification
// link. Redeeming the link resolves to exactly one of four outcomes:
//
//   - no pending record exists (never issued, already redeemed, or
//     cleaned up after expiry)
//   - the record has expired; the record and its unverified account are
//     deleted so the email address can sign up again
//   - the presented token does not match the stored hash; records are
//     left intact so the real link still works
//   - the token matches; the account is marked verified and the pending
//     record is deleted, making the token single-use
//
// # Basic Usage
//
//	service := verification.NewVerificationService(
//		verificationRepo,
//		accountRepo,
//		hasher,
//		"https://accounts.example.com",
//		verification.WithNotificationManager(notificationManager),
//	)
//
//	token, err := service.Issue(ctx, accountID, name, email)
//	...
//	err = service.Redeem(ctx, accountID, token)
//
// Repositories are provided for PostgreSQL (pgx) and in-memory use; the
// in-memory implementation backs the unit tests.
package verification
