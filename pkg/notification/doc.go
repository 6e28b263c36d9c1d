// Package notification provides a unified interface for sending notifications.
//
// This package defines the Notifier interface and an SMTP implementation
// built on go-mail. Notifications are registered against a delivery system
// together with a template; the NotificationManager renders the template
// with per-message data and routes it to the registered notifier.
//
// # Basic Usage
//
//	nm, err := notification.NewNotificationManagerWithOptions(
//		notification.WithSMTP(smtpConfig),
//		notification.WithEmailVerificationTemplate(),
//	)
//
//	err = nm.Send(notification.EmailVerification, notification.EmailSystem,
//		notification.NotificationData{
//			To:   "user@example.com",
//			Data: map[string]string{"VerificationLink": link},
//		})
//
// A MockNotifier is provided for tests; it records sent notifications
// instead of delivering them.
package notification
