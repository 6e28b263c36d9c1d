package notification

// NotificationSystem represents a delivery transport (e.g. email).
type NotificationSystem string

// NotificationType represents a kind of notification (e.g. "email_verification").
type NotificationType string

const (
	EmailSystem NotificationSystem = "email"

	// EmailVerification is sent after signup with the verification link
	EmailVerification NotificationType = "email_verification"
)

// NotificationData carries the per-message fields for a notification.
type NotificationData struct {
	To   string            // Recipient identifier (email address)
	Data map[string]string // Template values (e.g. Name, VerificationLink)
}

// NoticeTemplate holds the subject and body templates for a notification.
type NoticeTemplate struct {
	Subject string
	Text    string
	Html    string
}

// Notifier sends a notification rendered from a template.
type Notifier interface {
	Send(notifType NotificationType, notification NotificationData, template NoticeTemplate) error
}
