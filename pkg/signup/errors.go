package signup

// SignupError represents a signup-specific error with a fixed,
// user-presentable message. Internal error detail never leaves the service.
type SignupError struct {
	Code    string
	Message string
}

func (e *SignupError) Error() string {
	return e.Message
}

// Error codes
const (
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeAccountExists  = "ACCOUNT_EXISTS"
	ErrCodeHashingFailed  = "HASHING_FAILED"
	ErrCodeStorageFailed  = "STORAGE_FAILED"
	ErrCodeIssuanceFailed = "ISSUANCE_FAILED"
	ErrCodeDeliveryFailed = "DELIVERY_FAILED"
)
