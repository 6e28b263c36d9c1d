package api

import (
	"time"

	"github.com/google/uuid"
)

// Response statuses
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
	StatusPending = "PENDING"
)

// Response is the JSON envelope for signup and signin
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SigninRequest is the request body for POST /user/signin
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountData is the account payload returned to clients. The password
// hash has no field here and never leaves the service.
type AccountData struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"createdAt"`
}
