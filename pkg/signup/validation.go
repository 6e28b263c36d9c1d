package signup

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z ]+$`)
	emailRegex = regexp.MustCompile(`^[\w-.]+@([\w-]+\.)+[\w-]{2,4}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return nameRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	return v
}

// SignupRequest carries the raw signup input. Fields are trimmed before
// validation. The password minimum of 8 characters is enforced here.
type SignupRequest struct {
	Name        string `json:"name" validate:"required,person_name"`
	Email       string `json:"email" validate:"required,simple_email"`
	Password    string `json:"password" validate:"required,min=8"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
}

// validateSignupRequest trims the request in place and returns a
// SignupError with a user-presentable message on the first failure.
// No persistence is attempted when validation fails.
func validateSignupRequest(req *SignupRequest) *SignupError {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Password = strings.TrimSpace(req.Password)
	req.DateOfBirth = strings.TrimSpace(req.DateOfBirth)

	if req.Name == "" || req.Email == "" || req.Password == "" || req.DateOfBirth == "" {
		return &SignupError{Code: ErrCodeInvalidInput, Message: "Empty input fields!"}
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return &SignupError{Code: ErrCodeInvalidInput, Message: "Invalid input entered"}
	}

	switch validationErrors[0].Field() {
	case "Name":
		return &SignupError{Code: ErrCodeInvalidInput, Message: "Invalid name entered"}
	case "Email":
		return &SignupError{Code: ErrCodeInvalidInput, Message: "Invalid email entered"}
	case "Password":
		return &SignupError{Code: ErrCodeInvalidInput, Message: "Password is too short!"}
	case "DateOfBirth":
		return &SignupError{Code: ErrCodeInvalidInput, Message: "Invalid date of birth entered"}
	default:
		return &SignupError{Code: ErrCodeInvalidInput, Message: "Invalid input entered"}
	}
}
