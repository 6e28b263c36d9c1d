package api

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/accountd/accountd/pkg/login"
	"github.com/accountd/accountd/pkg/signup"
	"github.com/accountd/accountd/pkg/verification"
)

//go:embed templates/verified.html
var templateFiles embed.FS

// Handler exposes the user-facing signup, signin and verification endpoints
type Handler struct {
	signupService       *signup.SignupService
	loginService        *login.LoginService
	verificationService *verification.VerificationService
}

// NewHandler creates a new user API handler
func NewHandler(
	signupService *signup.SignupService,
	loginService *login.LoginService,
	verificationService *verification.VerificationService,
) *Handler {
	return &Handler{
		signupService:       signupService,
		loginService:        loginService,
		verificationService: verificationService,
	}
}

// Signup handles POST /user/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signup.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode signup request", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Response{Status: StatusFailed, Message: "Invalid request body"})
		return
	}

	a, err := h.signupService.Register(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		message := "An error occurred during signup"

		var serr *signup.SignupError
		if errors.As(err, &serr) {
			message = serr.Message
			switch serr.Code {
			case signup.ErrCodeInvalidInput:
				status = http.StatusBadRequest
			case signup.ErrCodeAccountExists:
				status = http.StatusConflict
			default:
				status = http.StatusInternalServerError
			}
		}

		render.Status(r, status)
		render.JSON(w, r, Response{Status: StatusFailed, Message: message})
		return
	}

	var data AccountData
	copier.Copy(&data, a)

	// PENDING: the account exists but stays locked until the emailed
	// verification link is redeemed
	render.Status(r, http.StatusOK)
	render.JSON(w, r, Response{
		Status:  StatusPending,
		Message: "Verification email sent",
		Data:    data,
	})
}

// Verify handles GET /user/verify/{accountId}/{token}. Outcomes are
// reported by redirecting to the verified page, with the failure message
// in the query string.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(chi.URLParam(r, "accountId"))
	if err != nil {
		h.redirectWithError(w, r, "Invalid verification details passed. Check your inbox.")
		return
	}
	token := chi.URLParam(r, "token")

	err = h.verificationService.Redeem(r.Context(), accountID, token)
	if err != nil {
		var message string
		switch {
		case errors.Is(err, verification.ErrNoRecord):
			message = "Account record doesn't exist or has been verified already. Please sign up or log in."
		case errors.Is(err, verification.ErrTokenExpired):
			message = "Link has expired. Please sign up again."
		case errors.Is(err, verification.ErrTokenMismatch):
			message = "Invalid verification details passed. Check your inbox."
		default:
			slog.Error("Failed to resolve verification", "account_id", accountID, "error", err)
			message = "An error occurred while verifying your account. Please try again later."
		}
		h.redirectWithError(w, r, message)
		return
	}

	http.Redirect(w, r, "/user/verified", http.StatusFound)
}

// Verified handles GET /user/verified and serves the static confirmation
// page. The page reads any error message from the query string client-side.
func (h *Handler) Verified(w http.ResponseWriter, r *http.Request) {
	page, err := templateFiles.ReadFile("templates/verified.html")
	if err != nil {
		slog.Error("Failed to read verified page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// Signin handles POST /user/signin
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode signin request", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Response{Status: StatusFailed, Message: "Invalid request body"})
		return
	}

	a, err := h.loginService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		var message string

		switch {
		case errors.Is(err, login.ErrEmptyCredentials):
			status = http.StatusBadRequest
			message = "Empty credentials supplied"
		case errors.Is(err, login.ErrInvalidCredentials):
			message = "Invalid credentials entered!"
		case errors.Is(err, login.ErrEmailNotVerified):
			status = http.StatusForbidden
			message = "Email hasn't been verified yet. Check your inbox."
		case errors.Is(err, login.ErrInvalidPassword):
			message = "Invalid password entered!"
		default:
			slog.Error("Failed to sign in", "error", err)
			status = http.StatusInternalServerError
			message = "An error occurred while signing in"
		}

		render.Status(r, status)
		render.JSON(w, r, Response{Status: StatusFailed, Message: message})
		return
	}

	var data AccountData
	copier.Copy(&data, a)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, Response{
		Status:  StatusSuccess,
		Message: "Signin successful",
		Data:    data,
	})
}

func (h *Handler) redirectWithError(w http.ResponseWriter, r *http.Request, message string) {
	target := fmt.Sprintf("/user/verified?error=true&message=%s", url.QueryEscape(message))
	http.Redirect(w, r, target, http.StatusFound)
}
