package api

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the /user endpoints
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", h.Signup)
	r.Get("/verify/{accountId}/{token}", h.Verify)
	r.Get("/verified", h.Verified)
	r.Post("/signin", h.Signin)

	return r
}
