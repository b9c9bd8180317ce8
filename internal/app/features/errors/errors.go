// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/startupbridge/internal/app/system/auth"
	"github.com/dalemusser/startupbridge/internal/app/system/jsonutil"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// pageData is the body of the error endpoints.
type pageData struct {
	Title      string `json:"title"`
	IsLoggedIn bool   `json:"isLoggedIn"`
	Message    string `json:"message"`
	BackURL    string `json:"backUrl"`
}

// Handler is the errors feature handler.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// AccessDenied is where the admin guard sends browsers that have no admin
// session.
// GET /access-denied
func (h *Handler) AccessDenied(w http.ResponseWriter, r *http.Request) {
	_, signedIn := auth.CurrentAdmin(r)
	jsonutil.Write(w, http.StatusForbidden, pageData{
		Title:      "Access denied",
		IsLoggedIn: signedIn,
		Message:    "You need to sign in as an administrator to view this page.",
		BackURL:    urlutil.SafeReturn(r.URL.Query().Get("return"), "", "/"),
	})
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	jsonutil.Write(w, http.StatusNotFound, pageData{
		Title:   "Page not found",
		Message: "The page you are looking for does not exist.",
		BackURL: "/",
	})
}

// MethodNotAllowed answers a known route called with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	jsonutil.Error(w, http.StatusMethodNotAllowed, "method not allowed")
}
