package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/startupbridge/internal/domain/models"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Current-Admin helper                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey string

const currentAdminKey ctxKey = "currentAdmin"

// CurrentAdmin returns the admin injected by LoadAdmin.
func CurrentAdmin(r *http.Request) (*models.Admin, bool) {
	a, ok := r.Context().Value(currentAdminKey).(*models.Admin)
	return a, ok && a != nil
}

// WithAdmin returns r carrying a as the signed-in admin. Handlers under
// test use it in place of LoadAdmin.
func WithAdmin(r *http.Request, a *models.Admin) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentAdminKey, a))
}

// helpers

func wantsHTML(r *http.Request) bool {
	// Very light heuristic: treat it as HTML if it's HTMX or Accepts text/html.
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	u := *r.URL
	return u.RequestURI()
}
