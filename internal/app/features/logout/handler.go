// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/startupbridge/internal/app/system/auditlog"
	"github.com/dalemusser/startupbridge/internal/app/system/auth"
	"github.com/dalemusser/startupbridge/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	AuditLog   *auditlog.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		AuditLog:   audit,
	}
}

type logoutResponse struct {
	Authenticated bool `json:"authenticated"`
}

// HandleLogout handles POST /admin/logout. It always clears the session,
// signed in or not.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	admin, _ := auth.CurrentAdmin(r)

	if err := h.SessionMgr.Logout(w, r); err != nil {
		// Still answer; the cookie lapses on its own at max-age.
		h.Log.Error("logout: save session", zap.Error(err))
	}
	if admin != nil {
		h.AuditLog.Logout(r.Context(), r, admin)
	}

	// HTMX handling: use HX-Redirect to force a client-side navigation to "/".
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}

	jsonutil.Write(w, http.StatusOK, logoutResponse{Authenticated: false})
}
