// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	errorsfeature "github.com/dalemusser/startupbridge/internal/app/features/errors"
	"github.com/dalemusser/startupbridge/internal/app/system/auditlog"
	"github.com/dalemusser/startupbridge/internal/app/system/auth"
	"github.com/dalemusser/startupbridge/internal/app/system/jsonutil"
	"github.com/dalemusser/startupbridge/internal/app/system/ratelimit"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// DefaultReturn is where a signed-in admin goes when no return URL is given.
const DefaultReturn = "/admin"

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *errorsfeature.ErrorLogger
	AuditLog   *auditlog.Logger
	Limiter    *ratelimit.LoginLimiter
}

func NewHandler(sessionMgr *auth.SessionManager, limiter *ratelimit.LoginLimiter, audit *auditlog.Logger,
	errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		AuditLog:   audit,
		Limiter:    limiter,
	}
}

type loginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	ReturnURL string `json:"returnUrl"`
}

type loginResponse struct {
	Admin     models.Admin `json:"admin"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Redirect  string       `json:"redirect"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/login                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleLoginPost checks the credentials after the sign-in delay. Unknown
// email and wrong password produce the same answer.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := jsonutil.Decode(w, r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "login: bad body", err, "The sign-in request could not be read.")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		jsonutil.Error(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	if h.Limiter != nil {
		if ok, reason := h.Limiter.Check(r, email); !ok {
			h.AuditLog.LoginRateLimited(r.Context(), r, email)
			jsonutil.Error(w, http.StatusTooManyRequests, reason)
			return
		}
	}

	admin, ok, err := h.SessionMgr.Login(w, r, email, req.Password)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.ErrLog.LogCancelled(r, "login abandoned", err)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "login: save session", err, "A server error occurred.")
		return
	case !ok:
		h.AuditLog.LoginFailed(r.Context(), r, email)
		jsonutil.Error(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	if h.Limiter != nil {
		h.Limiter.ResetEmail(email)
	}
	h.AuditLog.LoginSuccess(r.Context(), r, admin)

	jsonutil.Write(w, http.StatusOK, loginResponse{
		Admin:     admin,
		ExpiresAt: h.SessionMgr.Expiry().UTC(),
		Redirect:  urlutil.SafeReturn(req.ReturnURL, "", DefaultReturn),
	})
}
