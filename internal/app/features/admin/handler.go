// internal/app/features/admin/handler.go
package admin

import (
	"net/http"
	"strconv"

	errorsfeature "github.com/dalemusser/startupbridge/internal/app/features/errors"
	"github.com/dalemusser/startupbridge/internal/app/store/activity"
	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	messagestore "github.com/dalemusser/startupbridge/internal/app/store/messages"
	"github.com/dalemusser/startupbridge/internal/app/system/auth"
	"github.com/dalemusser/startupbridge/internal/app/system/moderation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the admin console: the moderation table, stats, the
// activity list, the contact outbox and the data export.
type Handler struct {
	Listings   *listingstore.Store
	Activity   *activity.Store
	Messages   *messagestore.Store
	Moderation *moderation.Service
	SessionMgr *auth.SessionManager
	ErrLog     *errorsfeature.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(
	listings *listingstore.Store,
	acts *activity.Store,
	messages *messagestore.Store,
	mod *moderation.Service,
	sessionMgr *auth.SessionManager,
	errLog *errorsfeature.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Listings:   listings,
		Activity:   acts,
		Messages:   messages,
		Moderation: mod,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
	}
}

func listingID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
