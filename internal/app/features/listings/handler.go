// internal/app/features/listings/handler.go
package listings

import (
	"net/http"
	"strconv"
	"time"

	errorsfeature "github.com/dalemusser/startupbridge/internal/app/features/errors"
	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	"github.com/dalemusser/startupbridge/internal/app/system/auditlog"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the public catalog and the sell/register submission.
type Handler struct {
	Listings *listingstore.Store
	Audit    *auditlog.Logger
	ErrLog   *errorsfeature.ErrorLogger
	Log      *zap.Logger

	now func() time.Time
}

func NewHandler(listings *listingstore.Store, audit *auditlog.Logger, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Listings: listings,
		Audit:    audit,
		ErrLog:   errLog,
		Log:      logger,
		now:      time.Now,
	}
}

// SetClock replaces the clock used for the founding-year bound.
func (h *Handler) SetClock(now func() time.Time) { h.now = now }

// publicView hides the owner's address; buyers reach owners through the
// contact form.
func publicView(l models.Listing) models.Listing {
	l.ContactEmail = ""
	return l
}

func publicViews(in []models.Listing) []models.Listing {
	out := make([]models.Listing, len(in))
	for i, l := range in {
		out[i] = publicView(l)
	}
	return out
}

// listingID parses the {id} URL parameter.
func listingID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
