package health

import (
	"net/http"

	"github.com/dalemusser/startupbridge/internal/app/store/activity"
	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	needstore "github.com/dalemusser/startupbridge/internal/app/store/needs"
	"github.com/dalemusser/startupbridge/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Listings *listingstore.Store
	Needs    *needstore.Store
	Activity *activity.Store
	Log      *zap.Logger
}

// NewHandler constructs a health Handler over the in-memory stores.
func NewHandler(listings *listingstore.Store, needs *needstore.Store, acts *activity.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Listings: listings,
		Needs:    needs,
		Activity: acts,
		Log:      logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status     string `json:"status"`
	Storage    string `json:"storage"`
	Message    string `json:"message,omitempty"`
	Listings   int    `json:"listings"`
	Needs      int    `json:"needs"`
	Activities int    `json:"activities"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "storage":"memory", "listings":6, "needs":6, "activities":0 }
//
// When a store is missing: 503 and
//
//	{ "status":"error", "storage":"unavailable", "message":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	if h.Listings == nil || h.Needs == nil || h.Activity == nil {
		h.Log.Error("health-check: store not initialized")
		jsonutil.Write(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "error",
			Storage: "unavailable",
			Message: "Storage not initialized",
		})
		return
	}

	jsonutil.Write(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Storage:    "memory",
		Listings:   h.Listings.Len(),
		Needs:      h.Needs.Len(),
		Activities: h.Activity.Len(),
	})
}
