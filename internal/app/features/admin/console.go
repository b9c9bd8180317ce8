// internal/app/features/admin/console.go
package admin

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	"github.com/dalemusser/startupbridge/internal/app/system/jsonutil"
	"github.com/dalemusser/startupbridge/internal/app/system/paging"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// ExportFilename names the attachment served by ServeExport.
const ExportFilename = "business_data.json"

// DefaultActivityLimit is how many entries the activity list shows
// without ?limit=.
const DefaultActivityLimit = 20

type sessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	Admin         *models.Admin `json:"admin,omitempty"`
	ExpiresAt     *time.Time    `json:"expiresAt,omitempty"`
}

// ServeSession reports whether the request carries a live admin session.
// It is the resume check the console runs once when it opens, so a live
// session starts a new window here and nowhere else.
func (h *Handler) ServeSession(w http.ResponseWriter, r *http.Request) {
	admin, exp, ok := h.SessionMgr.Resume(w, r)
	if !ok {
		jsonutil.Write(w, http.StatusOK, sessionResponse{Authenticated: false})
		return
	}
	exp = exp.UTC()
	jsonutil.Write(w, http.StatusOK, sessionResponse{
		Authenticated: true,
		Admin:         &admin,
		ExpiresAt:     &exp,
	})
}

// ServeStats returns listing counts by status.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	jsonutil.Write(w, http.StatusOK, h.Listings.Counts())
}

type activityResponse struct {
	Activities []models.Activity `json:"activities"`
}

// ServeActivity returns the most recent moderation actions, newest first.
func (h *Handler) ServeActivity(w http.ResponseWriter, r *http.Request) {
	limit := paging.ParseLimit(r, DefaultActivityLimit)
	jsonutil.Write(w, http.StatusOK, activityResponse{Activities: h.Activity.Recent(limit)})
}

type messagesResponse struct {
	Messages []models.Message `json:"messages"`
}

// ServeMessages returns the contact outbox, optionally narrowed by
// ?recipientType=business|need.
func (h *Handler) ServeMessages(w http.ResponseWriter, r *http.Request) {
	kind := query.Get(r, "recipientType")
	limit := paging.ParseLimit(r, paging.PageSize)
	jsonutil.Write(w, http.StatusOK, messagesResponse{Messages: h.Messages.List(kind, limit)})
}

type exportDocument struct {
	ExportedAt time.Time          `json:"exportedAt"`
	Stats      listingstore.Stats `json:"stats"`
	Businesses []models.Listing   `json:"businesses"`
}

// ServeExport downloads every listing as indented JSON.
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	doc := exportDocument{
		ExportedAt: time.Now().UTC(),
		Stats:      h.Listings.Counts(),
		Businesses: h.Listings.List(),
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "export: marshal", err, "Unable to export data.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.Log.Warn("export: write", zap.Error(err))
	}
}
