// internal/app/features/admin/listings.go
package admin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/startupbridge/internal/app/system/auth"
	"github.com/dalemusser/startupbridge/internal/app/system/jsonutil"
	"github.com/dalemusser/startupbridge/internal/app/system/paging"
	"github.com/dalemusser/startupbridge/internal/app/system/search"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

type listResponse struct {
	Listings []models.Listing `json:"listings"`
	Page     paging.Info      `json:"page"`
}

type actionResponse struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Listing     models.Listing `json:"listing"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin/listings – moderation table                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeListings lists every listing whatever its status, narrowed by
// ?status= (pending, approved, rejected or all) and ?q= over name,
// industry and country.
func (h *Handler) ServeListings(w http.ResponseWriter, r *http.Request) {
	matched := search.AdminListings(h.Listings.List(), search.AdminCriteria{
		Text:   query.Search(r, "q"),
		Status: query.Get(r, "status"),
	})
	rows, info := paging.Page(matched, paging.ParseStart(r), paging.ParseLimit(r, paging.PageSize))
	jsonutil.Write(w, http.StatusOK, listResponse{Listings: rows, Page: info})
}

// ServeListing returns one listing with its owner's contact details.
func (h *Handler) ServeListing(w http.ResponseWriter, r *http.Request) {
	id, ok := listingID(r)
	if !ok {
		jsonutil.Error(w, http.StatusNotFound, "Listing not found.")
		return
	}
	l, found := h.Listings.Get(id)
	if !found {
		jsonutil.Error(w, http.StatusNotFound, "Listing not found.")
		return
	}
	jsonutil.Write(w, http.StatusOK, l)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/listings/{id}/approve|reject|reopen, DELETE /admin/listings/{id} |
*─────────────────────────────────────────────────────────────────────────────*/

type modFunc func(ctx context.Context, admin models.Admin, id int) (models.Listing, bool)

func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.Moderation.Approve, "Business Approved", "%s has been approved successfully")
}

func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.Moderation.Reject, "Business Rejected", "%s has been rejected")
}

func (h *Handler) HandleReopen(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.Moderation.Reopen, "Business Reopened", "%s has been returned to pending review")
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.Moderation.Delete, "Business Deleted", "%s has been permanently deleted")
}

// moderate runs one moderation action for the admin in context. An
// unknown id changes nothing and answers 404.
func (h *Handler) moderate(w http.ResponseWriter, r *http.Request, fn modFunc, title, descFmt string) {
	admin, ok := auth.CurrentAdmin(r)
	if !ok {
		jsonutil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := listingID(r)
	if !ok {
		jsonutil.Error(w, http.StatusNotFound, "Listing not found.")
		return
	}

	l, found := fn(r.Context(), *admin, id)
	if !found {
		jsonutil.Error(w, http.StatusNotFound, "Listing not found.")
		return
	}

	jsonutil.Write(w, http.StatusOK, actionResponse{
		Title:       title,
		Description: fmt.Sprintf(descFmt, l.Name),
		Listing:     l,
	})
}
