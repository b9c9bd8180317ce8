// internal/app/features/listings/list.go
package listings

import (
	"net/http"

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

/*─────────────────────────────────────────────────────────────────────────────*
| GET /listings – public browse                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeList answers the browse page: approved listings narrowed by
// ?q=, ?type=, ?country= and ?industry=, paged with ?start= and ?limit=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	criteria := search.Public(search.ListingCriteria{
		Text:         query.Search(r, "q"),
		BusinessType: query.Get(r, "type"),
		Country:      query.Get(r, "country"),
		Industry:     query.Get(r, "industry"),
	})

	matched := search.Listings(h.Listings.List(), criteria)
	rows, info := paging.Page(matched, paging.ParseStart(r), paging.ParseLimit(r, paging.PageSize))

	jsonutil.Write(w, http.StatusOK, listResponse{
		Listings: publicViews(rows),
		Page:     info,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /listings/{id} – public detail                                          |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDetail returns one approved listing. Pending and rejected listings
// are indistinguishable from missing ones.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := listingID(r)
	if !ok {
		jsonutil.Error(w, http.StatusNotFound, "Listing not found.")
		return
	}

	l, found := h.Listings.Get(id)
	if !found || l.Status != models.StatusApproved {
		jsonutil.Error(w, http.StatusNotFound, "Listing not found.")
		return
	}

	jsonutil.Write(w, http.StatusOK, publicView(l))
}
