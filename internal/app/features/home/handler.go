package home

import (
	"net/http"

	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	needstore "github.com/dalemusser/startupbridge/internal/app/store/needs"
	"github.com/dalemusser/startupbridge/internal/app/system/jsonutil"
	"github.com/dalemusser/startupbridge/internal/app/system/search"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"go.uber.org/zap"
)

// FeaturedCount is how many approved listings the landing summary shows.
const FeaturedCount = 3

// Handler holds dependencies needed to serve the landing summary.
type Handler struct {
	Listings *listingstore.Store
	Needs    *needstore.Store
	Log      *zap.Logger
}

func NewHandler(listings *listingstore.Store, needs *needstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Listings: listings,
		Needs:    needs,
		Log:      logger,
	}
}

// Facets are the choices offered by the browse filters and forms.
type Facets struct {
	Industries    []string `json:"industries"`
	BusinessTypes []string `json:"businessTypes"`
	NeedTypes     []string `json:"needTypes"`
	Countries     []string `json:"countries"`
}

func facets() Facets {
	return Facets{
		Industries:    models.Industries,
		BusinessTypes: models.BusinessTypes,
		NeedTypes:     models.NeedTypes,
		Countries:     models.Countries,
	}
}

type counts struct {
	Businesses int `json:"businesses"`
	Needs      int `json:"needs"`
}

type rootResponse struct {
	Featured []models.Listing `json:"featured"`
	Counts   counts           `json:"counts"`
	Facets   Facets           `json:"facets"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	all := h.Listings.List()
	featured := search.Featured(all, FeaturedCount)
	for i := range featured {
		featured[i].ContactEmail = ""
	}

	jsonutil.Write(w, http.StatusOK, rootResponse{
		Featured: featured,
		Counts: counts{
			Businesses: h.Listings.Counts().Approved,
			Needs:      h.Needs.Len(),
		},
		Facets: facets(),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /catalog/facets                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeFacets(w http.ResponseWriter, r *http.Request) {
	jsonutil.Write(w, http.StatusOK, facets())
}
