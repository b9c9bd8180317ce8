package home_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/startupbridge/internal/app/features/home"
	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	needstore "github.com/dalemusser/startupbridge/internal/app/store/needs"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *home.Handler {
	t.Helper()
	listings := listingstore.New()
	listings.Seed([]models.Listing{
		{ID: 5, Name: "E", Status: models.StatusApproved, ContactEmail: "e@example.com"},
		{ID: 4, Name: "D", Status: models.StatusPending},
		{ID: 3, Name: "C", Status: models.StatusApproved},
		{ID: 2, Name: "B", Status: models.StatusApproved},
		{ID: 1, Name: "A", Status: models.StatusApproved},
	})
	needs := needstore.New()
	needs.Seed([]models.Need{{ID: 1, Title: "Help"}})
	return home.NewHandler(listings, needs, zap.NewNop())
}

func TestServeRoot(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	home.Routes(h).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Featured []models.Listing `json:"featured"`
		Counts   struct {
			Businesses int `json:"businesses"`
			Needs      int `json:"needs"`
		} `json:"counts"`
		Facets home.Facets `json:"facets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	var got []string
	for _, l := range body.Featured {
		got = append(got, l.Name)
	}
	if strings.Join(got, ",") != "E,C,B" {
		t.Errorf("featured = %v, want [E C B]", got)
	}
	if body.Counts.Businesses != 4 || body.Counts.Needs != 1 {
		t.Errorf("counts = %+v", body.Counts)
	}
	if len(body.Facets.Countries) != len(models.Countries) {
		t.Errorf("countries facet has %d entries", len(body.Facets.Countries))
	}
	if strings.Contains(rec.Body.String(), "e@example.com") {
		t.Error("featured listing exposed the contact email")
	}
}

func TestServeFacets(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	home.Routes(h).ServeHTTP(rec, httptest.NewRequest("GET", "/catalog/facets", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var f home.Facets
	if err := json.Unmarshal(rec.Body.Bytes(), &f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(f.NeedTypes) != len(models.NeedTypes) || len(f.Industries) != len(models.Industries) {
		t.Errorf("facets = %+v", f)
	}
}
