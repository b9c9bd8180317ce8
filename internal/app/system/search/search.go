// internal/app/system/search/search.go
package search

import (
	"strings"

	"github.com/dalemusser/startupbridge/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// Sentinel values that switch a categorical filter off. An empty value
// does the same.
const (
	AllTypes      = "all-types"
	AllCountries  = "all-countries"
	AllIndustries = "all-industries"
	AllStatuses   = "all"
)

// ListingCriteria narrows a listing collection. Status "" keeps every
// status; public pages fix it to approved via Public.
type ListingCriteria struct {
	Text         string
	BusinessType string
	Country      string
	Industry     string
	Status       models.ListingStatus
}

// Public returns c with the status fixed to approved.
func Public(c ListingCriteria) ListingCriteria {
	c.Status = models.StatusApproved
	return c
}

// Listings returns the listings matching every criterion, in input order.
// Text matches name or description, ignoring case. Categorical criteria
// compare exactly unless set to "" or their sentinel.
func Listings(in []models.Listing, c ListingCriteria) []models.Listing {
	q := fold(c.Text)
	out := make([]models.Listing, 0, len(in))
	for _, l := range in {
		if c.Status != "" && l.Status != c.Status {
			continue
		}
		if !containsAny(q, l.Name, l.Description) {
			continue
		}
		if !facetMatch(c.BusinessType, AllTypes, l.BusinessType) ||
			!facetMatch(c.Country, AllCountries, l.Country) ||
			!facetMatch(c.Industry, AllIndustries, l.Industry) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Featured returns the first n approved listings.
func Featured(in []models.Listing, n int) []models.Listing {
	out := Listings(in, Public(ListingCriteria{}))
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// AdminCriteria is the admin console's filter: a status (or "all") and a
// free-text query over name, industry, and country.
type AdminCriteria struct {
	Text   string
	Status string
}

// AdminListings filters listings for the moderation table. An unknown
// status value matches nothing.
func AdminListings(in []models.Listing, c AdminCriteria) []models.Listing {
	q := fold(c.Text)
	st := strings.TrimSpace(c.Status)
	out := make([]models.Listing, 0, len(in))
	for _, l := range in {
		if st != "" && !strings.EqualFold(st, AllStatuses) && !strings.EqualFold(st, string(l.Status)) {
			continue
		}
		if !containsAny(q, l.Name, l.Industry, l.Country) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// NeedCriteria narrows the needs board.
type NeedCriteria struct {
	Text    string
	Type    string
	Country string
}

// Needs returns the needs matching every criterion, in input order. Text
// matches title, description, or business name.
func Needs(in []models.Need, c NeedCriteria) []models.Need {
	q := fold(c.Text)
	out := make([]models.Need, 0, len(in))
	for _, n := range in {
		if !containsAny(q, n.Title, n.Description, n.BusinessName) {
			continue
		}
		if !facetMatch(c.Type, AllTypes, n.Type) || !facetMatch(c.Country, AllCountries, n.Country) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return text.Fold(s)
}

// containsAny reports whether folded query q occurs in any field. An empty
// query matches everything.
func containsAny(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(text.Fold(f), q) {
			return true
		}
	}
	return false
}

func facetMatch(want, sentinel, got string) bool {
	if want == "" || want == sentinel {
		return true
	}
	return want == got
}
