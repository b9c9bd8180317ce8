// internal/domain/models/listing.go
package models

import (
	"strings"
	"time"
)

// ListingStatus is the moderation state of a Listing.
type ListingStatus string

const (
	StatusPending  ListingStatus = "pending"
	StatusApproved ListingStatus = "approved"
	StatusRejected ListingStatus = "rejected"
)

// ParseListingStatus normalizes s and reports whether it names a known status.
func ParseListingStatus(s string) (ListingStatus, bool) {
	switch ListingStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusApproved:
		return StatusApproved, true
	case StatusRejected:
		return StatusRejected, true
	}
	return "", false
}

// Defaults applied by NewListing when the submitter leaves a field blank.
const (
	DefaultBusinessType = "Startup"
	NotDisclosed        = "Not disclosed"
	DefaultPrice        = "Contact for pricing"
)

// Listing is a business-for-sale record. Only approved listings are shown
// on public browse and search pages.
//
// TeamSize and Revenue are display strings ("5", "$350K/year", "Not disclosed").
type Listing struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Country         string        `json:"country"`
	Industry        string        `json:"industry"`
	BusinessType    string        `json:"businessType"`
	YearEstablished int           `json:"yearEstablished"`
	Revenue         string        `json:"revenue"`
	TeamSize        string        `json:"teamSize"`
	Price           string        `json:"price"`
	WebsiteURL      string        `json:"websiteUrl,omitempty"`
	LogoURL         string        `json:"logoUrl,omitempty"`
	ContactEmail    string        `json:"contactEmail,omitempty"`
	PitchVideo      string        `json:"pitchVideo,omitempty"` // client-side file name only
	Highlights      []string      `json:"highlights"`
	Status          ListingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// ListingInput carries the caller-supplied fields of a sell or register
// submission. Status is accepted for decoding convenience but ignored:
// new listings always start pending.
type ListingInput struct {
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Country         string        `json:"country"`
	Industry        string        `json:"industry"`
	BusinessType    string        `json:"businessType"`
	YearEstablished int           `json:"yearEstablished"`
	Revenue         string        `json:"revenue"`
	TeamSize        string        `json:"teamSize"`
	Price           string        `json:"price"`
	WebsiteURL      string        `json:"websiteUrl"`
	LogoURL         string        `json:"logoUrl"`
	ContactEmail    string        `json:"contactEmail"`
	PitchVideo      string        `json:"pitchVideo"`
	Highlights      []string      `json:"highlights"`
	Status          ListingStatus `json:"status"`
}

// NewListing builds a pending Listing from in, filling every omitted
// optional field with its default. now supplies CreatedAt and the default
// YearEstablished.
func NewListing(id int, in ListingInput, now time.Time) Listing {
	highlights := make([]string, 0, len(in.Highlights))
	highlights = append(highlights, in.Highlights...)

	return Listing{
		ID:              id,
		Name:            in.Name,
		Description:     in.Description,
		Country:         in.Country,
		Industry:        in.Industry,
		BusinessType:    orDefault(in.BusinessType, DefaultBusinessType),
		YearEstablished: orDefaultInt(in.YearEstablished, now.Year()),
		Revenue:         orDefault(in.Revenue, NotDisclosed),
		TeamSize:        orDefault(in.TeamSize, NotDisclosed),
		Price:           orDefault(in.Price, DefaultPrice),
		WebsiteURL:      in.WebsiteURL,
		LogoURL:         in.LogoURL,
		ContactEmail:    in.ContactEmail,
		PitchVideo:      in.PitchVideo,
		Highlights:      highlights,
		Status:          StatusPending,
		CreatedAt:       now,
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
