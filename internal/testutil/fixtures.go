package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/startupbridge/internal/app/store/activity"
	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	messagestore "github.com/dalemusser/startupbridge/internal/app/store/messages"
	needstore "github.com/dalemusser/startupbridge/internal/app/store/needs"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures holds a fresh set of in-memory stores and helpers for filling
// them.
type Fixtures struct {
	Listings *listingstore.Store
	Needs    *needstore.Store
	Activity *activity.Store
	Messages *messagestore.Store

	t *testing.T
}

// NewFixtures creates empty stores for one test.
func NewFixtures(t *testing.T) *Fixtures {
	t.Helper()
	return &Fixtures{
		Listings: listingstore.New(),
		Needs:    needstore.New(),
		Activity: activity.New(activity.DefaultCapacity),
		Messages: messagestore.New(messagestore.DefaultCapacity),
		t:        t,
	}
}

// CreateListing submits a listing and moves it to status. Returns the
// listing as stored.
func (f *Fixtures) CreateListing(name string, status models.ListingStatus) models.Listing {
	f.t.Helper()

	l := f.Listings.Add(models.ListingInput{
		Name:         name,
		Description:  name + " description",
		Country:      "United States",
		Industry:     "SaaS",
		BusinessType: "SaaS",
		ContactEmail: "owner@example.com",
	})
	if status != models.StatusPending {
		var ok bool
		if l, ok = f.Listings.UpdateStatus(l.ID, status); !ok {
			f.t.Fatalf("UpdateStatus(%d) found nothing", l.ID)
		}
	}
	return l
}

// CreateNeed posts a need with the given title.
func (f *Fixtures) CreateNeed(title, needType string) models.Need {
	f.t.Helper()

	return f.Needs.Add(models.NeedInput{
		Title:        title,
		Type:         needType,
		Description:  title + " description",
		BusinessName: "Test Business",
		Country:      "United States",
		ContactEmail: "owner@example.com",
		PostedDate:   time.Now().UTC().Format(models.PostedDateLayout),
	})
}

// TestContext returns a context with a timeout suitable for tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
