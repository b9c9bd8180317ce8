// internal/app/store/listings/listingstore.go
package listingstore

import (
	"sync"
	"time"

	"github.com/dalemusser/startupbridge/internal/domain/models"
)

// Stats summarizes the collection by moderation status.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// Store is the in-memory Listing collection, ordered newest first.
// It is the only writer of listings; readers get copies.
type Store struct {
	mu    sync.RWMutex
	items []models.Listing
	now   func() time.Time
}

// New returns an empty Store using the wall clock.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock returns an empty Store that stamps CreatedAt and the default
// year with now.
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// Seed appends listings as-is (ids and statuses preserved) to the end of
// the collection. It is meant for startup catalogs, not for submissions.
func (s *Store) Seed(listings []models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range listings {
		s.items = append(s.items, clone(l))
	}
}

// Add creates a pending listing from in with a fresh id (max existing id
// + 1, or 1 when empty) and inserts it at the front. It always succeeds.
func (s *Store) Add(in models.ListingInput) models.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := models.NewListing(s.nextID(), in, s.now())
	s.items = append([]models.Listing{l}, s.items...)
	return clone(l)
}

// UpdateStatus sets the status of the listing with the given id. Any known
// status may replace any other. Unknown ids and unknown statuses leave the
// collection untouched and report false.
func (s *Store) UpdateStatus(id int, status models.ListingStatus) (models.Listing, bool) {
	if _, ok := models.ParseListingStatus(string(status)); !ok {
		return models.Listing{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Listing{}, false
	}
	s.items[i].Status = status
	return clone(s.items[i]), true
}

// Remove deletes the listing with the given id and returns it. Unknown ids
// are a no-op.
func (s *Store) Remove(id int) (models.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Listing{}, false
	}
	removed := s.items[i]
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return removed, true
}

// Get returns the listing with the given id.
func (s *Store) Get(id int) (models.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Listing{}, false
	}
	return clone(s.items[i]), true
}

// List returns a snapshot of the whole collection, newest first.
func (s *Store) List() []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Listing, len(s.items))
	for i, l := range s.items {
		out[i] = clone(l)
	}
	return out
}

// Len reports the number of listings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Counts tallies listings by status.
func (s *Store) Counts() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Total: len(s.items)}
	for _, l := range s.items {
		switch l.Status {
		case models.StatusPending:
			st.Pending++
		case models.StatusApproved:
			st.Approved++
		case models.StatusRejected:
			st.Rejected++
		}
	}
	return st
}

// nextID must be called with mu held.
func (s *Store) nextID() int {
	maxID := 0
	for _, l := range s.items {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	return maxID + 1
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id int) int {
	for i, l := range s.items {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func clone(l models.Listing) models.Listing {
	if l.Highlights != nil {
		l.Highlights = append([]string(nil), l.Highlights...)
	}
	return l
}
