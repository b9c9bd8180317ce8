// internal/app/store/needs/needstore.go
package needstore

import (
	"sync"
	"time"

	"github.com/dalemusser/startupbridge/internal/domain/models"
)

// Store is the in-memory collection of business needs, newest first.
type Store struct {
	mu    sync.RWMutex
	items []models.Need
	now   func() time.Time
}

func New() *Store {
	return NewWithClock(time.Now)
}

func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// Seed appends needs as-is to the end of the collection.
func (s *Store) Seed(needs []models.Need) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, needs...)
}

// Add posts a need with a fresh id and inserts it at the front. Needs are
// public immediately.
func (s *Store) Add(in models.NeedInput) models.Need {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, n := range s.items {
		if n.ID > maxID {
			maxID = n.ID
		}
	}
	n := models.NewNeed(maxID+1, in, s.now())
	s.items = append([]models.Need{n}, s.items...)
	return n
}

func (s *Store) Get(id int) (models.Need, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.items {
		if n.ID == id {
			return n, true
		}
	}
	return models.Need{}, false
}

// List returns a snapshot of all needs, newest first.
func (s *Store) List() []models.Need {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Need(nil), s.items...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
