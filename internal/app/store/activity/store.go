// internal/app/store/activity/store.go
package activity

import (
	"sync"
	"time"

	"github.com/dalemusser/startupbridge/internal/domain/models"
	"github.com/google/uuid"
)

// DefaultCapacity bounds how many entries the in-memory list keeps.
const DefaultCapacity = 500

// Store is the admin console's activity list, newest first. Entries live
// only as long as the process.
type Store struct {
	mu       sync.RWMutex
	items    []models.Activity
	capacity int
	now      func() time.Time
}

// New creates an activity Store that keeps at most capacity entries.
// A non-positive capacity selects DefaultCapacity.
func New(capacity int) *Store {
	return NewWithClock(capacity, time.Now)
}

func NewWithClock(capacity int, now func() time.Time) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity, now: now}
}

// Record prepends an entry, assigning its ID and Timestamp when unset, and
// returns the stored entry. The oldest entries fall off past capacity.
func (s *Store) Record(a models.Activity) models.Activity {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = s.now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]models.Activity{a}, s.items...)
	if len(s.items) > s.capacity {
		s.items = s.items[:s.capacity]
	}
	return a
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all.
func (s *Store) Recent(limit int) []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.items)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]models.Activity(nil), s.items[:n]...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
