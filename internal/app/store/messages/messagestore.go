// internal/app/store/messages/messagestore.go
package messagestore

import (
	"sync"
	"time"

	"github.com/dalemusser/startupbridge/internal/domain/models"
	"github.com/google/uuid"
)

// DefaultCapacity bounds how many messages the outbox keeps.
const DefaultCapacity = 1000

// Store is the in-memory outbox of contact messages, newest first.
type Store struct {
	mu       sync.RWMutex
	items    []models.Message
	capacity int
	now      func() time.Time
}

func New(capacity int) *Store {
	return NewWithClock(capacity, time.Now)
}

func NewWithClock(capacity int, now func() time.Time) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity, now: now}
}

// Add stores m with a fresh ID and SentAt and returns the stored copy.
func (s *Store) Add(m models.Message) models.Message {
	m.ID = uuid.NewString()
	m.SentAt = s.now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]models.Message{m}, s.items...)
	if len(s.items) > s.capacity {
		s.items = s.items[:s.capacity]
	}
	return m
}

// List returns up to limit messages, newest first. limit <= 0 returns all.
// A non-empty recipientType keeps only messages addressed to that kind.
func (s *Store) List(recipientType string, limit int) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Message, 0, len(s.items))
	for _, m := range s.items {
		if recipientType != "" && m.RecipientType != recipientType {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
