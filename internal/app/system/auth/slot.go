package auth

import (
	"sync"

	"github.com/gorilla/sessions"
)

// Slot is the persisted key-value storage an AdminSession writes to.
// Last writer wins.
type Slot interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemorySlot is a process-local Slot.
type MemorySlot struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemorySlot returns an empty MemorySlot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string]string)}
}

func (s *MemorySlot) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemorySlot) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemorySlot) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Snapshot returns a copy of the stored values.
func (s *MemorySlot) Snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// CookieSlot adapts a gorilla session to Slot. It records whether any
// value changed so callers only re-issue the cookie when needed.
type CookieSlot struct {
	sess  *sessions.Session
	dirty bool
	// stale marks a cookie that failed to decode and must be expired.
	stale bool
}

// NewCookieSlot wraps sess.
func NewCookieSlot(sess *sessions.Session) *CookieSlot {
	return &CookieSlot{sess: sess}
}

func (c *CookieSlot) Get(key string) (string, bool) {
	v, ok := c.sess.Values[key].(string)
	return v, ok
}

func (c *CookieSlot) Set(key, value string) {
	if cur, ok := c.sess.Values[key].(string); ok && cur == value {
		return
	}
	c.sess.Values[key] = value
	c.dirty = true
}

func (c *CookieSlot) Delete(key string) {
	if _, ok := c.sess.Values[key]; !ok {
		return
	}
	delete(c.sess.Values, key)
	c.dirty = true
}

// Touch marks the slot changed so the cookie is re-issued with a fresh
// timestamp.
func (c *CookieSlot) Touch() { c.dirty = true }

// Dirty reports whether the cookie must be written.
func (c *CookieSlot) Dirty() bool { return c.dirty }

// Empty reports whether the session holds no values at all.
func (c *CookieSlot) Empty() bool { return len(c.sess.Values) == 0 }
