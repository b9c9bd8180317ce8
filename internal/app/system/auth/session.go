package auth

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dalemusser/startupbridge/internal/app/system/timeouts"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"go.uber.org/zap"
)

// Keys written to the Slot. KeyExpires holds the absolute end of the
// window (RFC 3339, UTC) so a reader that did not start the session can
// still enforce it.
const (
	KeyActive  = "admin_session"
	KeyAdmin   = "admin_user"
	KeyExpires = "admin_expires"

	activeFlag = "active"
)

// DefaultDuration is the fixed lifetime of a session, counted from the
// last login or resume (CheckSession). Load and other activity do not
// extend it.
const DefaultDuration = 15 * time.Minute

// Scheduler runs fire once after d and returns a function that cancels the
// pending call. The returned function reports whether it stopped the call
// before it ran, like (*time.Timer).Stop.
type Scheduler func(d time.Duration, fire func()) (stop func() bool)

// AfterFunc is the real-time Scheduler.
func AfterFunc(d time.Duration, fire func()) func() bool {
	return time.AfterFunc(d, fire).Stop
}

// SessionOptions tune an AdminSession. Zero values select defaults.
type SessionOptions struct {
	Duration   time.Duration
	LoginDelay time.Duration
	Now        func() time.Time
	Schedule   Scheduler
	Log        *zap.Logger
}

// AdminSession is the admin authentication state machine:
// anonymous -> authenticated (login or resume) -> anonymous (logout,
// expiry, or malformed persisted data). It is the only writer of its Slot.
type AdminSession struct {
	mu   sync.Mutex
	slot Slot
	idp  IdentityProvider
	opts SessionOptions

	admin     *models.Admin
	expiresAt time.Time
	stop      func() bool
	// gen invalidates expiry callbacks scheduled for an earlier session.
	gen uint64
}

// NewAdminSession returns an anonymous session bound to slot.
func NewAdminSession(slot Slot, idp IdentityProvider, opts SessionOptions) *AdminSession {
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Schedule == nil {
		opts.Schedule = AfterFunc
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return &AdminSession{slot: slot, idp: idp, opts: opts}
}

// Login waits the configured latency, then checks the credentials. On a
// match it persists the identity, starts the expiry timer and returns true.
// On a mismatch it returns false and leaves the slot untouched. The error
// is non-nil only when ctx ends during the wait; state is unchanged then.
func (s *AdminSession) Login(ctx context.Context, email, password string) (bool, error) {
	if err := timeouts.Delay(ctx, s.opts.LoginDelay); err != nil {
		return false, err
	}
	admin, ok := s.idp.Verify(ctx, email, password)
	if !ok {
		return false, nil
	}
	admin.LastLogin = s.opts.Now().UTC().Format(time.RFC3339)
	raw, err := json.Marshal(admin)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot.Set(KeyActive, activeFlag)
	s.slot.Set(KeyAdmin, string(raw))
	s.start(admin, s.opts.Now().Add(s.opts.Duration))
	return true, nil
}

// CheckSession resumes from the slot. A present, well-formed identity
// whose window has not lapsed is restored and a new window started.
// Anything else clears the session and its persisted keys. Safe to call
// repeatedly.
func (s *AdminSession) CheckSession() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, expiresAt, ok := s.readSlot(false)
	if !ok {
		s.clear()
		return false
	}
	if !expiresAt.IsZero() && !s.opts.Now().Before(expiresAt) {
		s.clear()
		return false
	}
	s.start(admin, s.opts.Now().Add(s.opts.Duration))
	return true
}

// Load restores the persisted session without extending it: the window
// keeps the end recorded at the last login or resume. A lapsed window, a
// missing end, or malformed data clears the session.
func (s *AdminSession) Load() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, expiresAt, ok := s.readSlot(true)
	if !ok || !s.opts.Now().Before(expiresAt) {
		s.clear()
		return false
	}
	s.start(admin, expiresAt)
	return true
}

// readSlot must be called with mu held. The returned expiry is zero when
// the slot has none and needExpiry is false.
func (s *AdminSession) readSlot(needExpiry bool) (models.Admin, time.Time, bool) {
	flag, okFlag := s.slot.Get(KeyActive)
	raw, okAdmin := s.slot.Get(KeyAdmin)
	if !okFlag || !okAdmin || flag != activeFlag {
		return models.Admin{}, time.Time{}, false
	}

	var admin models.Admin
	if err := json.Unmarshal([]byte(raw), &admin); err != nil || admin.Email == "" {
		s.opts.Log.Debug("discarding malformed admin session", zap.Error(err))
		return models.Admin{}, time.Time{}, false
	}

	rawExp, okExp := s.slot.Get(KeyExpires)
	if !okExp {
		return admin, time.Time{}, !needExpiry
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, rawExp)
	if err != nil {
		s.opts.Log.Debug("discarding admin session with bad expiry", zap.Error(err))
		return models.Admin{}, time.Time{}, false
	}
	return admin, expiresAt, true
}

// Logout clears the session and cancels the expiry timer.
func (s *AdminSession) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
}

// IsAuthenticated reports whether a live session exists. A read past the
// expiry time clears the session even if the timer has not fired.
func (s *AdminSession) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()
	return s.admin != nil
}

// CurrentAdmin returns the signed-in admin.
func (s *AdminSession) CurrentAdmin() (models.Admin, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()
	if s.admin == nil {
		return models.Admin{}, false
	}
	return *s.admin, true
}

// ExpiresAt returns the expiry of the live session, or the zero time.
func (s *AdminSession) ExpiresAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireIfDue()
	return s.expiresAt
}

// Close cancels the pending expiry timer without touching session state.
// Call it when the owner of the session goes away.
func (s *AdminSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimer()
}

// start must be called with mu held.
func (s *AdminSession) start(admin models.Admin, expiresAt time.Time) {
	s.stopTimer()
	s.gen++
	gen := s.gen
	s.admin = &admin
	s.expiresAt = expiresAt
	s.slot.Set(KeyExpires, expiresAt.UTC().Format(time.RFC3339Nano))
	s.stop = s.opts.Schedule(expiresAt.Sub(s.opts.Now()), func() { s.expire(gen) })
}

func (s *AdminSession) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.admin == nil {
		return
	}
	s.stop = nil
	s.clear()
}

// expireIfDue must be called with mu held.
func (s *AdminSession) expireIfDue() {
	if s.admin != nil && !s.opts.Now().Before(s.expiresAt) {
		s.clear()
	}
}

// clear must be called with mu held.
func (s *AdminSession) clear() {
	s.stopTimer()
	s.gen++
	s.admin = nil
	s.expiresAt = time.Time{}
	s.slot.Delete(KeyActive)
	s.slot.Delete(KeyAdmin)
	s.slot.Delete(KeyExpires)
}

func (s *AdminSession) stopTimer() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}
