package auth

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dalemusser/startupbridge/internal/app/system/jsonutil"
	"github.com/dalemusser/startupbridge/internal/app/system/timeouts"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// AccessDeniedPath is where HTML callers land when the admin guard fails.
const AccessDeniedPath = "/access-denied"

// Config describes the admin session cookie.
type Config struct {
	Key      string
	Name     string
	Domain   string
	Duration time.Duration
	// Secure marks cookies Secure with SameSite=None; otherwise Lax.
	Secure bool
}

// SessionManager binds AdminSessions to a signed cookie. Each request
// resumes its own AdminSession from the cookie, so the cookie is the
// persisted slot and its max-age enforces expiry across requests.
type SessionManager struct {
	store    *sessions.CookieStore
	name     string
	duration time.Duration
	idp      IdentityProvider
	log      *zap.Logger

	now      func() time.Time
	schedule Scheduler
}

// NewSessionManager validates cfg and builds the cookie store.
func NewSessionManager(cfg Config, idp IdentityProvider, logger *zap.Logger) (*SessionManager, error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(cfg.Key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(cfg.Key)))
	}
	if cfg.Name == "" {
		return nil, errors.New("session name is empty")
	}
	if idp == nil {
		return nil, errors.New("identity provider is nil")
	}
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	// The cookie max-age is whole seconds; zero would disable it.
	if cfg.Duration < time.Second {
		return nil, fmt.Errorf("session duration %s is shorter than one second", cfg.Duration)
	}

	store := sessions.NewCookieStore([]byte(cfg.Key))
	opts := &sessions.Options{
		Domain:   cfg.Domain,
		Path:     "/",
		Secure:   cfg.Secure,
		HttpOnly: true,
	}
	if cfg.Secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts
	// Also bounds the signed timestamp, so a cookie older than the session
	// lifetime fails to decode.
	store.MaxAge(int(cfg.Duration / time.Second))

	logger.Info("admin session store initialized",
		zap.String("name", cfg.Name),
		zap.Bool("secure", cfg.Secure),
		zap.String("domain", cfg.Domain),
		zap.Duration("duration", cfg.Duration))

	return &SessionManager{
		store:    store,
		name:     cfg.Name,
		duration: cfg.Duration,
		idp:      idp,
		log:      logger,
		now:      time.Now,
		schedule: AfterFunc,
	}, nil
}

// Duration returns the session lifetime.
func (sm *SessionManager) Duration() time.Duration { return sm.duration }

// Expiry returns when a session started now would lapse.
func (sm *SessionManager) Expiry() time.Time { return sm.now().Add(sm.duration) }

// SetClock replaces the clock sessions are started and checked with.
// Tests only.
func (sm *SessionManager) SetClock(now func() time.Time) { sm.now = now }

// LoadAdmin reads the admin session carried by the request cookie and,
// when its window is still open, injects the admin into the request
// context. It never extends the window, so the cookie is only written
// to clear a lapsed, malformed, or stale session.
func (sm *SessionManager) LoadAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, slot := sm.open(r)
		as := sm.session(slot)
		defer as.Close()

		if as.Load() {
			if admin, ok := as.CurrentAdmin(); ok {
				r = WithAdmin(r, &admin)
			}
		}
		if err := sm.save(w, r, sess, slot); err != nil {
			sm.log.Warn("admin session cookie not written", zap.Error(err))
		}
		next.ServeHTTP(w, r)
	})
}

// Resume is the console's explicit session check. A live session starts a
// new window and the cookie is re-issued; anything else is cleared.
// It returns the admin and the new expiry.
func (sm *SessionManager) Resume(w http.ResponseWriter, r *http.Request) (models.Admin, time.Time, bool) {
	sess, slot := sm.open(r)
	as := sm.session(slot)
	defer as.Close()

	ok := as.CheckSession()
	if ok {
		slot.Touch()
	}
	if err := sm.save(w, r, sess, slot); err != nil {
		sm.log.Warn("admin session cookie not written", zap.Error(err))
		return models.Admin{}, time.Time{}, false
	}
	if !ok {
		return models.Admin{}, time.Time{}, false
	}
	admin, _ := as.CurrentAdmin()
	return admin, as.ExpiresAt(), true
}

// RequireAdmin ensures there is an admin in context (set by LoadAdmin).
// If not:
//   - HTMX: sends HX-Redirect to the access-denied page
//   - HTML: 303 redirect to the access-denied page
//   - API:  401 with a JSON error body.
func (sm *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentAdmin(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		dest := AccessDeniedPath + "?return=" + url.QueryEscape(currentURI(r))

		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", dest)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if wantsHTML(r) {
			http.Redirect(w, r, dest, http.StatusSeeOther)
			return
		}
		jsonutil.Error(w, http.StatusUnauthorized, "unauthorized")
	})
}

// Login checks the credentials and, on success, writes the session
// cookie. A false result with a nil error is a credential mismatch; the
// cookie is not touched then.
func (sm *SessionManager) Login(w http.ResponseWriter, r *http.Request, email, password string) (models.Admin, bool, error) {
	sess, slot := sm.open(r)
	as := sm.session(slot)
	defer as.Close()

	ok, err := as.Login(r.Context(), email, password)
	if err != nil || !ok {
		return models.Admin{}, false, err
	}
	if err := sm.save(w, r, sess, slot); err != nil {
		return models.Admin{}, false, fmt.Errorf("save admin session: %w", err)
	}
	admin, _ := as.CurrentAdmin()
	return admin, true, nil
}

// Logout clears the session cookie.
func (sm *SessionManager) Logout(w http.ResponseWriter, r *http.Request) error {
	sess, slot := sm.open(r)
	as := sm.session(slot)
	defer as.Close()

	as.Logout()
	return sm.save(w, r, sess, slot)
}

func (sm *SessionManager) session(slot Slot) *AdminSession {
	return NewAdminSession(slot, sm.idp, SessionOptions{
		Duration:   sm.duration,
		LoginDelay: timeouts.LoginDelay(),
		Now:        sm.now,
		Schedule:   sm.schedule,
		Log:        sm.log,
	})
}

// open loads the named cookie session. A cookie that fails to decode
// (tampered, signed with an old key, or older than max-age) yields an
// empty session flagged for deletion.
func (sm *SessionManager) open(r *http.Request) (*sessions.Session, *CookieSlot) {
	sess, err := sm.store.Get(r, sm.name)
	if sess == nil {
		sess = sessions.NewSession(sm.store, sm.name)
		opts := *sm.store.Options
		sess.Options = &opts
	}
	slot := NewCookieSlot(sess)
	if err != nil {
		var cerr securecookie.Error
		if errors.As(err, &cerr) && cerr.IsDecode() {
			sm.log.Debug("admin session cookie rejected", zap.Error(err))
		} else {
			sm.log.Warn("admin session cookie unreadable", zap.Error(err))
		}
		for k := range sess.Values {
			delete(sess.Values, k)
		}
		slot.stale = true
	}
	return sess, slot
}

func (sm *SessionManager) save(w http.ResponseWriter, r *http.Request, sess *sessions.Session, slot *CookieSlot) error {
	switch {
	case slot.Dirty() && !slot.Empty():
		sess.Options.MaxAge = int(sm.duration / time.Second)
	case slot.Dirty() || slot.stale:
		sess.Options.MaxAge = -1
	default:
		return nil
	}
	return sess.Save(r, w)
}
