package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/startupbridge/internal/app/system/auth"
	"github.com/dalemusser/startupbridge/internal/app/system/timeouts"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Credentials of the accounts served by TestProvider.
const (
	AdminEmail         = "admin@startupbridge.com"
	AdminPassword      = "admin123"
	SuperAdminEmail    = "super@startupbridge.com"
	SuperAdminPassword = "super123"
)

// SessionKey signs cookies in tests.
const SessionKey = "test-session-key-must-be-32-chars-long"

// TestProvider returns an identity provider with the admin and super
// admin accounts, hashed at bcrypt.MinCost.
func TestProvider(t *testing.T) *auth.StaticProvider {
	t.Helper()

	admin, err := auth.HashAccount(1, AdminEmail, AdminPassword, "Admin User", models.RoleAdmin, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash admin: %v", err)
	}
	super, err := auth.HashAccount(2, SuperAdminEmail, SuperAdminPassword, "Super Admin", models.RoleSuperAdmin, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash super admin: %v", err)
	}
	p, err := auth.NewStaticProvider(admin, super)
	if err != nil {
		t.Fatalf("provider: %v", err)
	}
	return p
}

// NewSessionManager builds a SessionManager over TestProvider with the
// sign-in delay disabled for the duration of the test.
func NewSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	timeouts.Configure(timeouts.Config{LoginDelay: 0, SubmitDelay: 0, ContactDelay: 0})
	t.Cleanup(timeouts.Reset)

	sm, err := auth.NewSessionManager(auth.Config{
		Key:      SessionKey,
		Name:     "test-admin",
		Duration: auth.DefaultDuration,
	}, TestProvider(t), zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}
	return sm
}

// LoginCookies signs the admin in through sm and returns the session
// cookies to attach to later requests.
func LoginCookies(t *testing.T, sm *auth.SessionManager) []*http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	if _, ok, err := sm.Login(rec, req, AdminEmail, AdminPassword); err != nil || !ok {
		t.Fatalf("Login = %v, %v", ok, err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login did not set a cookie")
	}
	return cookies
}

// AddCookies attaches cookies to r and returns it.
func AddCookies(r *http.Request, cookies []*http.Cookie) *http.Request {
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

// Clock is a settable time source.
type Clock struct{ T time.Time }

func (c *Clock) Now() time.Time { return c.T }

func (c *Clock) Advance(d time.Duration) { c.T = c.T.Add(d) }
