package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/startupbridge/internal/app/system/auth"
	"github.com/dalemusser/startupbridge/internal/app/system/timeouts"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const testKey = "test-session-key-must-be-32-chars-long"

func newTestSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	timeouts.Configure(timeouts.Config{LoginDelay: 0, SubmitDelay: 0})
	t.Cleanup(timeouts.Reset)

	sm, err := auth.NewSessionManager(auth.Config{
		Key:      testKey,
		Name:     "test-admin",
		Duration: 15 * time.Minute,
	}, testProvider(t), zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}
	return sm
}

func loginCookies(t *testing.T, sm *auth.SessionManager) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	rec := httptest.NewRecorder()
	admin, ok, err := sm.Login(rec, req, "admin@startupbridge.com", "admin123")
	if err != nil || !ok {
		t.Fatalf("Login = %v, %v", ok, err)
	}
	if admin.Email != "admin@startupbridge.com" {
		t.Fatalf("admin = %+v", admin)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login did not set a cookie")
	}
	return cookies
}

// capture records the admin LoadAdmin injected, if any.
func capture(got **models.Admin) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a, ok := auth.CurrentAdmin(r); ok {
			*got = a
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewSessionManager_Validation(t *testing.T) {
	p := testProvider(t)
	if _, err := auth.NewSessionManager(auth.Config{Name: "x"}, p, zap.NewNop()); err == nil {
		t.Error("expected error for empty key")
	}
	if _, err := auth.NewSessionManager(auth.Config{Key: testKey}, p, zap.NewNop()); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := auth.NewSessionManager(auth.Config{Key: testKey, Name: "x"}, nil, zap.NewNop()); err == nil {
		t.Error("expected error for nil provider")
	}
	sm, err := auth.NewSessionManager(auth.Config{Key: testKey, Name: "x"}, p, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if sm.Duration() != auth.DefaultDuration {
		t.Errorf("Duration = %v, want default", sm.Duration())
	}
}

func TestNewSessionManager_SubSecondDuration(t *testing.T) {
	_, err := auth.NewSessionManager(auth.Config{Key: testKey, Name: "x", Duration: 500 * time.Millisecond}, testProvider(t), zap.NewNop())
	if err == nil {
		t.Error("expected error for a duration under one second")
	}
}

func TestLoginThenLoadAdmin(t *testing.T) {
	sm := newTestSessionManager(t)
	cookies := loginCookies(t, sm)

	req := httptest.NewRequest(http.MethodGet, "/admin/listings", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	var got *models.Admin
	sm.LoadAdmin(capture(&got)).ServeHTTP(rec, req)

	if got == nil {
		t.Fatal("LoadAdmin did not inject the admin")
	}
	if got.Email != "admin@startupbridge.com" || got.Role != "admin" {
		t.Errorf("admin = %+v", got)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("reading the session re-issued the cookie")
	}
}

func TestLogin_BadCredentials_NoCookie(t *testing.T) {
	sm := newTestSessionManager(t)
	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	rec := httptest.NewRecorder()

	_, ok, err := sm.Login(rec, req, "admin@startupbridge.com", "wrong")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if ok {
		t.Fatal("Login succeeded with a wrong password")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("failed login wrote a cookie")
	}
}

func TestLogout_ExpiresCookie(t *testing.T) {
	sm := newTestSessionManager(t)
	cookies := loginCookies(t, sm)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	if err := sm.Logout(rec, req); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	out := rec.Result().Cookies()
	if len(out) != 1 || out[0].MaxAge >= 0 {
		t.Fatalf("logout cookies = %+v, want one expired cookie", out)
	}
}

func TestLoadAdmin_NoCookie(t *testing.T) {
	sm := newTestSessionManager(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	var got *models.Admin
	sm.LoadAdmin(capture(&got)).ServeHTTP(rec, req)

	if got != nil {
		t.Errorf("admin injected without a cookie: %+v", got)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("anonymous request received a cookie")
	}
}

func TestLoadAdmin_TamperedCookie(t *testing.T) {
	sm := newTestSessionManager(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "test-admin", Value: "garbage"})
	rec := httptest.NewRecorder()
	var got *models.Admin
	sm.LoadAdmin(capture(&got)).ServeHTTP(rec, req)

	if got != nil {
		t.Error("tampered cookie produced an admin")
	}
	out := rec.Result().Cookies()
	if len(out) != 1 || out[0].MaxAge >= 0 {
		t.Errorf("cookies = %+v, want the bad cookie expired", out)
	}
}

func TestLoadAdmin_MalformedIdentity(t *testing.T) {
	sm := newTestSessionManager(t)

	// Sign a cookie with the right key but an unparseable identity.
	store := sessions.NewCookieStore([]byte(testKey))
	s := sessions.NewSession(store, "test-admin")
	s.Values[auth.KeyActive] = "active"
	s.Values[auth.KeyAdmin] = "{oops"
	s.Options = &sessions.Options{Path: "/"}
	signRec := httptest.NewRecorder()
	if err := store.Save(httptest.NewRequest(http.MethodGet, "/", nil), signRec, s); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range signRec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	var got *models.Admin
	sm.LoadAdmin(capture(&got)).ServeHTTP(rec, req)

	if got != nil {
		t.Error("malformed identity produced an admin")
	}
	out := rec.Result().Cookies()
	if len(out) != 1 || out[0].MaxAge >= 0 {
		t.Errorf("cookies = %+v, want the session cleared", out)
	}
}

func TestRequireAdmin_NoAdmin_HTML_RedirectsToAccessDenied(t *testing.T) {
	sm := newTestSessionManager(t)
	handler := sm.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/listings?status=pending", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	location := rec.Header().Get("Location")
	if !strings.HasPrefix(location, auth.AccessDeniedPath) {
		t.Errorf("expected redirect to %s, got %q", auth.AccessDeniedPath, location)
	}
	if !strings.Contains(location, "return=%2Fadmin%2Flistings%3Fstatus%3Dpending") {
		t.Errorf("return path missing from %q", location)
	}
}

func TestRequireAdmin_NoAdmin_API_Returns401JSON(t *testing.T) {
	sm := newTestSessionManager(t)
	handler := sm.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "unauthorized" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestRequireAdmin_NoAdmin_HTMX_ReturnsHXRedirect(t *testing.T) {
	sm := newTestSessionManager(t)
	handler := sm.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/listings", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if hx := rec.Header().Get("HX-Redirect"); !strings.HasPrefix(hx, auth.AccessDeniedPath) {
		t.Errorf("expected HX-Redirect to %s, got %q", auth.AccessDeniedPath, hx)
	}
}

func TestRequireAdmin_WithAdmin_Proceeds(t *testing.T) {
	sm := newTestSessionManager(t)
	called := false
	handler := sm.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/listings", nil)
	req = auth.WithAdmin(req, &models.Admin{ID: 1, Email: "admin@startupbridge.com", Role: models.RoleAdmin})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("expected handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestCurrentAdmin_NoAdmin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	a, ok := auth.CurrentAdmin(req)
	if ok || a != nil {
		t.Errorf("CurrentAdmin = %v, %v; want nil, false", a, ok)
	}
}

// clockedManager returns a session manager whose sessions run on clock.
func clockedManager(t *testing.T) (*auth.SessionManager, *fakeClock) {
	t.Helper()
	sm := newTestSessionManager(t)
	clock := &fakeClock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
	sm.SetClock(clock.Now)
	return sm, clock
}

// guarded serves a RequireAdmin route behind LoadAdmin, the way the
// router mounts the admin console.
func guarded(t *testing.T, sm *auth.SessionManager, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Accept", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	sm.LoadAdmin(sm.RequireAdmin(ok)).ServeHTTP(rec, req)
	return rec
}

func TestSessionExpiry_GuardedRoute(t *testing.T) {
	sm, clock := clockedManager(t)
	cookies := loginCookies(t, sm)

	if rec := guarded(t, sm, cookies); rec.Code != http.StatusOK {
		t.Fatalf("fresh session: status %d, want 200", rec.Code)
	}

	clock.Advance(auth.DefaultDuration)
	rec := guarded(t, sm, cookies)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("lapsed session: status %d, want 401", rec.Code)
	}
	out := rec.Result().Cookies()
	if len(out) != 1 || out[0].MaxAge >= 0 {
		t.Errorf("cookies = %+v, want the lapsed session cleared", out)
	}
}

func TestLoadAdmin_ActivityDoesNotExtendWindow(t *testing.T) {
	sm, clock := clockedManager(t)
	cookies := loginCookies(t, sm)

	// Browse every few minutes, always sending the newest cookie we have.
	for i := 0; i < 4; i++ {
		clock.Advance(3 * time.Minute)
		req := httptest.NewRequest(http.MethodGet, "/listings", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		var got *models.Admin
		sm.LoadAdmin(capture(&got)).ServeHTTP(rec, req)
		if got == nil {
			t.Fatalf("after %d min: admin missing inside the window", 3*(i+1))
		}
		if out := rec.Result().Cookies(); len(out) != 0 {
			cookies = out
			t.Errorf("after %d min: cookie re-issued by a plain request", 3*(i+1))
		}
	}

	// 12 minutes in; the window still ends 15 minutes after login.
	clock.Advance(3 * time.Minute)
	if rec := guarded(t, sm, cookies); rec.Code != http.StatusUnauthorized {
		t.Errorf("15 min after login: status %d, want 401", rec.Code)
	}
}

func TestResume_StartsNewWindow(t *testing.T) {
	sm, clock := clockedManager(t)
	cookies := loginCookies(t, sm)

	clock.Advance(10 * time.Minute)
	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	admin, exp, ok := sm.Resume(rec, req)
	if !ok || admin.Email != "admin@startupbridge.com" {
		t.Fatalf("Resume = %+v, %v", admin, ok)
	}
	if want := clock.t.Add(auth.DefaultDuration); !exp.Equal(want) {
		t.Errorf("expiry = %v, want %v", exp, want)
	}
	resumed := rec.Result().Cookies()
	if len(resumed) != 1 || resumed[0].MaxAge <= 0 {
		t.Fatalf("cookies = %+v, want a re-issued session cookie", resumed)
	}

	// 20 minutes after login but 10 after the resume.
	clock.Advance(10 * time.Minute)
	if rec := guarded(t, sm, resumed); rec.Code != http.StatusOK {
		t.Errorf("inside resumed window: status %d, want 200", rec.Code)
	}
	if rec := guarded(t, sm, cookies); rec.Code != http.StatusUnauthorized {
		t.Errorf("login cookie after its window: status %d, want 401", rec.Code)
	}

	clock.Advance(5 * time.Minute)
	if rec := guarded(t, sm, resumed); rec.Code != http.StatusUnauthorized {
		t.Errorf("after resumed window: status %d, want 401", rec.Code)
	}
}

func TestResume_LapsedSessionIsCleared(t *testing.T) {
	sm, clock := clockedManager(t)
	cookies := loginCookies(t, sm)

	clock.Advance(auth.DefaultDuration + time.Second)
	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	if _, _, ok := sm.Resume(rec, req); ok {
		t.Fatal("Resume revived a lapsed session")
	}
	out := rec.Result().Cookies()
	if len(out) != 1 || out[0].MaxAge >= 0 {
		t.Errorf("cookies = %+v, want the session cleared", out)
	}
}
