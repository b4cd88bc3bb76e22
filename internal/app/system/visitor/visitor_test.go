package visitor

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(testKey, "", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func serve(m *Manager, cookies ...*http.Cookie) (string, *httptest.ResponseRecorder) {
	var seen string
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ID(r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestNewManager_Validation(t *testing.T) {
	if _, err := NewManager("", "", "", time.Hour, false, zap.NewNop()); err == nil {
		t.Error("expected error for empty key")
	}
	if _, err := NewManager("short", "", "", time.Hour, true, zap.NewNop()); err == nil {
		t.Error("expected error for weak key in secure mode")
	}
	if _, err := NewManager("short", "", "", time.Hour, false, zap.NewNop()); err != nil {
		t.Errorf("weak key should be allowed in dev: %v", err)
	}
	m := newTestManager(t)
	if m.CookieName() != DefaultCookieName {
		t.Errorf("CookieName = %q, want %q", m.CookieName(), DefaultCookieName)
	}
}

func TestMiddleware_IssuesAndKeepsID(t *testing.T) {
	m := newTestManager(t)

	id, rec := serve(m)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("first visit id %q is not a uuid", id)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != DefaultCookieName {
		t.Fatalf("expected one visitor cookie, got %v", cookies)
	}

	again, rec2 := serve(m, cookies[0])
	if again != id {
		t.Errorf("returning visitor got id %q, want %q", again, id)
	}
	if len(rec2.Result().Cookies()) != 0 {
		t.Error("cookie should not be re-issued for a known visitor")
	}
}

func TestMiddleware_TamperedCookieGetsFreshID(t *testing.T) {
	m := newTestManager(t)
	id, _ := serve(m, &http.Cookie{Name: DefaultCookieName, Value: "garbage"})
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected fresh uuid, got %q", id)
	}
}

func TestMiddleware_DistinctVisitors(t *testing.T) {
	m := newTestManager(t)
	a, _ := serve(m)
	b, _ := serve(m)
	if a == b {
		t.Error("two cookieless requests should get different ids")
	}
}

func TestID_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if ID(req) != "" {
		t.Error("expected empty id")
	}
	if got := ID(WithID(req, "v-1")); got != "v-1" {
		t.Errorf("ID = %q, want v-1", got)
	}
}
