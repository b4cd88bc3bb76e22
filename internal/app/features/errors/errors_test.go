package errors

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/lwandasite/internal/testutil"
	"go.uber.org/zap"
)

func TestNewHandler(t *testing.T) {
	h := NewHandler()
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestNotFound_Returns404(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/notfound", nil)
	req = testutil.WithCSRFToken(req)
	rec := httptest.NewRecorder()

	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestNotFound_RendersLayout(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler()

	req := testutil.WithCSRFToken(httptest.NewRequest(http.MethodGet, "/missing", nil))
	rec := httptest.NewRecorder()
	h.NotFound(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Page not found") {
		t.Error("body should contain the not-found heading")
	}
	if !strings.Contains(body, `href="/gallery"`) {
		t.Error("body should contain site navigation")
	}
}

func TestMethodNotAllowed_Returns405(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler()

	req := httptest.NewRequest(http.MethodDelete, "/contact", nil)
	req = testutil.WithCSRFToken(req)
	rec := httptest.NewRecorder()

	h.MethodNotAllowed(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestInternalError_Returns500(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/error", nil)
	req = testutil.WithCSRFToken(req)
	rec := httptest.NewRecorder()

	h.InternalError(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestErrorLogger_Log(t *testing.T) {
	logger := zap.NewNop()
	errLog := NewErrorLogger(logger)

	if errLog == nil {
		t.Fatal("NewErrorLogger() returned nil")
	}

	// Should not panic
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	errLog.Log(req, "test error", nil)
}

func TestErrorLogger_LogWithFields(t *testing.T) {
	logger := zap.NewNop()
	errLog := NewErrorLogger(logger)

	// Should not panic
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	errLog.LogWithFields(req, "test error", nil, zap.String("extra", "field"))
}

func TestRecoverer_RendersInternalError(t *testing.T) {
	testutil.MustBootTemplates(t)
	h := NewHandler()

	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	req := testutil.WithCSRFToken(httptest.NewRequest(http.MethodGet, "/explode", nil))
	rec := httptest.NewRecorder()
	h.Recoverer(zap.NewNop())(panicky).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestRecoverer_PassesThrough(t *testing.T) {
	h := NewHandler()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rec := httptest.NewRecorder()
	h.Recoverer(zap.NewNop())(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestRecoverer_ReraisesAbort(t *testing.T) {
	h := NewHandler()
	abort := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})
	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", rec)
		}
	}()
	h.Recoverer(zap.NewNop())(abort).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
