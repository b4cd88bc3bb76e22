package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/stories/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	for _, p := range []string{"/stories/1", "/stories/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/stories/{id}", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestOutcomeCounters(t *testing.T) {
	m := New()
	m.ContactOutcome("sent")
	m.ContactOutcome("sent")
	m.GalleryOutcome("community", "failed")
	m.ObserveRemote("select", "stories", "ok", 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.contact.WithLabelValues("sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gallery.WithLabelValues("community", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.remoteOps.WithLabelValues("select", "stories", "ok")))
}

func TestHandler_ServesExposition(t *testing.T) {
	m := New()
	m.ContactOutcome("throttled")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lwandasite_contact_submissions_total{outcome="throttled"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	m.ContactOutcome("sent")
	m.GalleryOutcome("community", "loaded")
	m.ObserveRemote("insert", "contact_messages", "ok", time.Millisecond)
	assert.Nil(t, m.Registry())

	called := false
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
