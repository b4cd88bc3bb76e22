package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
)

// csrfTokenKey matches the key used by gorilla/csrf internally.
// This allows us to inject a mock token for testing.
const csrfTokenKey = "gorilla.csrf.Token"

// WithCSRFToken adds a mock CSRF token to the request context.
// This prevents panics or empty tokens when handlers call csrf.Token(r)
// or use viewdata.New which calls csrf.Token internally.
//
// Usage:
//
//	req := httptest.NewRequest(http.MethodGet, "/path", nil)
//	req = testutil.WithCSRFToken(req)
//	handler.ServeHTTP(rec, req)
func WithCSRFToken(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), csrfTokenKey, "test-csrf-token-12345")
	return r.WithContext(ctx)
}

// NewRequestWithCSRF creates a request carrying a CSRF token and a visitor
// id, the way the router's middleware chain would deliver it to a handler.
func NewRequestWithCSRF(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return WithVisitor(WithCSRFToken(req), DefaultVisitorID)
}
