// Package visitor gives every browser a stable anonymous id, carried in a
// signed cookie, so per-visitor view state (gallery categories, the contact
// form) can be kept on the server.
package visitor

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const idKey = "visitor_id"

// DefaultCookieName is used when no name is configured.
const DefaultCookieName = "lwandasite-visitor"

type ctxKey struct{}

// Manager issues and reads visitor cookies.
type Manager struct {
	store  *sessions.CookieStore
	logger *zap.Logger
	name   string
}

// ConfigError is returned when the cookie configuration is unusable.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// NewManager creates a Manager.
//
// Parameters:
//   - key: signing key for cookies (must be ≥32 chars in production)
//   - name: cookie name (DefaultCookieName if empty)
//   - domain: cookie domain (empty means current host)
//   - maxAge: cookie lifetime
//   - secure: mark the cookie Secure (HTTPS deployments)
func NewManager(key, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*Manager, error) {
	if key == "" {
		return nil, &ConfigError{Message: "visitor session key is empty; provide ≥32 random chars"}
	}
	isWeak := len(key) < 32 || isDefaultKey(key)
	if secure && isWeak {
		return nil, &ConfigError{
			Message: "visitor session key is too weak for production; provide ≥32 random chars (not the default dev key)",
		}
	}
	if isWeak {
		logger.Warn("visitor session key is weak; 32+ random chars required in production",
			zap.Int("length", len(key)),
			zap.Bool("is_default", isDefaultKey(key)))
	}
	if name == "" {
		name = DefaultCookieName
	}

	store := sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, logger: logger, name: name}, nil
}

// CookieName returns the configured cookie name.
func (m *Manager) CookieName() string {
	return m.name
}

// Middleware makes sure every request carries a visitor id, issuing a
// cookie on first contact or when the old cookie no longer verifies.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.store.Get(r, m.name)
		if err != nil {
			kind := classifyCookieError(err)
			if kind == "mac_invalid" {
				m.logger.Warn("visitor cookie failed verification",
					zap.String("kind", kind),
					zap.String("path", r.URL.Path))
			} else {
				m.logger.Debug("visitor cookie discarded",
					zap.String("kind", kind),
					zap.Error(err))
			}
			sess = sessions.NewSession(m.store, m.name)
			opts := *m.store.Options
			sess.Options = &opts
			sess.IsNew = true
		}

		id, _ := sess.Values[idKey].(string)
		if _, perr := uuid.Parse(id); perr != nil {
			id = uuid.NewString()
			sess.Values[idKey] = id
			if err := sess.Save(r, w); err != nil {
				m.logger.Error("failed to save visitor cookie", zap.Error(err))
			}
		}

		next.ServeHTTP(w, WithID(r, id))
	})
}

// WithID returns r carrying visitor id. Handlers read it with ID.
func WithID(r *http.Request, id string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, id))
}

// ID returns the visitor id for the request, or "" when the middleware did
// not run.
func ID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return id
}

// isDefaultKey checks if the key appears to be a placeholder value.
func isDefaultKey(key string) bool {
	lower := strings.ToLower(key)
	for _, p := range []string{"dev-only", "change-me", "placeholder", "default", "example", "insecure", "test-key"} {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func classifyCookieError(err error) string {
	scErr, ok := err.(securecookie.Error)
	if !ok || !scErr.IsDecode() {
		return "backend"
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "expired timestamp"):
		return "expired"
	case strings.Contains(msg, "mac") || strings.Contains(msg, "hash"):
		return "mac_invalid"
	default:
		return "decode_failed"
	}
}
