// internal/app/store/hero/herostore.go
package herostore

import (
	"context"
	"errors"
	"path"
	"strings"
	"sync"
	"time"

	gallerystore "github.com/dalemusser/lwandasite/internal/app/store/gallery"
	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/domain/models"
)

// ErrNotFound is returned by Lookup when the hero bucket holds no image for
// the page.
var ErrNotFound = errors.New("hero image not found")

// DefaultTTL is how long a lookup result is reused.
const DefaultTTL = 5 * time.Minute

type entry struct {
	url     string // "" records a miss
	expires time.Time
}

// Store resolves per-page hero images from the hero bucket. Hits and misses
// are cached for the TTL; failures are not cached.
type Store struct {
	provider *remote.Provider
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	cache map[string]entry
}

// New creates a hero store. A ttl <= 0 uses DefaultTTL.
func New(p *remote.Provider, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{provider: p, ttl: ttl, now: time.Now, cache: map[string]entry{}}
}

// Lookup finds the image named after page (about.jpg, contact.webp, ...) at
// the root of the hero bucket and returns its public URL.
func (s *Store) Lookup(ctx context.Context, page string) (string, error) {
	now := s.now()
	s.mu.Lock()
	e, ok := s.cache[page]
	s.mu.Unlock()
	if ok && now.Before(e.expires) {
		if e.url == "" {
			return "", ErrNotFound
		}
		return e.url, nil
	}

	c, err := s.provider.Client()
	if err != nil {
		return "", err
	}
	objs, err := c.ListObjects(ctx, models.HeroBucket, "", remote.ListOptions{})
	if err != nil {
		return "", err
	}

	url := ""
	for _, o := range objs {
		if !gallerystore.IsImage(o.Name) {
			continue
		}
		if strings.EqualFold(strings.TrimSuffix(o.Name, path.Ext(o.Name)), page) {
			url = c.PublicURL(models.HeroBucket, o.Name)
			break
		}
	}

	s.mu.Lock()
	s.cache[page] = entry{url: url, expires: now.Add(s.ttl)}
	s.mu.Unlock()

	if url == "" {
		return "", ErrNotFound
	}
	return url, nil
}

// Resolve returns the hero URL for page, or fallback when the bucket has
// none or cannot be read. The error is non-nil only for failures worth
// logging: a miss or an unconfigured backend returns fallback and nil.
func (s *Store) Resolve(ctx context.Context, page, fallback string) (string, error) {
	url, err := s.Lookup(ctx, page)
	switch {
	case err == nil:
		return url, nil
	case errors.Is(err, ErrNotFound), remote.IsConfigurationUnavailable(err):
		return fallback, nil
	default:
		return fallback, err
	}
}

// Home returns the home page hero: configured when set, otherwise the
// well-known object in the hero bucket, otherwise fallback.
func (s *Store) Home(configured, fallback string) string {
	if configured != "" {
		return configured
	}
	c, err := s.provider.Client()
	if err != nil {
		return fallback
	}
	return c.PublicURL(models.HeroBucket, models.HomeHeroObject)
}
