// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, logging, CORS, body limits); this
// struct covers everything specific to the site.
type AppConfig struct {
	// Backend selects the Remote Data Client: "supabase" or "mongo".
	Backend string

	// Hosted backend. Missing values are not fatal: views render their
	// configuration-unavailable states instead.
	SupabaseURL     string
	SupabaseAnonKey string
	SupabaseSchema  string

	// Self-hosted backend (Backend == "mongo")
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64
	MediaPath        string // directory with one subdirectory per bucket
	MediaURL         string // URL prefix the media directory is served under

	// Visitor cookie
	SessionKey    string
	SessionName   string
	SessionDomain string
	SessionMaxAge time.Duration

	CSRFKey string

	// Contact form throttling, per client IP
	ContactPerMinute int
	ContactBurst     int

	// In-memory view state retention
	GallerySessionTTL time.Duration
	ContactSessionTTL time.Duration

	// Hero images
	HomeHeroURL  string
	HeroCacheTTL time.Duration

	// Timeouts for backend calls
	RemoteTimeout time.Duration
	SubmitTimeout time.Duration

	SiteName string
}

// UsesMongo reports whether the self-hosted backend is selected.
func (c AppConfig) UsesMongo() bool {
	return c.Backend == BackendMongo
}
