// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/lwandasite/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "LWANDASITE"

// Backend names accepted by the "backend" key.
const (
	BackendSupabase = "supabase"
	BackendMongo    = "mongo"
)

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: supabase_url, mongo_uri, etc.
//   - Environment variables: LWANDASITE_SUPABASE_URL, LWANDASITE_MONGO_URI, etc.
//   - Command-line flags: --supabase_url, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "backend", Default: BackendSupabase, Desc: "Remote data backend: 'supabase' or 'mongo'"},

	// Hosted backend
	{Name: "supabase_url", Default: "", Desc: "Supabase project URL (e.g., https://abc.supabase.co)"},
	{Name: "supabase_anon_key", Default: "", Desc: "Supabase public anon key"},
	{Name: "supabase_schema", Default: "public", Desc: "PostgREST schema"},

	// Self-hosted backend
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (mongo backend)"},
	{Name: "mongo_database", Default: "lwandasite", Desc: "MongoDB database name (mongo backend)"},
	{Name: "mongo_max_pool_size", Default: 50, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 5, Desc: "MongoDB min connection pool size"},
	{Name: "media_path", Default: "./media", Desc: "Directory holding one subdirectory per bucket (mongo backend)"},
	{Name: "media_url", Default: "/media", Desc: "URL prefix for serving media files (mongo backend)"},

	// Visitor cookie
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Visitor cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: "lwandasite-visitor", Desc: "Visitor cookie name"},
	{Name: "session_domain", Default: "", Desc: "Visitor cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "720h", Desc: "Visitor cookie max age"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-please-change-0123456789", Desc: "CSRF token signing key (32+ chars in production)"},

	// Contact throttling
	{Name: "contact_per_minute", Default: 5, Desc: "Contact submissions allowed per client IP per minute (0 disables)"},
	{Name: "contact_burst", Default: 3, Desc: "Contact submissions allowed in a burst"},

	// View state retention
	{Name: "gallery_session_ttl", Default: "30m", Desc: "Idle time before a visitor's gallery state is dropped"},
	{Name: "contact_session_ttl", Default: "30m", Desc: "Idle time before a visitor's contact state is dropped"},

	// Hero images
	{Name: "home_hero_url", Default: "", Desc: "Home page hero image URL (blank uses hero/hero_image.jpg)"},
	{Name: "hero_cache_ttl", Default: "5m", Desc: "How long hero image lookups are cached"},

	// Timeouts
	{Name: "remote_timeout", Default: "10s", Desc: "Timeout for backend reads"},
	{Name: "submit_timeout", Default: "15s", Desc: "Timeout for contact submissions"},

	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in titles and the header"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, LWANDASITE_* for app) and
// command-line flags, merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		Backend: strings.ToLower(strings.TrimSpace(appValues.String("backend"))),

		SupabaseURL:     appValues.String("supabase_url"),
		SupabaseAnonKey: appValues.String("supabase_anon_key"),
		SupabaseSchema:  appValues.String("supabase_schema"),

		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
		MediaPath:        appValues.String("media_path"),
		MediaURL:         appValues.String("media_url"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 30*24*time.Hour),

		CSRFKey: appValues.String("csrf_key"),

		ContactPerMinute: appValues.Int("contact_per_minute"),
		ContactBurst:     appValues.Int("contact_burst"),

		GallerySessionTTL: appValues.Duration("gallery_session_ttl", 30*time.Minute),
		ContactSessionTTL: appValues.Duration("contact_session_ttl", 30*time.Minute),

		HomeHeroURL:  appValues.String("home_hero_url"),
		HeroCacheTTL: appValues.Duration("hero_cache_ttl", 5*time.Minute),

		RemoteTimeout: appValues.Duration("remote_timeout", 10*time.Second),
		SubmitTimeout: appValues.Duration("submit_timeout", 15*time.Second),

		SiteName: appValues.String("site_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// An incomplete Supabase configuration is accepted: the site still serves
// its static pages and each data view shows its configuration error.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.Backend {
	case BackendSupabase:
		if appCfg.SupabaseURL == "" || appCfg.SupabaseAnonKey == "" {
			logger.Warn("supabase_url or supabase_anon_key is empty; data views will report a configuration error")
		}
	case BackendMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MediaPath == "" || appCfg.MediaURL == "" {
			return fmt.Errorf("media_path and media_url are required for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", appCfg.Backend, BackendSupabase, BackendMongo)
	}

	if appCfg.ContactPerMinute < 0 || appCfg.ContactBurst < 0 {
		return fmt.Errorf("contact_per_minute and contact_burst must not be negative")
	}
	if coreCfg != nil && coreCfg.Env == "prod" && len(appCfg.CSRFKey) < 32 {
		return fmt.Errorf("csrf_key must be at least 32 characters in production")
	}
	return nil
}
