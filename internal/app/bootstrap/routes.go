// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	contactfeature "github.com/dalemusser/lwandasite/internal/app/features/contact"
	errorsfeature "github.com/dalemusser/lwandasite/internal/app/features/errors"
	galleryfeature "github.com/dalemusser/lwandasite/internal/app/features/gallery"
	healthfeature "github.com/dalemusser/lwandasite/internal/app/features/health"
	homefeature "github.com/dalemusser/lwandasite/internal/app/features/home"
	pagesfeature "github.com/dalemusser/lwandasite/internal/app/features/pages"
	storiesfeature "github.com/dalemusser/lwandasite/internal/app/features/stories"
	appresources "github.com/dalemusser/lwandasite/internal/app/resources"
	contactstore "github.com/dalemusser/lwandasite/internal/app/store/contact"
	gallerystore "github.com/dalemusser/lwandasite/internal/app/store/gallery"
	herostore "github.com/dalemusser/lwandasite/internal/app/store/hero"
	"github.com/dalemusser/lwandasite/internal/app/system/visitor"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// requestTimeout bounds every request, including slow backend reads.
const requestTimeout = 30 * time.Second

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup, schema setup, and
// Startup have completed. The router serves the public pages, the gallery
// grid snippet, the contact form post, static and embedded assets, media
// files for the mongo backend, health probes, and Prometheus metrics.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	visitors, err := visitor.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("visitor manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()
	heroes := herostore.New(deps.Remote, appCfg.HeroCacheTTL)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(errorsHandler.Recoverer(logger))
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(deps.Metrics.Middleware)

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Visitor cookie: gives each browser a stable id for per-visitor view state.
	r.Use(visitors.Middleware)

	r.Use(csrfMiddleware(appCfg, secure, logger))

	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// ─────────────────────────────────────────────────────────────────────────────
	// Infrastructure
	// ─────────────────────────────────────────────────────────────────────────────

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Remote, deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	r.Handle("/metrics", deps.Metrics.Handler())

	// /static/* serves files from disk (bundled hero fallbacks and program images)
	r.Handle("/static/*", fileserver.Handler("/static", "static"))

	// /assets/* serves embedded assets (bundled into the binary)
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))

	// Bucket files for the self-hosted backend
	if appCfg.UsesMongo() {
		r.Handle(appCfg.MediaURL+"/*", fileserver.Handler(appCfg.MediaURL, appCfg.MediaPath))
	}

	// ─────────────────────────────────────────────────────────────────────────────
	// Public pages
	// ─────────────────────────────────────────────────────────────────────────────

	homeHandler := homefeature.NewHandler(deps.Remote, heroes, appCfg.HomeHeroURL, errLog, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	pagesHandler := pagesfeature.NewHandler(heroes, logger)
	r.Mount("/about", pagesHandler.AboutRouter())

	storiesHandler := storiesfeature.NewHandler(deps.Remote, errLog, logger)
	r.Mount("/stories", storiesfeature.Routes(storiesHandler))

	galleryHandler := galleryfeature.NewHandler(
		gallerystore.New(deps.Remote),
		deps.GallerySessions,
		deps.Metrics,
		logger,
	)
	r.Mount("/gallery", galleryfeature.Routes(galleryHandler))

	contactHandler := contactfeature.NewHandler(
		contactstore.New(deps.Remote),
		heroes,
		deps.ContactLimiter,
		deps.ContactSubmissions,
		deps.Metrics,
		errLog,
		logger,
	)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	return r, nil
}

// csrfMiddleware protects the contact form post. The cookie name is
// scoped to this site to avoid collisions with other services on the
// same domain.
func csrfMiddleware(appCfg AppConfig, secure bool, logger *zap.Logger) func(http.Handler) http.Handler {
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("lwandasite_csrf"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "Your session expired. Reload the page and try again.", http.StatusForbidden)
		})),
	}
	if !secure {
		// In dev mode, trust localhost origins for CSRF validation.
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	protect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)

	return func(next http.Handler) http.Handler {
		h := protect(next)
		if secure {
			return h
		}
		// Plain-HTTP development servers would otherwise fail the
		// TLS-only referer check.
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			h.ServeHTTP(w, csrf.PlaintextHTTPRequest(req))
		})
	}
}
