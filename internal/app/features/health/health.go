// internal/app/features/health/health.go
package health

import (
	"net/http"

	"github.com/dalemusser/lwandasite/internal/app/system/jsonutil"
	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler provides health check endpoints.
type Handler struct {
	provider    *remote.Provider
	mongoClient *mongo.Client // nil unless the mongo backend is in use
	logger      *zap.Logger
}

// NewHandler creates a new health check Handler. mongoClient may be nil.
func NewHandler(provider *remote.Provider, mongoClient *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{
		provider:    provider,
		mongoClient: mongoClient,
		logger:      logger,
	}
}

// Response represents the health check response.
type Response struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}

// Routes returns a chi.Router with health check routes mounted.
// Provides /health (full check), /health/ready, and /health/live.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints adds /ready and /livez endpoints directly on the root router.
// This is the standard convention for Kubernetes probes:
//   - /ready (or /readyz) - readiness probe
//   - /livez - liveness probe
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/ready", h.Ready)
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}

// Check reports the backend configuration and, for the mongo backend,
// database connectivity. Any problem reports "degraded" with a 503.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	resp := Response{
		Status:   "ok",
		Services: make(map[string]string),
	}

	if _, err := h.provider.Client(); err != nil {
		resp.Status = "degraded"
		resp.Services["remote"] = "unconfigured"
		h.logger.Warn("health check: remote backend not configured", zap.Error(err))
	} else {
		resp.Services["remote"] = "ok"
	}

	if h.mongoClient != nil {
		if err := h.pingMongo(r); err != nil {
			resp.Status = "degraded"
			resp.Services["mongodb"] = "unavailable"
			h.logger.Warn("health check: mongodb ping failed", zap.Error(err))
		} else {
			resp.Services["mongodb"] = "ok"
		}
	}

	if resp.Status != "ok" {
		jsonutil.Unavailable(w, resp)
		return
	}
	jsonutil.OK(w, resp)
}

// Ready checks if the service is ready to accept requests.
// Pages render without a configured backend, so only a failing database
// makes the service not ready.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.mongoClient != nil {
		if err := h.pingMongo(r); err != nil {
			h.logger.Warn("readiness check failed", zap.Error(err))
			jsonutil.Unavailable(w, Response{Status: "not ready"})
			return
		}
	}
	jsonutil.OK(w, Response{Status: "ready"})
}

// Live checks if the service is alive.
// Used by Kubernetes liveness probes.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, Response{Status: "alive"})
}

func (h *Handler) pingMongo(r *http.Request) error {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Ping(), h.logger, "health mongodb ping")
	defer cancel()
	return h.mongoClient.Ping(ctx, readpref.Primary())
}
