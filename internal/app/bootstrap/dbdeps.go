// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/lwandasite/internal/app/features/contact"
	"github.com/dalemusser/lwandasite/internal/app/features/gallery"
	"github.com/dalemusser/lwandasite/internal/app/system/metrics"
	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/app/system/throttle"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds backend dependencies for this WAFFLE app.
//
// It is created in ConnectDB and passed to EnsureSchema, Startup,
// BuildHandler, and Shutdown. Besides the backend clients it carries the
// in-memory stores that both the handlers and the background jobs touch.
type DBDeps struct {
	// Remote is the Remote Data Client every data view reads through.
	Remote *remote.Provider

	// MongoDB client and database; nil unless the mongo backend is in use.
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Media serves bucket files for the mongo backend; nil otherwise.
	Media storage.Store

	Metrics *metrics.Metrics

	// Per-visitor view state and per-IP throttling, pruned by background jobs.
	GallerySessions    *gallery.Sessions
	ContactSubmissions *contact.Submissions
	ContactLimiter     *throttle.Limiter
}
