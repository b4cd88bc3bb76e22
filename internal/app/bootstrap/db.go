// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/lwandasite/internal/app/features/contact"
	"github.com/dalemusser/lwandasite/internal/app/features/gallery"
	"github.com/dalemusser/lwandasite/internal/app/system/indexes"
	"github.com/dalemusser/lwandasite/internal/app/system/metrics"
	"github.com/dalemusser/lwandasite/internal/app/system/remote"
	"github.com/dalemusser/lwandasite/internal/app/system/seeding"
	"github.com/dalemusser/lwandasite/internal/app/system/throttle"
	"github.com/dalemusser/lwandasite/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"
)

// ConnectDB builds the Remote Data Client for the configured backend and
// the in-memory stores shared by handlers and jobs.
//
// For the hosted backend nothing is dialed here: the Supabase client is
// built lazily on first use, and a missing URL or key surfaces as a
// configuration error in the views. The mongo backend connects eagerly.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	deps := DBDeps{
		Metrics:            metrics.New(),
		GallerySessions:    gallery.NewSessions(),
		ContactSubmissions: contact.NewSubmissions(),
		ContactLimiter:     throttle.New(appCfg.ContactPerMinute, appCfg.ContactBurst),
	}

	switch appCfg.Backend {
	case BackendMongo:
		if err := connectMongo(ctx, appCfg, &deps, logger); err != nil {
			return DBDeps{}, err
		}
		cfg := remote.MongoConfig{
			DB:        deps.MongoDatabase,
			MediaRoot: appCfg.MediaPath,
			Media:     deps.Media,
		}
		deps.Remote = remote.NewProvider(func() (remote.Client, error) {
			c, err := remote.NewMongo(cfg)
			if err != nil {
				return nil, err
			}
			return remote.Instrument(c, deps.Metrics, logger), nil
		})
	default:
		cfg := remote.SupabaseConfig{
			URL:     appCfg.SupabaseURL,
			AnonKey: appCfg.SupabaseAnonKey,
			Schema:  appCfg.SupabaseSchema,
		}
		deps.Remote = remote.NewProvider(func() (remote.Client, error) {
			c, err := remote.NewSupabase(cfg)
			if err != nil {
				logger.Warn("supabase client unavailable", zap.Error(err))
				return nil, err
			}
			return remote.Instrument(c, deps.Metrics, logger), nil
		})
		logger.Info("using hosted backend",
			zap.Bool("configured", appCfg.SupabaseURL != "" && appCfg.SupabaseAnonKey != ""),
			zap.String("schema", appCfg.SupabaseSchema),
		)
	}

	return deps, nil
}

func connectMongo(ctx context.Context, appCfg AppConfig, deps *DBDeps, logger *zap.Logger) error {
	poolCfg := wafflemongo.DefaultPoolConfig()
	if appCfg.MongoMaxPoolSize > 0 {
		poolCfg.MaxPoolSize = appCfg.MongoMaxPoolSize
	}
	if appCfg.MongoMinPoolSize > 0 {
		poolCfg.MinPoolSize = appCfg.MongoMinPoolSize
	}

	client, err := wafflemongo.ConnectWithPool(ctx, appCfg.MongoURI, appCfg.MongoDatabase, poolCfg)
	if err != nil {
		return err
	}
	deps.MongoClient = client
	deps.MongoDatabase = client.Database(appCfg.MongoDatabase)

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", poolCfg.MaxPoolSize),
		zap.Uint64("min_pool_size", poolCfg.MinPoolSize),
	)

	media, err := storage.NewLocal(storage.LocalConfig{
		BasePath: appCfg.MediaPath,
		BaseURL:  appCfg.MediaURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize media storage: %w", err)
	}
	deps.Media = media
	logger.Info("initialized local media storage",
		zap.String("path", appCfg.MediaPath),
		zap.String("url", appCfg.MediaURL),
	)
	return nil
}

// EnsureSchema sets up collections, validators, indexes, and sample
// stories for the mongo backend. The hosted backend owns its own schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase
	if db == nil {
		return nil
	}

	logger.Info("ensuring collections and validators")
	if err := validators.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure validators", zap.Error(err))
		return err
	}

	logger.Info("ensuring database indexes")
	if err := indexes.EnsureAll(ctx, db); err != nil {
		logger.Error("failed to ensure indexes", zap.Error(err))
		return err
	}

	logger.Info("seeding default data")
	if err := seeding.SeedAll(ctx, db, logger); err != nil {
		logger.Error("failed to seed default data", zap.Error(err))
		return err
	}

	logger.Info("database schema ensured successfully")
	return nil
}
