// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"time"

	"github.com/dalemusser/lwandasite/internal/app/resources"
	"github.com/dalemusser/lwandasite/internal/app/system/tasks"
	"github.com/dalemusser/lwandasite/internal/app/system/timeouts"
	"github.com/dalemusser/lwandasite/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// throttleIdle is how long an IP's token bucket is kept after its last use.
const throttleIdle = 15 * time.Minute

// Startup runs once after backends and schema setup are complete, but
// before the HTTP handler is built and requests are served.
//
// It loads the shared templates, applies configured timeouts and the site
// name, and starts the background jobs that prune in-memory visitor state.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	viewdata.Init(appCfg.SiteName)

	timeouts.Configure(timeouts.Config{
		Remote: appCfg.RemoteTimeout,
		Submit: appCfg.SubmitTimeout,
	})
	cur := timeouts.Current()
	logger.Info("timeouts configured",
		zap.Duration("ping", cur.Ping),
		zap.Duration("remote", cur.Remote),
		zap.Duration("submit", cur.Submit),
		zap.Duration("job", cur.Job),
	)

	startTaskRunner(appCfg, deps, logger)

	return nil
}

// taskRunner is the global task runner instance, used for graceful shutdown.
var taskRunner *tasks.Runner

// startTaskRunner initializes and starts the background task runner.
func startTaskRunner(appCfg AppConfig, deps DBDeps, logger *zap.Logger) {
	taskRunner = tasks.New(logger)

	taskRunner.Register(tasks.GallerySessionPruneJob(deps.GallerySessions, appCfg.GallerySessionTTL, logger))
	taskRunner.Register(tasks.ContactSessionPruneJob(deps.ContactSubmissions, appCfg.ContactSessionTTL, logger))
	taskRunner.Register(tasks.ThrottlePruneJob(deps.ContactLimiter, throttleIdle, logger))

	taskRunner.Start()
}
