// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Pruner forgets entries idle longer than a TTL and reports how many it
// dropped. viewstate.Registry and throttle.Limiter both satisfy it.
type Pruner interface {
	Prune(idle time.Duration) int
	Len() int
}

// PruneJob creates a job that calls p.Prune(ttl) every interval.
func PruneJob(name string, p Pruner, ttl, interval time.Duration, logger *zap.Logger) Job {
	return Job{
		Name:     name,
		Interval: interval,
		Run: func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if n := p.Prune(ttl); n > 0 {
				logger.Info("pruned idle visitor state",
					zap.String("job", name),
					zap.Int("dropped", n),
					zap.Int("remaining", p.Len()))
			}
			return nil
		},
	}
}

// GallerySessionPruneJob drops per-visitor gallery state not touched
// within ttl.
func GallerySessionPruneJob(p Pruner, ttl time.Duration, logger *zap.Logger) Job {
	return PruneJob("gallery-session-prune", p, ttl, pruneInterval(ttl), logger)
}

// ContactSessionPruneJob drops per-visitor contact form state not touched
// within ttl.
func ContactSessionPruneJob(p Pruner, ttl time.Duration, logger *zap.Logger) Job {
	return PruneJob("contact-session-prune", p, ttl, pruneInterval(ttl), logger)
}

// ThrottlePruneJob drops per-IP submit limiters idle longer than idle.
func ThrottlePruneJob(p Pruner, idle time.Duration, logger *zap.Logger) Job {
	return PruneJob("throttle-prune", p, idle, pruneInterval(idle), logger)
}

// pruneInterval runs a prune a few times per TTL, bounded to [1m, 1h].
func pruneInterval(ttl time.Duration) time.Duration {
	iv := ttl / 4
	if iv < time.Minute {
		iv = time.Minute
	}
	if iv > time.Hour {
		iv = time.Hour
	}
	return iv
}
