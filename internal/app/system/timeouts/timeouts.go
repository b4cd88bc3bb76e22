// Package timeouts provides centralized timeout values for handler operations.
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultRemote = 8 * time.Second
	DefaultSubmit = 10 * time.Second
	DefaultJob    = 30 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

// Configurable timeout values.
var (
	ping   = DefaultPing
	remote = DefaultRemote
	submit = DefaultSubmit
	job    = DefaultJob
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Remote returns the timeout for backend reads (story lists, gallery
// listings, hero lookups).
func Remote() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return remote
}

// Submit returns the timeout for backend writes.
func Submit() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return submit
}

// Job returns the timeout for one run of a background job.
func Job() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return job
}

// Config holds timeout configuration values.
type Config struct {
	Ping   time.Duration
	Remote time.Duration
	Submit time.Duration
	Job    time.Duration
}

// Configure sets custom timeout values. Zero fields keep their current value.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Remote > 0 {
		remote = cfg.Remote
	}
	if cfg.Submit > 0 {
		submit = cfg.Submit
	}
	if cfg.Job > 0 {
		job = cfg.Job
	}
}

// Reset restores all timeouts to defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	remote = DefaultRemote
	submit = DefaultSubmit
	job = DefaultJob
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Ping:   ping,
		Remote: remote,
		Submit: submit,
		Job:    job,
	}
}

// WithTimeout creates a context with timeout and logging.
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
