package remote

import (
	"context"
	"time"

	"github.com/dalemusser/lwandasite/internal/app/system/metrics"
	"go.uber.org/zap"
)

// Instrumented wraps a Client, recording latency and result kind for each
// operation and logging failures.
type Instrumented struct {
	next    Client
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// Instrument decorates next. Either m or logger may be nil.
func Instrument(next Client, m *metrics.Metrics, logger *zap.Logger) *Instrumented {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Instrumented{next: next, metrics: m, logger: logger}
}

func (i *Instrumented) observe(op, target string, start time.Time, err error) {
	d := time.Since(start)
	result := "ok"
	if err != nil {
		result = KindOf(err).String()
	}
	i.metrics.ObserveRemote(op, target, result, d)

	if err != nil {
		i.logger.Warn("remote operation failed",
			zap.String("op", op),
			zap.String("target", target),
			zap.String("kind", result),
			zap.Duration("duration", d),
			zap.Error(err))
		return
	}
	i.logger.Debug("remote operation",
		zap.String("op", op),
		zap.String("target", target),
		zap.Duration("duration", d))
}

// Select implements Client.
func (i *Instrumented) Select(ctx context.Context, q Query, dest any) error {
	start := time.Now()
	err := i.next.Select(ctx, q, dest)
	i.observe("select", q.Table, start, err)
	return err
}

// Insert implements Client.
func (i *Instrumented) Insert(ctx context.Context, table string, record any) error {
	start := time.Now()
	err := i.next.Insert(ctx, table, record)
	i.observe("insert", table, start, err)
	return err
}

// ListObjects implements Client.
func (i *Instrumented) ListObjects(ctx context.Context, bucket, prefix string, opts ListOptions) ([]Object, error) {
	start := time.Now()
	objs, err := i.next.ListObjects(ctx, bucket, prefix, opts)
	i.observe("list", bucket, start, err)
	return objs, err
}

// PublicURL implements Client.
func (i *Instrumented) PublicURL(bucket, path string) string {
	return i.next.PublicURL(bucket, path)
}
