package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure_KeepsZeroFields(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Remote: 3 * time.Second})

	got := Current()
	if got.Remote != 3*time.Second {
		t.Errorf("Remote = %v, want 3s", got.Remote)
	}
	if got.Ping != DefaultPing || got.Submit != DefaultSubmit || got.Job != DefaultJob {
		t.Errorf("unset fields changed: %+v", got)
	}

	Reset()
	if Remote() != DefaultRemote {
		t.Errorf("Reset did not restore Remote: %v", Remote())
	}
}

func TestWithTimeout_LogsOnDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, zap.New(core), "gallery list")
	<-ctx.Done()
	cancel()

	if logs.Len() != 1 {
		t.Fatalf("expected one timeout log, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "operation timed out" {
		t.Errorf("message = %q", entry.Message)
	}
	if entry.ContextMap()["operation"] != "gallery list" {
		t.Errorf("operation field = %v", entry.ContextMap()["operation"])
	}
}

func TestWithTimeout_QuietWhenCancelledEarly(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	_, cancel := WithTimeout(context.Background(), time.Hour, zap.New(core), "story list")
	cancel()
	if logs.Len() != 0 {
		t.Errorf("expected no logs, got %d", logs.Len())
	}
}
