package throttle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(l *Limiter, t *time.Time) {
	l.now = func() time.Time { return *t }
}

func TestAllow_BurstThenRefill(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	l := New(6, 2) // one token every 10s
	fixedClock(l, &now)

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"), "burst exhausted")

	assert.True(t, l.Allow("5.6.7.8"), "other clients unaffected")

	now = now.Add(10 * time.Second)
	assert.True(t, l.Allow("1.2.3.4"), "refilled one token")
	assert.False(t, l.Allow("1.2.3.4"))
}

func TestAllow_Disabled(t *testing.T) {
	l := New(0, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("k"))
	}
	var nilLimiter *Limiter
	assert.True(t, nilLimiter.Allow("k"))
	assert.Equal(t, 0, nilLimiter.Prune(time.Minute))
}

func TestPrune(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	l := New(10, 1)
	fixedClock(l, &now)

	l.Allow("old")
	now = now.Add(20 * time.Minute)
	l.Allow("recent")
	now = now.Add(5 * time.Minute)

	assert.Equal(t, 1, l.Prune(10*time.Minute))
	assert.Equal(t, 1, l.Len())
}
