package viewstate

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSlot_ZeroValueIsIdle(t *testing.T) {
	var s Slot[[]string]
	st := s.Snapshot()
	assert.Equal(t, Idle, st.Status)
	assert.Nil(t, st.Data)
}

func TestSlot_Lifecycle(t *testing.T) {
	var s Slot[[]string]

	tok := s.Begin()
	assert.Equal(t, Loading, s.Snapshot().Status)

	require.True(t, s.Finish(tok, []string{"a"}))
	st := s.Snapshot()
	assert.Equal(t, Success, st.Status)
	assert.Equal(t, []string{"a"}, st.Data)

	tok = s.Begin()
	boom := errors.New("boom")
	require.True(t, s.Fail(tok, boom, "Failed to load images"))
	st = s.Snapshot()
	assert.Equal(t, Error, st.Status)
	assert.ErrorIs(t, st.Err, boom)
	assert.Equal(t, "Failed to load images", st.Message)
	assert.Nil(t, st.Data, "error state carries no data")
}

func TestSlot_StaleCompletionDiscarded(t *testing.T) {
	var s Slot[string]

	first := s.Begin()
	second := s.Begin()

	assert.True(t, s.Finish(second, "fresh"))
	assert.False(t, s.Finish(first, "stale"), "older token must not overwrite")
	assert.False(t, s.Fail(first, errors.New("late"), "late"))

	st := s.Snapshot()
	assert.Equal(t, Success, st.Status)
	assert.Equal(t, "fresh", st.Data)
}

func TestSlot_TryBeginGuardsInFlight(t *testing.T) {
	var s Slot[int]

	tok, ok := s.TryBegin()
	require.True(t, ok)

	_, ok = s.TryBegin()
	assert.False(t, ok, "second begin while loading must be refused")

	s.Finish(tok, 1)
	_, ok = s.TryBegin()
	assert.True(t, ok)
}

func TestSlot_ConcurrentTryBegin(t *testing.T) {
	var s Slot[int]
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := s.TryBegin(); ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestTracker_IndependentSlots(t *testing.T) {
	tr := NewTracker[string, []string]()

	edu := tr.Slot("education")
	tok := edu.Begin()
	edu.Finish(tok, []string{"a.jpg"})

	sp := tr.Slot("sponsorship")
	tok = sp.Begin()
	sp.Fail(tok, errors.New("down"), "down")

	assert.Equal(t, Success, tr.Slot("education").Snapshot().Status)
	assert.Equal(t, Error, tr.Slot("sponsorship").Snapshot().Status)
	assert.Equal(t, Idle, tr.Slot("celebration").Snapshot().Status)
	assert.Same(t, edu, tr.Slot("education"))
}

func TestRegistry_GetAndPrune(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	created := 0
	r := NewRegistry(func() *Tracker[string, int] {
		created++
		return NewTracker[string, int]()
	})
	r.SetClock(func() time.Time { return now })

	a := r.Get("visitor-a")
	assert.Same(t, a, r.Get("visitor-a"))
	r.Get("visitor-b")
	assert.Equal(t, 2, created)
	assert.Equal(t, 2, r.Len())

	now = now.Add(20 * time.Minute)
	r.Get("visitor-b")

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, r.Prune(30*time.Minute))
	assert.Equal(t, 1, r.Len())

	// visitor-b survived; visitor-a was dropped and is rebuilt on return.
	r.Get("visitor-b")
	assert.Equal(t, 2, created)
	r.Get("visitor-a")
	assert.Equal(t, 3, created)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "error", Error.String())
}
