package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_StartRunsJobsImmediately(t *testing.T) {
	s := NewScheduler()

	var order []string
	s.Every("first", time.Hour, func() { order = append(order, "first") })
	s.Every("second", time.Hour, func() { order = append(order, "second") })

	s.Start()
	defer s.Stop()

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestScheduler_StartIsIdempotent(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.Every("job", time.Hour, func() { runs.Add(1) })

	s.Start()
	s.Start()
	defer s.Stop()

	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_Repeats(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.Every("job", time.Second, func() { runs.Add(1) })

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_StopWaitsForRunningJobs(t *testing.T) {
	s := NewScheduler()
	s.Every("job", time.Hour, func() {})
	s.Start()

	select {
	case <-s.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("stop did not complete")
	}
}

func TestScheduler_FirstRunPanicIsRecovered(t *testing.T) {
	s := NewScheduler()

	var after atomic.Int32
	s.Every("panics", time.Hour, func() { panic("boom") })
	s.Every("after", time.Hour, func() { after.Add(1) })

	assert.NotPanics(t, s.Start)
	defer s.Stop()

	assert.Equal(t, int32(1), after.Load())
}
