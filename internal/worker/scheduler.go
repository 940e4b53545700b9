package worker

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"
)

// cronLogger routes cron's own logging to zlog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	zlog.Logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	zlog.Logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

// Scheduler runs jobs at fixed periods. Each job runs once when the
// scheduler starts and then repeats until Stop. A job that is still running
// when its next period arrives is skipped rather than overlapped.
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	jobs    []cron.Job
	started bool
}

// NewScheduler creates a stopped scheduler.
func NewScheduler() *Scheduler {
	logger := cronLogger{}

	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger)),
		),
	}
}

// Every registers job to run every period. Periods are rounded to whole
// seconds with a one-second minimum.
func (s *Scheduler) Every(name string, period time.Duration, job func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wrapped := cron.NewChain(cron.SkipIfStillRunning(cronLogger{})).Then(cron.FuncJob(job))
	id := s.cron.Schedule(cron.Every(period), wrapped)
	s.jobs = append(s.jobs, wrapped)

	zlog.Logger.Info().Str("job", name).Dur("period", period).Int("entry", int(id)).Msg("job scheduled")
}

// Start runs every registered job once, in registration order, and then
// starts the periodic schedule. Calling Start again is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	recovered := cron.NewChain(cron.Recover(cronLogger{}))
	for _, job := range s.jobs {
		recovered.Then(job).Run()
	}

	s.cron.Start()
}

// Stop halts the schedule. The returned context is done once running jobs
// have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
