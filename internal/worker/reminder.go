package worker

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/kaymick2/timebot/internal/clock"
	"github.com/kaymick2/timebot/internal/model"
)

//go:generate mockgen -source=reminder.go -destination=../mocks/worker/reminder_mock.go -package=mocks
type scanner interface {
	Scan(ctx context.Context, now time.Time) ([]model.FiredEvent, error)
}

// Reminder drives due-detection from two schedules: a fast tick that also
// refreshes the displayed time, and a slow sweep that bounds notification
// latency when the fast tick stalls.
type Reminder struct {
	clock   clock.Clock
	display *clock.Display
	engine  scanner

	mu        sync.RWMutex
	displayed string
}

// NewReminder creates a reminder loop over engine.
func NewReminder(c clock.Clock, d *clock.Display, engine scanner) *Reminder {
	return &Reminder{clock: c, display: d, engine: engine}
}

// Tick refreshes the displayed time and scans for due events.
func (r *Reminder) Tick(ctx context.Context) {
	now := r.clock.Now()

	r.mu.Lock()
	r.displayed = r.display.Format(now)
	r.mu.Unlock()

	r.scan(ctx, now, "tick")
}

// Sweep scans for due events.
func (r *Reminder) Sweep(ctx context.Context) {
	r.scan(ctx, r.clock.Now(), "sweep")
}

// Displayed returns the time as of the last tick.
func (r *Reminder) Displayed() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.displayed
}

func (r *Reminder) scan(ctx context.Context, now time.Time, source string) {
	fired, err := r.engine.Scan(ctx, now)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("source", source).Msg("scan failed")
		return
	}

	if len(fired) > 0 {
		zlog.Logger.Info().Int("fired", len(fired)).Str("source", source).Msg("scan fired events")
	}
}

// Run registers the tick every fast and the sweep every slow on s, starts
// it, and blocks until ctx is done.
func (r *Reminder) Run(ctx context.Context, s *Scheduler, fast, slow time.Duration) {
	s.Every("tick", fast, func() { r.Tick(ctx) })
	s.Every("sweep", slow, func() { r.Sweep(ctx) })
	s.Start()

	<-ctx.Done()
	<-s.Stop().Done()
	zlog.Logger.Print("reminder stopped")
}
