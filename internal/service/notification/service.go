package notification

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/kaymick2/timebot/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type eventStore interface {
	TakeDue(ctx context.Context, now time.Time) ([]model.Event, error)
}

// Sink renders or forwards a fired event.
type Sink interface {
	Notify(ctx context.Context, fired model.FiredEvent) error
}

// Service scans the event store for due events and fans them out to sinks.
//
// Scans are serialized: the fast and slow schedules may both call Scan but
// never run one concurrently.
type Service struct {
	mu       sync.Mutex
	store    eventStore
	sinks    map[string]Sink
	names    []string
	strategy retry.Strategy
}

// NewService creates a notification engine. Sinks are delivered to in name
// order; each delivery is retried according to strategy.
func NewService(store eventStore, sinks map[string]Sink, strategy retry.Strategy) *Service {
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Service{store: store, sinks: sinks, names: names, strategy: strategy}
}

// Scan fires every event due at now, in due order, and returns what fired.
// Due events are removed from the store before delivery, so an event fires
// at most once even when a sink fails.
func (s *Service) Scan(ctx context.Context, now time.Time) ([]model.FiredEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	due, err := s.store.TakeDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("take due events: %w", err)
	}

	fired := make([]model.FiredEvent, 0, len(due))
	for _, ev := range due {
		f := model.FiredEvent{Title: ev.Title, Description: ev.Description}
		fired = append(fired, f)

		zlog.Logger.Info().Str("id", ev.ID).Time("due_at", ev.DueAt).Msg("event fired")
		s.dispatch(ctx, ev.ID, f)
	}

	return fired, nil
}

func (s *Service) dispatch(ctx context.Context, id string, fired model.FiredEvent) {
	for _, name := range s.names {
		sink := s.sinks[name]

		err := retry.Do(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return sink.Notify(ctx, fired)
			}
		}, s.strategy)

		if err != nil {
			zlog.Logger.Error().Err(err).Str("id", id).Str("sink", name).Msg("failed to deliver notification")
		}
	}
}
