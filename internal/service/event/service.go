package event

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/kaymick2/timebot/internal/model"
	"github.com/kaymick2/timebot/internal/repository/mirror"
)

var (
	// ErrInvalidInput is returned by Create for an empty title or an
	// unparsable due time.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCorruptState is returned by LoadAll when the mirror slot holds data
	// that cannot be decoded.
	ErrCorruptState = errors.New("corrupt persistent state")
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/event/mock.go -package=mocks
type eventMirror interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Service owns the in-memory event collection and keeps its durable mirror
// in sync.
//
// Every method holds the service lock for its whole read-modify-write,
// persistence included, so each call runs to completion before the next
// one starts. A mutating call that fails to persist leaves the collection
// as the mirror last held it.
//
// Other processes (the CLI next to a running server) may write the same
// slot. Mutating calls re-read the slot first and adopt its contents when
// they differ from what this service last loaded or saved.
type Service struct {
	mu      sync.Mutex
	mirror  eventMirror
	loc     *time.Location
	entries []entry
	synced  []byte
	newID   func() string
}

// NewService creates an empty event store backed by m. Zone-less due times
// are interpreted in loc.
func NewService(m eventMirror, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		mirror: m,
		loc:    loc,
		newID:  uuid.NewString,
	}
}

// LoadAll replaces the collection with the contents of the mirror slot.
// An empty slot yields an empty store; undecodable data yields
// ErrCorruptState and leaves the store unchanged.
func (s *Service) LoadAll(ctx context.Context) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.mirror.Load(ctx)
	if err != nil {
		if errors.Is(err, mirror.ErrSlotEmpty) {
			s.entries = nil
			s.synced = nil
			zlog.Logger.Info().Msg("event mirror is empty, starting with no events")
			return []model.Event{}, nil
		}

		return nil, fmt.Errorf("load events: %w", err)
	}

	if err := s.adopt(ctx, data); err != nil {
		return nil, err
	}
	zlog.Logger.Info().Int("count", len(s.entries)).Msg("events loaded")

	return sortedEvents(s.entries), nil
}

// refresh re-reads the mirror slot and adopts it when another writer has
// changed it since the last load or save.
func (s *Service) refresh(ctx context.Context) error {
	data, err := s.mirror.Load(ctx)
	if err != nil {
		if !errors.Is(err, mirror.ErrSlotEmpty) {
			return fmt.Errorf("refresh events: %w", err)
		}
		if s.synced == nil {
			return nil
		}

		zlog.Logger.Warn().Msg("event mirror was emptied by another writer")
		s.entries = nil
		s.synced = nil
		return nil
	}

	if bytes.Equal(data, s.synced) {
		return nil
	}

	if err := s.adopt(ctx, data); err != nil {
		return err
	}
	zlog.Logger.Info().Int("count", len(s.entries)).Msg("events changed by another writer, reloaded")

	return nil
}

// adopt decodes data into the collection, persisting it again when ids had
// to be repaired. Undecodable data leaves the store unchanged.
func (s *Service) adopt(ctx context.Context, data []byte) error {
	entries, err := decode(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	if s.rekey(entries) {
		if err := s.persist(ctx, entries); err != nil {
			return err
		}
	} else {
		s.synced = data
	}

	s.entries = entries

	return nil
}

// Create validates the input, appends a new event and persists the
// collection.
func (s *Service) Create(ctx context.Context, title, dueAt, description string) (model.Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Event{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	due, err := ParseDueAt(dueAt, s.loc)
	if err != nil {
		return model.Event{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(ctx); err != nil {
		return model.Event{}, err
	}

	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}

	ev := model.Event{
		ID:          id,
		Title:       title,
		DueAt:       due.UTC(),
		Description: strings.TrimSpace(description),
	}

	next := append(slices.Clip(s.entries), entry{event: ev})
	if err := s.persist(ctx, next); err != nil {
		return model.Event{}, err
	}

	s.entries = next
	zlog.Logger.Info().Str("id", ev.ID).Time("due_at", ev.DueAt).Msg("event created")

	return ev, nil
}

// List returns a snapshot of all events ordered by due time. Ties keep
// insertion order; events without a usable due time come last.
func (s *Service) List() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sortedEvents(s.entries)
}

// Delete removes the event with the given id and persists the collection.
// It reports false, without persisting, when no such event exists.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(ctx); err != nil {
		return false, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	next := make([]entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:idx]...)
	next = append(next, s.entries[idx+1:]...)

	if err := s.persist(ctx, next); err != nil {
		return false, err
	}

	s.entries = next
	zlog.Logger.Info().Str("id", id).Msg("event deleted")

	return true, nil
}

// TakeDue removes every event due at now and persists the remainder once.
// The removed events are returned ordered by due time, ties in insertion
// order. Nothing is persisted when no event is due.
func (s *Service) TakeDue(ctx context.Context, now time.Time) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	var due []model.Event
	keep := make([]entry, 0, len(s.entries))

	for _, e := range s.entries {
		if e.event.IsDue(now) {
			due = append(due, e.event)
			continue
		}
		keep = append(keep, e)
	}

	if len(due) == 0 {
		return nil, nil
	}

	if err := s.persist(ctx, keep); err != nil {
		return nil, err
	}

	s.entries = keep

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueAt.Before(due[j].DueAt)
	})

	return due, nil
}

func (s *Service) persist(ctx context.Context, entries []entry) error {
	data, err := encode(entries)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	if err := s.mirror.Save(ctx, data); err != nil {
		return fmt.Errorf("persist events: %w", err)
	}
	s.synced = data

	return nil
}

func (s *Service) indexOf(id string) int {
	for i, e := range s.entries {
		if e.event.ID == id {
			return i
		}
	}

	return -1
}

// rekey gives a fresh id to every entry whose id is empty or already used by
// an earlier entry. It reports whether anything changed.
func (s *Service) rekey(entries []entry) bool {
	seen := make(map[string]struct{}, len(entries))
	changed := false

	for i := range entries {
		id := entries[i].event.ID
		if _, dup := seen[id]; id == "" || dup {
			fresh := s.newID()
			zlog.Logger.Warn().Str("id", id).Str("new_id", fresh).Msg("stored event id is missing or duplicated, re-keying")
			entries[i].event.ID = fresh
			id = fresh
			changed = true
		}
		seen[id] = struct{}{}
	}

	return changed
}

func sortedEvents(entries []entry) []model.Event {
	events := make([]model.Event, 0, len(entries))
	for _, e := range entries {
		events = append(events, e.event)
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.HasDueTime() || !b.HasDueTime() {
			return a.HasDueTime() && !b.HasDueTime()
		}
		return a.DueAt.Before(b.DueAt)
	})

	return events
}
