// Package alert keeps the currently showing reminder alert until the user
// dismisses it.
package alert

import (
	"context"
	"sync"
	"time"

	"github.com/kaymick2/timebot/internal/model"
)

// Alert is a fired event as shown to the user.
type Alert struct {
	Title   string    `json:"title"`
	Message string    `json:"message"`
	ShownAt time.Time `json:"shown_at"`
}

// Board holds at most one showing alert. A newly fired event replaces the
// one on display.
type Board struct {
	mu      sync.RWMutex
	now     func() time.Time
	current *Alert
}

// NewBoard creates an empty board stamping alerts with now.
func NewBoard(now func() time.Time) *Board {
	if now == nil {
		now = time.Now
	}

	return &Board{now: now}
}

// Notify shows fired on the board.
func (b *Board) Notify(_ context.Context, fired model.FiredEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = &Alert{
		Title:   fired.Title,
		Message: fired.Message(),
		ShownAt: b.now(),
	}

	return nil
}

// Current returns the showing alert, if any.
func (b *Board) Current() (Alert, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.current == nil {
		return Alert{}, false
	}

	return *b.current, true
}

// Dismiss hides the showing alert and reports whether one was showing.
func (b *Board) Dismiss() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	showing := b.current != nil
	b.current = nil

	return showing
}
