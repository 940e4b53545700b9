// Package clock supplies the time source driving due-detection and the
// fixed-zone formatting of the displayed time.
package clock

import (
	"fmt"
	"sync"
	"time"

	_ "time/tzdata"
)

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

// Now returns time.Now.
func (System) Now() time.Time {
	return time.Now()
}

// Manual is a clock that only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock stopped at now.
func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// displayLayout renders as MM/DD/YYYY HH:MM:SS.
const displayLayout = "01/02/2006 15:04:05"

// Display formats instants in a single fixed zone.
type Display struct {
	loc   *time.Location
	label string
}

// NewDisplay loads the IANA zone and labels formatted output with label.
// An empty label falls back to the zone name.
func NewDisplay(zone, label string) (*Display, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load display zone %q: %w", zone, err)
	}

	if label == "" {
		label = zone
	}

	return &Display{loc: loc, label: label}, nil
}

// Location returns the display zone.
func (d *Display) Location() *time.Location {
	return d.loc
}

// Format renders t as "MM/DD/YYYY HH:MM:SS (label)" in the display zone.
func (d *Display) Format(t time.Time) string {
	return t.In(d.loc).Format(displayLayout) + " (" + d.label + ")"
}
