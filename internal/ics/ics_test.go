package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaymick2/timebot/internal/model"
)

func TestExport(t *testing.T) {
	stamp := time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC)
	events := []model.Event{
		{ID: "a", Title: "Standup", DueAt: time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC), Description: "room 4"},
		{ID: "b", Title: "Broken"},
	}

	out := Export(events, stamp)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "PRODID:"+productID)
	assert.Contains(t, out, "UID:a@timebot")
	assert.Contains(t, out, "SUMMARY:Standup")
	assert.Contains(t, out, "DTSTART:20250915T100000Z")
	assert.Contains(t, out, "BEGIN:VALARM")
	assert.Contains(t, out, "ACTION:DISPLAY")
	assert.NotContains(t, out, "UID:b@timebot", "events without a due time are skipped")
}

func TestExportImport_RoundTrip(t *testing.T) {
	events := []model.Event{
		{ID: "a", Title: "Standup", DueAt: time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC), Description: "room 4"},
		{ID: "b", Title: "Lunch", DueAt: time.Date(2025, 9, 15, 12, 30, 0, 0, time.UTC)},
	}

	drafts, skipped, err := Import(strings.NewReader(Export(events, time.Now())))
	require.NoError(t, err)
	assert.Zero(t, skipped)

	assert.Equal(t, []Draft{
		{Title: "Standup", DueAt: "2025-09-15T10:00:00Z", Description: "room 4"},
		{Title: "Lunch", DueAt: "2025-09-15T12:30:00Z"},
	}, drafts)
}

func TestImport_SkipsIncompleteEvents(t *testing.T) {
	doc := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:1",
		"DTSTART:20250915T100000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:2",
		"SUMMARY:Review",
		"DTSTART:20250916T090000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:3",
		"SUMMARY:No start",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	drafts, skipped, err := Import(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []Draft{{Title: "Review", DueAt: "2025-09-16T09:00:00Z"}}, drafts)
	assert.Equal(t, 2, skipped)
}
