package event

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/kaymick2/timebot/internal/model"
)

// record is the persisted form of an event inside the mirror slot.
// DateTime is the field name used by older saves and is only read.
type record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DueAt       string `json:"dueAt"`
	DateTime    string `json:"dateTime,omitempty"`
	Description string `json:"description"`
	Notified    bool   `json:"notified"`
}

// entry is one stored event. rawDue keeps the original text of a due time
// that failed to parse so re-saving does not destroy it.
type entry struct {
	event  model.Event
	rawDue string
}

func encode(entries []entry) ([]byte, error) {
	records := make([]record, 0, len(entries))
	for _, e := range entries {
		due := e.rawDue
		if e.event.HasDueTime() {
			due = e.event.DueAt.UTC().Format(time.RFC3339Nano)
		}

		records = append(records, record{
			ID:          e.event.ID,
			Title:       e.event.Title,
			DueAt:       due,
			Description: e.event.Description,
			Notified:    false,
		})
	}

	return json.Marshal(records)
}

func decode(data []byte) ([]entry, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(records))
	for _, r := range records {
		due := r.DueAt
		if due == "" {
			due = r.DateTime
		}

		e := entry{event: model.Event{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
		}}

		t, err := time.Parse(time.RFC3339, due)
		if err == nil && t.IsZero() {
			err = errors.New("zero instant")
		}
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("id", r.ID).Str("due_at", due).Msg("stored event has malformed due time, it will never fire")
			e.rawDue = due
		} else {
			e.event.DueAt = t.UTC()
		}

		entries = append(entries, e)
	}

	return entries, nil
}
