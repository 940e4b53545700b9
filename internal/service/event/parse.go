package event

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// localLayouts are accepted due-time layouts without a zone offset; they are
// interpreted in the display zone.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
}

// ParseDueAt parses a user-supplied due time. RFC 3339 input keeps its own
// offset; zone-less input is read in loc. The zero instant is rejected since
// stored events use it to mark a due time that never fires.
func ParseDueAt(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("due time is required")
	}

	t, err := parseDueAt(value, loc)
	if err != nil {
		return time.Time{}, err
	}
	if t.IsZero() {
		return time.Time{}, fmt.Errorf("due time %q is out of range", value)
	}

	return t, nil
}

func parseDueAt(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized due time %q", value)
}
