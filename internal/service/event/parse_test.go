package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueAt(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)

	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2025-09-15T10:00:00Z", want: time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)},
		{in: "2025-09-15T10:00:00.000Z", want: time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)},
		{in: "2025-09-15T10:00:00+03:00", want: time.Date(2025, 9, 15, 7, 0, 0, 0, time.UTC)},
		{in: "2025-09-15T10:00:00", want: time.Date(2025, 9, 15, 16, 0, 0, 0, time.UTC)},
		{in: "2025-09-15T10:00", want: time.Date(2025, 9, 15, 16, 0, 0, 0, time.UTC)},
		{in: " 2025-09-15 10:00:00 ", want: time.Date(2025, 9, 15, 16, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDueAt(tt.in, loc)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseDueAt_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-date", "2025-13-45T10:00", "15/09/2025", "0001-01-01T00:00:00Z", "0001-01-01T00:00:00"} {
		_, err := ParseDueAt(in, time.UTC)
		assert.Error(t, err, in)
	}
}
