package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaymick2/timebot/internal/model"
)

func TestNewFiredMessage(t *testing.T) {
	firedAt := time.Date(2025, 9, 15, 12, 0, 0, 0, time.FixedZone("MSK", 3*3600))

	msg := NewFiredMessage(model.FiredEvent{Title: "Standup"}, firedAt)

	body, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Standup","message":"It's time for your event!","fired_at":"2025-09-15T09:00:00Z"}`, string(body))
}

func TestDecodeCreateMessage(t *testing.T) {
	msg, err := DecodeCreateMessage([]byte(`{"title":"Standup","due_at":"2025-09-15T10:00","description":"room 4"}`))
	require.NoError(t, err)
	assert.Equal(t, CreateMessage{Title: "Standup", DueAt: "2025-09-15T10:00", Description: "room 4"}, msg)

	_, err = DecodeCreateMessage([]byte(`not json`))
	assert.Error(t, err)
}
