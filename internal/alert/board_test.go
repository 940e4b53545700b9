package alert

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaymick2/timebot/internal/model"
)

func TestBoard(t *testing.T) {
	shown := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	b := NewBoard(func() time.Time { return shown })

	_, ok := b.Current()
	assert.False(t, ok)
	assert.False(t, b.Dismiss(), "nothing to dismiss")

	require.NoError(t, b.Notify(context.Background(), model.FiredEvent{Title: "Standup"}))
	require.NoError(t, b.Notify(context.Background(), model.FiredEvent{Title: "Lunch", Description: "canteen"}))

	current, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, Alert{Title: "Lunch", Message: "canteen", ShownAt: shown}, current)

	assert.True(t, b.Dismiss())
	_, ok = b.Current()
	assert.False(t, ok)
}

func TestBoard_DefaultMessage(t *testing.T) {
	b := NewBoard(nil)
	require.NoError(t, b.Notify(context.Background(), model.FiredEvent{Title: "Standup"}))

	current, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, model.DefaultMessage, current.Message)
}
