package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaymick2/timebot/internal/alert"
	"github.com/kaymick2/timebot/internal/clock"
	"github.com/kaymick2/timebot/internal/config"
	"github.com/kaymick2/timebot/internal/model"
	"github.com/kaymick2/timebot/internal/repository/mirror"
	"github.com/kaymick2/timebot/internal/service/event"
	"github.com/kaymick2/timebot/internal/service/notification"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	dir := t.TempDir()
	cfg.Storage.Driver = driver
	cfg.Storage.FilePath = filepath.Join(dir, "events.json")
	cfg.Storage.SQLitePath = filepath.Join(dir, "db", "timebot.db")
	cfg.Server.HTTPPort = "127.0.0.1:0"
	return cfg
}

func TestOpenMirror_Drivers(t *testing.T) {
	for _, driver := range []string{"file", "memory", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, driver)

			m, closeFn, err := OpenMirror(ctx, cfg)
			require.NoError(t, err)
			defer func() { assert.NoError(t, closeFn()) }()

			_, err = m.Load(ctx)
			assert.ErrorIs(t, err, mirror.ErrSlotEmpty)

			require.NoError(t, m.Save(ctx, []byte(`[]`)))
			data, err := m.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(data))
		})
	}
}

func TestOpenMirror_UnknownDriver(t *testing.T) {
	cfg := testConfig(t, "floppy")

	_, _, err := OpenMirror(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestOpenStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, "file")

	store, closeFn, err := OpenStore(ctx, cfg)
	require.NoError(t, err)
	ev, err := store.Create(ctx, "Standup", "2025-09-15T10:00", "")
	require.NoError(t, err)
	require.NoError(t, closeFn())

	reopened, closeFn, err := OpenStore(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, []string{ev.ID}, ids(reopened.List()))
	assert.Equal(t, time.Date(2025, 9, 15, 15, 0, 0, 0, time.UTC), reopened.List()[0].DueAt, "zone-less input is read in the display zone")
}

func TestOpenStore_Corrupt(t *testing.T) {
	cfg := testConfig(t, "file")
	require.NoError(t, os.WriteFile(cfg.Storage.FilePath, []byte("{not json"), 0o600))

	_, _, err := OpenStore(context.Background(), cfg)
	assert.ErrorIs(t, err, event.ErrCorruptState)
}

func TestOpenStore_BadZone(t *testing.T) {
	cfg := testConfig(t, "memory")
	cfg.Clock.Zone = "Mars/Olympus"

	_, _, err := OpenStore(context.Background(), cfg)
	assert.Error(t, err)
}

func TestBuildSinks(t *testing.T) {
	cfg := testConfig(t, "memory")
	board := alert.NewBoard(nil)

	cfg.Sinks.Enabled = []string{"alert", "log"}
	sinks, err := BuildSinks(cfg, board, nil)
	require.NoError(t, err)
	assert.Len(t, sinks, 2)
	assert.Same(t, board, sinks["alert"])
	assert.Equal(t, notification.LogSink{}, sinks["log"])

	cfg.Sinks.Enabled = []string{"email"}
	cfg.Email.To = "me@example.com"
	sinks, err = BuildSinks(cfg, board, nil)
	require.NoError(t, err)
	assert.IsType(t, &notification.ChannelSink{}, sinks["email"])

	for _, tc := range []struct {
		name    string
		enabled []string
	}{
		{"email without recipient", []string{"email"}},
		{"telegram without token", []string{"telegram"}},
		{"rabbitmq without publisher", []string{"rabbitmq"}},
		{"unknown", []string{"pager"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t, "memory")
			cfg.Sinks.Enabled = tc.enabled

			_, err := BuildSinks(cfg, board, nil)
			assert.Error(t, err)
		})
	}
}

func TestClosers(t *testing.T) {
	var order []int
	var cl closers
	cl.add(func() error { order = append(order, 1); return errors.New("first") })
	cl.add(func() error { order = append(order, 2); return errors.New("second") })

	err := cl.Close()
	assert.EqualError(t, err, "second")
	assert.Equal(t, []int{2, 1}, order)
}

func TestRun_FiresAndShutsDown(t *testing.T) {
	cfg := testConfig(t, "file")
	cfg.Clock.FastInterval = time.Second
	cfg.Sinks.Enabled = []string{"log"}

	ctx := context.Background()
	store, closeFn, err := OpenStore(ctx, cfg)
	require.NoError(t, err)
	_, err = store.Create(ctx, "Standup", "2025-09-15T10:00:00Z", "")
	require.NoError(t, err)
	require.NoError(t, closeFn())

	clk := clock.NewManual(time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC))

	runCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- Run(runCtx, cfg, clk) }()

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(cfg.Storage.FilePath)
		return err == nil && string(data) == "[]"
	}, 3*time.Second, 20*time.Millisecond, "due event is removed from the mirror")

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return")
	}
}

func TestRun_CorruptMirror(t *testing.T) {
	cfg := testConfig(t, "file")
	require.NoError(t, os.WriteFile(cfg.Storage.FilePath, []byte("{not json"), 0o600))

	err := Run(context.Background(), cfg, clock.System{})
	assert.ErrorIs(t, err, event.ErrCorruptState)
}

func ids(events []model.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}
