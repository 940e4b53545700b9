// Package app wires configuration into the running reminder service.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/kaymick2/timebot/internal/clock"
	"github.com/kaymick2/timebot/internal/config"
	"github.com/kaymick2/timebot/internal/repository/mirror"
	"github.com/kaymick2/timebot/internal/service/event"
)

// ErrUnknownDriver is returned for an unsupported storage.driver value.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Mirror is a durable slot the event store persists to.
type Mirror interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// closers releases resources in reverse order of acquisition.
type closers []func() error

func (c *closers) add(fn func() error) {
	*c = append(*c, fn)
}

// Close runs every closer and returns the first error.
func (c closers) Close() error {
	var first error
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i](); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// OpenMirror opens the mirror selected by cfg.Storage.Driver. The returned
// function releases its connections.
func OpenMirror(ctx context.Context, cfg *config.Config) (Mirror, func() error, error) {
	var cl closers
	slot := cfg.Storage.Slot
	if slot == "" {
		slot = mirror.DefaultSlot
	}

	switch cfg.Storage.Driver {
	case "", "file":
		return mirror.NewFile(cfg.Storage.FilePath), cl.Close, nil

	case "memory":
		return mirror.NewMemory(), cl.Close, nil

	case "redis":
		rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		cl.add(rdb.Close)

		return mirror.NewRedis(rdb, slot, cfg.Retry), cl.Close, nil

	case "postgres":
		opts := &dbpg.Options{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		}

		slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
		for _, s := range cfg.Database.Slaves {
			slaveDSNs = append(slaveDSNs, s.DSN())
		}

		db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		cl.add(func() error { return closeDB(db) })

		m := mirror.NewSQL(db, slot)
		if err := m.Init(ctx); err != nil {
			_ = cl.Close()
			return nil, nil, err
		}

		return m, cl.Close, nil

	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.SQLitePath), 0o700); err != nil {
			return nil, nil, fmt.Errorf("create sqlite directory: %w", err)
		}

		db, err := mirror.OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		cl.add(db.Close)

		m := mirror.NewSQL(db, slot)
		if err := m.Init(ctx); err != nil {
			_ = cl.Close()
			return nil, nil, err
		}

		return m, cl.Close, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
}

func closeDB(db *dbpg.DB) error {
	var first error

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
		first = err
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
			if first == nil {
				first = err
			}
		}
	}

	return first
}

// Location resolves the configured display zone.
func Location(cfg *config.Config) (*time.Location, error) {
	d, err := clock.NewDisplay(cfg.Clock.Zone, cfg.Clock.ZoneLabel)
	if err != nil {
		return nil, err
	}

	return d.Location(), nil
}

// OpenStore opens the configured mirror and loads the event store from it.
// A corrupt mirror is reported as event.ErrCorruptState.
func OpenStore(ctx context.Context, cfg *config.Config) (*event.Service, func() error, error) {
	loc, err := Location(cfg)
	if err != nil {
		return nil, nil, err
	}

	m, closeFn, err := OpenMirror(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	store := event.NewService(m, loc)
	if _, err := store.LoadAll(ctx); err != nil {
		_ = closeFn()
		return nil, nil, err
	}

	return store, closeFn, nil
}
