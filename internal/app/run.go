package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/zlog"

	"github.com/kaymick2/timebot/internal/alert"
	alerth "github.com/kaymick2/timebot/internal/api/handlers/alert"
	clockh "github.com/kaymick2/timebot/internal/api/handlers/clock"
	eventh "github.com/kaymick2/timebot/internal/api/handlers/event"
	"github.com/kaymick2/timebot/internal/api/router"
	"github.com/kaymick2/timebot/internal/api/server"
	"github.com/kaymick2/timebot/internal/clock"
	"github.com/kaymick2/timebot/internal/config"
	intakeh "github.com/kaymick2/timebot/internal/rabbitmq/handlers/event"
	"github.com/kaymick2/timebot/internal/rabbitmq/queue"
	"github.com/kaymick2/timebot/internal/service/notification"
	"github.com/kaymick2/timebot/internal/worker"
)

// Run starts the reminder service and blocks until ctx is done, then shuts
// down gracefully. Startup failures, a corrupt mirror included, are returned.
func Run(ctx context.Context, cfg *config.Config, clk clock.Clock) error {
	display, err := clock.NewDisplay(cfg.Clock.Zone, cfg.Clock.ZoneLabel)
	if err != nil {
		return err
	}

	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close storage")
		}
	}()

	var (
		ch    *rabbitmq.Channel
		fired notification.Sink
	)

	if cfg.HasSink("rabbitmq") || cfg.RabbitMQ.Intake {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
		if err != nil {
			return err
		}
		defer func() {
			if err := conn.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
			}
		}()

		ch, err = conn.Channel()
		if err != nil {
			return err
		}
		defer func() {
			if err := ch.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
			}
		}()

		if cfg.HasSink("rabbitmq") {
			fq, err := queue.NewFiredQueue(ch, cfg.Retry)
			if err != nil {
				return err
			}
			fired = fq
		}
	}

	board := alert.NewBoard(clk.Now)

	sinks, err := BuildSinks(cfg, board, fired)
	if err != nil {
		return err
	}

	engine := notification.NewService(store, sinks, cfg.Retry)
	reminder := worker.NewReminder(clk, display, engine)

	r := router.New(router.Handlers{
		Event: eventh.NewHandler(store, validator.New(), clk.Now),
		Alert: alerth.NewHandler(board),
		Clock: clockh.NewHandler(clk, display, reminder),
	})
	s := server.New(cfg.Server.HTTPPort, r)

	serveErr := make(chan error, 1)
	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("http server started")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		reminder.Run(runCtx, worker.NewScheduler(), cfg.Clock.FastInterval, cfg.Clock.SlowInterval)
		close(done)
	}()

	intakeDone := make(chan struct{})
	if cfg.RabbitMQ.Intake {
		q, err := queue.NewIntakeQueue(ch)
		if err != nil {
			cancel()
			<-done
			return err
		}

		in := worker.NewIntake(q, intakeh.NewHandler(store))
		go func() {
			in.Run(runCtx, cfg.Retry, cfg.Workers.Count)
			close(intakeDone)
		}()
	} else {
		close(intakeDone)
	}

	select {
	case <-ctx.Done():
		zlog.Logger.Info().Msg("shutdown signal received")
	case err = <-serveErr:
		zlog.Logger.Error().Err(err).Msg("http server failed")
	}

	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer stop()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	<-done
	<-intakeDone

	return err
}
