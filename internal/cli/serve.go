package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kaymick2/timebot/internal/app"
	"github.com/kaymick2/timebot/internal/clock"
	"github.com/kaymick2/timebot/internal/config"
	"github.com/kaymick2/timebot/internal/service/event"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the reminder service",
		Long: `Run the reminder service: the HTTP API, the reminder schedules and,
when enabled, the RabbitMQ intake. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(rootOpts, cmd)
		},
	}
}

func runServe(opts *RootOptions, cmd *cobra.Command) error {
	// The service logs at info level regardless of --verbose.
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitInvalidInput, "failed to load config", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, clock.System{}); err != nil {
		if errors.Is(err, event.ErrCorruptState) {
			return WrapExitError(ExitFailure, "stored events are corrupt", err)
		}
		return WrapExitError(ExitFailure, "service failed", err)
	}

	return nil
}
