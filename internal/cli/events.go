package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kaymick2/timebot/internal/app"
	"github.com/kaymick2/timebot/internal/clock"
	"github.com/kaymick2/timebot/internal/config"
	"github.com/kaymick2/timebot/internal/ics"
	"github.com/kaymick2/timebot/internal/service/event"
)

// NewEventsCommand creates the events command and its subcommands.
func NewEventsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage stored events",
	}

	cmd.AddCommand(newEventsAddCommand(rootOpts))
	cmd.AddCommand(newEventsListCommand(rootOpts))
	cmd.AddCommand(newEventsRmCommand(rootOpts))
	cmd.AddCommand(newEventsExportCommand(rootOpts))

	return cmd
}

type addOptions struct {
	Title       string
	Due         string
	Description string
}

func newEventsAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event",
		Long: `Add an event due at --due. Accepted forms are RFC 3339
(2025-09-15T10:00:00Z) or a local time in the display zone
(2025-09-15T10:00, 2025-09-15 10:00:00).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), rootOpts, func(ctx context.Context, store *event.Service, d *clock.Display) error {
				ev, err := store.Create(ctx, opts.Title, opts.Due, opts.Description)
				if err != nil {
					return storeError("failed to add event", err)
				}

				v := viewOf(ev, d)
				f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return f.Success(v, fmt.Sprintf("Added %s  %s  %s\n", v.ID, v.DueDisplay, v.Title))
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "event title (required)")
	cmd.Flags().StringVarP(&opts.Due, "due", "d", "", "due time (required)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "optional alert message")

	return cmd
}

func newEventsListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List events ordered by due time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), rootOpts, func(ctx context.Context, store *event.Service, d *clock.Display) error {
				views := viewsOf(store.List(), d)
				f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return f.Success(views, eventsText(views))
			})
		},
	}
}

func newEventsRmCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), rootOpts, func(ctx context.Context, store *event.Service, _ *clock.Display) error {
				removed, err := store.Delete(ctx, args[0])
				if err != nil {
					return storeError("failed to remove event", err)
				}
				if !removed {
					return NewExitError(ExitFailure, fmt.Sprintf("event %s not found", args[0]))
				}

				f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return f.Success(map[string]string{"removed": args[0]}, fmt.Sprintf("Removed %s\n", args[0]))
			})
		},
	}
}

func newEventsExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print events as an iCalendar document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), rootOpts, func(ctx context.Context, store *event.Service, _ *clock.Display) error {
				_, err := io.WriteString(cmd.OutOrStdout(), ics.Export(store.List(), clock.System{}.Now()))
				return err
			})
		},
	}
}

// withStore loads the configured store, runs fn and releases the storage.
func withStore(ctx context.Context, opts *RootOptions, fn func(context.Context, *event.Service, *clock.Display) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitInvalidInput, "failed to load config", err)
	}

	d, err := clock.NewDisplay(cfg.Clock.Zone, cfg.Clock.ZoneLabel)
	if err != nil {
		return WrapExitError(ExitInvalidInput, "invalid clock zone", err)
	}

	store, closeFn, err := app.OpenStore(ctx, cfg)
	if err != nil {
		return storeError("failed to open event store", err)
	}
	defer closeFn()

	return fn(ctx, store, d)
}

func storeError(message string, err error) error {
	if errors.Is(err, event.ErrInvalidInput) {
		return WrapExitError(ExitInvalidInput, message, err)
	}
	return WrapExitError(ExitFailure, message, err)
}
