package event

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/kaymick2/timebot/internal/model"
	"github.com/kaymick2/timebot/internal/rabbitmq/queue"
	eventsvc "github.com/kaymick2/timebot/internal/service/event"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/event/mock.go -package=mocks
type eventCreator interface {
	Create(ctx context.Context, title, dueAt, description string) (model.Event, error)
}

// Handler turns intake messages into stored events.
type Handler struct {
	store eventCreator
}

func NewHandler(store eventCreator) *Handler {
	return &Handler{
		store: store,
	}
}

// HandleMessage creates the event described by msg. Invalid requests are
// dropped; persistence failures are retried with strategy.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.CreateMessage, strategy retry.Strategy) {
	zlog.Logger.Info().Msgf("Handle Message: got event %q due at %s", msg.Title, msg.DueAt)

	var created model.Event

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ev, err := h.store.Create(ctx, msg.Title, msg.DueAt, msg.Description)
		if errors.Is(err, eventsvc.ErrInvalidInput) {
			// Retrying cannot fix bad input.
			return nil
		}
		if err != nil {
			return err
		}

		created = ev
		return nil
	}, strategy)

	if err != nil {
		zlog.Logger.Error().Err(err).Msgf("Handle Message: failed to create event %q", msg.Title)
		return
	}

	if created.ID == "" {
		zlog.Logger.Warn().Str("title", msg.Title).Str("due_at", msg.DueAt).Msg("Handle Message: invalid event dropped")
		return
	}

	zlog.Logger.Info().Str("id", created.ID).Msg("Handle Message: event created")
}
