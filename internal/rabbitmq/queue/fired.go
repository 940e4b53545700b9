package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"

	"github.com/kaymick2/timebot/internal/model"
)

// FiredMessage is published for every fired event.
type FiredMessage struct {
	Title   string    `json:"title"`
	Message string    `json:"message"`
	FiredAt time.Time `json:"fired_at"`
}

// NewFiredMessage builds the message for fired at firedAt.
func NewFiredMessage(fired model.FiredEvent, firedAt time.Time) FiredMessage {
	return FiredMessage{Title: fired.Title, Message: fired.Message(), FiredAt: firedAt.UTC()}
}

// FiredQueue publishes fired events so other services can render them.
type FiredQueue struct {
	Publisher *rabbitmq.Publisher
	strategy  retry.Strategy
	now       func() time.Time
}

// NewFiredQueue declares the fired-event exchange and queue on ch.
func NewFiredQueue(ch *rabbitmq.Channel, strategy retry.Strategy) (*FiredQueue, error) {
	exchange, _, err := declareBound(ch, FiredExchangeName, FiredQueueName, FiredRoutingKey, nil)
	if err != nil {
		return nil, err
	}

	return &FiredQueue{
		Publisher: rabbitmq.NewPublisher(ch, exchange.Name()),
		strategy:  strategy,
		now:       time.Now,
	}, nil
}

// Notify publishes fired as JSON.
func (q *FiredQueue) Notify(_ context.Context, fired model.FiredEvent) error {
	body, err := json.Marshal(NewFiredMessage(fired, q.now()))
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, FiredRoutingKey, "application/json", q.strategy)
}
