package queue

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// CreateMessage asks for a new event to be created.
type CreateMessage struct {
	Title       string `json:"title"`
	DueAt       string `json:"due_at"`
	Description string `json:"description"`
}

// IntakeQueue consumes event creation requests.
type IntakeQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewIntakeQueue declares the intake exchange, its queue and a dead-letter
// queue for rejected messages.
func NewIntakeQueue(ch *rabbitmq.Channel) (*IntakeQueue, error) {
	qm := rabbitmq.NewQueueManager(ch)
	if _, err := qm.DeclareQueue(IntakeDLQName, rabbitmq.QueueConfig{Durable: true}); err != nil {
		return nil, err
	}

	args := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": IntakeDLQName,
	}

	exchange, queueName, err := declareBound(ch, IntakeExchangeName, IntakeQueueName, IntakeRoutingKey, args)
	if err != nil {
		return nil, err
	}

	return &IntakeQueue{
		Publisher: rabbitmq.NewPublisher(ch, exchange.Name()),
		Consumer:  rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(queueName)),
	}, nil
}

// Publish enqueues a creation request.
func (q *IntakeQueue) Publish(msg CreateMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return q.Publisher.PublishWithRetry(body, IntakeRoutingKey, "application/json", strategy)
}

// Consume decodes messages into out until ctx is done. Undecodable messages
// are logged and dropped.
func (q *IntakeQueue) Consume(ctx context.Context, out chan<- CreateMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgChan:
				if !ok {
					return
				}

				msg, err := DecodeCreateMessage(m)
				if err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to unmarshal intake message")
					continue
				}

				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

// DecodeCreateMessage parses an intake message body.
func DecodeCreateMessage(body []byte) (CreateMessage, error) {
	var msg CreateMessage
	err := json.Unmarshal(body, &msg)
	return msg, err
}
