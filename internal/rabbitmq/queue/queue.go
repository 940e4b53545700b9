package queue

import (
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
)

const (
	FiredExchangeName  = "timebot-fired"
	FiredQueueName     = "timebot-fired"
	FiredRoutingKey    = "fired"
	IntakeExchangeName = "timebot-intake"
	IntakeQueueName    = "timebot-intake"
	IntakeDLQName      = "timebot-intake-dlq"
	IntakeRoutingKey   = "create"
)

// declareBound declares a durable direct exchange and a durable queue bound
// to it under routingKey. Extra queue arguments are passed through.
func declareBound(ch *rabbitmq.Channel, exchangeName, queueName, routingKey string, args map[string]interface{}) (*rabbitmq.Exchange, string, error) {
	exchange := rabbitmq.NewExchange(exchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, "", fmt.Errorf("failed to bind to exchange %s: %w", exchangeName, err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	q, err := qm.DeclareQueue(queueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    args,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	if err := ch.QueueBind(q.Name, routingKey, exchange.Name(), false, nil); err != nil {
		return nil, "", fmt.Errorf("failed to bind the exchange to queue %s: %w", queueName, err)
	}

	return exchange, q.Name, nil
}
