package notification

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/kaymick2/timebot/internal/model"
)

// LogSink writes fired events to the application log.
type LogSink struct{}

// Notify logs the fired event.
func (LogSink) Notify(_ context.Context, fired model.FiredEvent) error {
	zlog.Logger.Info().Str("title", fired.Title).Str("message", fired.Message()).Msg("reminder")
	return nil
}

//go:generate mockgen -source=sinks.go -destination=../../mocks/service/notification/sinks_mock.go -package=mocks

// Sender delivers a message to a recipient over some channel.
type Sender interface {
	Send(to, subject, body string) error
}

// ChannelSink adapts a Sender, such as the email or telegram client, to Sink.
type ChannelSink struct {
	sender Sender
	to     string
}

// NewChannelSink creates a sink delivering to the fixed recipient to.
func NewChannelSink(sender Sender, to string) *ChannelSink {
	return &ChannelSink{sender: sender, to: to}
}

// Notify sends the event title as subject and its message as body.
func (c *ChannelSink) Notify(_ context.Context, fired model.FiredEvent) error {
	if err := c.sender.Send(c.to, fired.Title, fired.Message()); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	return nil
}
