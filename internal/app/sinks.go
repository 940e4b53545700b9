package app

import (
	"fmt"

	"github.com/kaymick2/timebot/internal/alert"
	"github.com/kaymick2/timebot/internal/config"
	"github.com/kaymick2/timebot/internal/service/notification"
	"github.com/kaymick2/timebot/pkg/email"
	"github.com/kaymick2/timebot/pkg/telegram"
)

// BuildSinks creates the sinks named in cfg.Sinks.Enabled. board backs the
// alert sink; fired backs the rabbitmq sink and may be nil when that sink
// is not enabled.
func BuildSinks(cfg *config.Config, board *alert.Board, fired notification.Sink) (map[string]notification.Sink, error) {
	sinks := make(map[string]notification.Sink, len(cfg.Sinks.Enabled))

	for _, name := range cfg.Sinks.Enabled {
		switch name {
		case "alert":
			sinks[name] = board
		case "log":
			sinks[name] = notification.LogSink{}
		case "email":
			if cfg.Email.To == "" {
				return nil, fmt.Errorf("email sink needs email.to")
			}
			client := email.NewClient(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.Username, cfg.Email.Password, cfg.Email.From)
			sinks[name] = notification.NewChannelSink(client, cfg.Email.To)
		case "telegram":
			if cfg.Telegram.Token == "" || cfg.Telegram.ChatID == "" {
				return nil, fmt.Errorf("telegram sink needs telegram.token and telegram.chat_id")
			}
			sinks[name] = notification.NewChannelSink(telegram.NewClient(cfg.Telegram.Token), cfg.Telegram.ChatID)
		case "rabbitmq":
			if fired == nil {
				return nil, fmt.Errorf("rabbitmq sink is enabled but no publisher is connected")
			}
			sinks[name] = fired
		default:
			return nil, fmt.Errorf("unknown sink %q", name)
		}
	}

	return sinks, nil
}
