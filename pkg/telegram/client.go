// Package telegram provides a simple client for sending reminders via Telegram.
//
// It allows creating a client with a bot token and sending messages to specified chat IDs.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultAPIURL = "https://api.telegram.org"

// Client represents a Telegram client used to send reminders.
type Client struct {
	token  string       // bot token for authentication
	apiURL string       // Bot API base URL
	client *http.Client // HTTP client used to make requests
}

// NewClient creates a new Telegram Client instance with the given bot token.
func NewClient(token string) *Client {
	return &Client{
		token:  token,
		apiURL: defaultAPIURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// sendMessageRequest represents the payload for the Telegram sendMessage API.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"` // chat id to send message to
	Text   string `json:"text"`    // message text
}

// Send sends the subject and body as one message to the specified chat ID.
//
// It returns an error if the request fails or the API responds with a non-200 status.
func (c *Client) Send(to, subject, body string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiURL, c.token)

	payload, err := json.Marshal(sendMessageRequest{
		ChatID: to,
		Text:   subject + "\n" + body,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}
