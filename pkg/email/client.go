// Package email sends reminders over SMTP.
package email

import (
	"gopkg.in/mail.v2"
)

const subjectPrefix = "Reminder: "

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

// Send mails body to the given address.
func (c *Client) Send(to, subject, body string) error {
	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(c.message(to, subject, body))
}

func (c *Client) message(to, subject, body string) *mail.Message {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subjectPrefix+subject)

	message.SetBody("text/plain", body)

	return message
}
