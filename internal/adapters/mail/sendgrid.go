// Package mail dispatches notification emails through SendGrid.
package mail

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/parksandresorts/backster-agent/internal/domain"
)

const (
	fromName    = "Backster"
	fromAddress = "backster@parksandresorts.com"
)

// SendGridSender implements domain.MailSender. Success is defined as the
// provider answering 202 Accepted; everything else is a failure.
type SendGridSender struct {
	client *sendgrid.Client
}

func NewSendGridSender(apiKey string) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
	}
}

func (s *SendGridSender) Send(ctx context.Context, mail domain.OutboundMail) error {
	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail(fromName, fromAddress),
		mail.Subject,
		sgmail.NewEmail("", mail.To),
		"",
		mail.HTMLBody,
	)

	res, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if res.StatusCode != http.StatusAccepted {
		return fmt.Errorf("sendgrid send: unexpected status %d", res.StatusCode)
	}
	return nil
}
