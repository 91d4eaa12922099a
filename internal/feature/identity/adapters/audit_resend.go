package adapters

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/resendlabs/resend-go"

	"regalis_backend/internal/feature/identity/domain/entity"
	"regalis_backend/internal/feature/identity/usecase"
)

// ResendAuditSink e-mails each notification to the admin through the Resend API.
type ResendAuditSink struct {
	send       func(*resend.SendEmailRequest) error
	from       string
	adminEmail string
}

var _ usecase.AuditSink = (*ResendAuditSink)(nil)

// NewResendAuditSink creates a sink backed by a Resend client.
func NewResendAuditSink(apiKey, from, adminEmail string) (*ResendAuditSink, error) {
	if apiKey == "" {
		return nil, errors.New("resend API key is required")
	}
	client := resend.NewClient(apiKey)
	return newResendAuditSink(func(req *resend.SendEmailRequest) error {
		_, err := client.Emails.Send(req)
		return err
	}, from, adminEmail), nil
}

func newResendAuditSink(send func(*resend.SendEmailRequest) error, from, adminEmail string) *ResendAuditSink {
	return &ResendAuditSink{send: send, from: from, adminEmail: adminEmail}
}

// Notify sends the admin e-mail.
// The Resend client takes no context; ctx is only checked before sending.
func (s *ResendAuditSink) Notify(ctx context.Context, event entity.AuditEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.adminEmail},
		Subject: subjectFor(event),
		Html: fmt.Sprintf("<p>User <strong>%s</strong> has just performed: %s.</p>",
			html.EscapeString(event.Email), html.EscapeString(string(event.Type))),
	}
	if err := s.send(req); err != nil {
		return fmt.Errorf("failed to send audit email via Resend: %w", err)
	}
	return nil
}
