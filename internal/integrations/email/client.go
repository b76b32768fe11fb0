package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendClient часть *sendgrid.Client, которую использует отправитель
type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridSender отправляет письма через SendGrid API
type SendGridSender struct {
	client    sendClient
	fromEmail string
	fromName  string
	log       Logger
}

// NewSendGridSender создает отправителя SendGrid
func NewSendGridSender(apiKey, fromEmail, fromName string, log Logger) (*SendGridSender, error) {
	if apiKey == "" || fromEmail == "" {
		return nil, ErrNotConfigured
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		log:       log,
	}, nil
}

// Send отправляет письмо
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	html := msg.HTML
	if html == "" {
		html = msg.Text
	}
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, html)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: failed to send: %v", ErrInternal, err)
	}

	// Обработка статус-кодов
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, resp.Body)
	}

	s.log.Info("Email sent via SendGrid: to=%s, subject=%q, status=%d", msg.To, msg.Subject, resp.StatusCode)
	return nil
}

// StubSender только логирует письма; используется, когда SendGrid не настроен
type StubSender struct {
	log Logger
}

// NewStubSender создает отправителя-заглушку
func NewStubSender(log Logger) *StubSender {
	return &StubSender{log: log}
}

// Send логирует письмо и ничего не отправляет
func (s *StubSender) Send(_ context.Context, msg Message) error {
	s.log.Info("Email delivery disabled, skipping: to=%s, subject=%q", msg.To, msg.Subject)
	return nil
}
