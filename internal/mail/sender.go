package mail

import (
	"context"
	"log/slog"

	"booking-api/internal/pkg/config"
	"booking-api/internal/pkg/errs"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sender is the mail transport boundary. Implementations can be
// swapped (SendGrid, SMTP, stub) without changing callers.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *slog.Logger
}

func NewSendGridSender(cfg config.MailConfig, logger *slog.Logger) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	from := sgmail.NewEmail(s.fromName, s.fromEmail)
	to := sgmail.NewEmail(msg.ToName, msg.To)
	message := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.Body)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "sendgrid send failed")
	}

	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid returned error status",
			"status", response.StatusCode, "to", msg.To)
		return errs.New("sendgrid rejected message")
	}

	s.logger.Info("email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

// StubSender logs instead of sending. Used when no API key is
// configured and in tests.
type StubSender struct {
	logger *slog.Logger
}

func NewStubSender(logger *slog.Logger) *StubSender {
	return &StubSender{logger: logger}
}

func (s *StubSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("stub mail sender: would send email", "to", msg.To, "subject", msg.Subject)
	return nil
}

// NewSender picks the real transport when an API key is present.
func NewSender(cfg config.MailConfig, logger *slog.Logger) Sender {
	if cfg.SendGridAPIKey == "" {
		return NewStubSender(logger)
	}
	return NewSendGridSender(cfg, logger)
}
