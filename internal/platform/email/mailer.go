// Package email implements the transactional mail collaborator. The service
// layer treats mail as fire-and-forget: send failures are logged by the
// caller and never fail the request that triggered them.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/tasknest/tasknest-api/internal/config"
)

// Mailer sends the account lifecycle notifications.
type Mailer interface {
	// SendWelcome greets a newly registered user.
	SendWelcome(ctx context.Context, to, name string) error

	// SendGoodbye says farewell to a user who deleted their account.
	SendGoodbye(ctx context.Context, to, name string) error
}

// NewMailer returns an SMTP-backed Mailer when email is enabled in cfg, and
// a log-only Mailer otherwise. The log-only mode keeps local development and
// tests free of SMTP dependencies.
func NewMailer(cfg config.EmailConfig, logger *slog.Logger) Mailer {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Enabled {
		return &LogMailer{logger: logger.With(slog.String("component", "log_mailer"))}
	}
	return &SMTPMailer{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "smtp_mailer")),
	}
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	cfg    config.EmailConfig
	logger *slog.Logger
}

var _ Mailer = (*SMTPMailer)(nil)

// SendWelcome implements Mailer.SendWelcome.
func (m *SMTPMailer) SendWelcome(ctx context.Context, to, name string) error {
	body := fmt.Sprintf(
		"Welcome to the app, %s. Let me know how you get along with the app.", name)
	return m.send(ctx, to, "Thanks for joining in!", body)
}

// SendGoodbye implements Mailer.SendGoodbye.
func (m *SMTPMailer) SendGoodbye(ctx context.Context, to, name string) error {
	body := fmt.Sprintf(
		"Goodbye, %s. We're sad to see you leave. Let us know if we can improve!", name)
	return m.send(ctx, to, "Sorry to see you go", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := buildMessage(m.cfg.FromName, m.cfg.FromAddress, to, subject, body)

	if err := smtp.SendMail(addr, auth, m.cfg.FromAddress, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail via %s: %w", addr, err)
	}

	m.logger.Info("mail sent", slog.String("subject", subject))
	return nil
}

// buildMessage assembles a minimal RFC 5322 message.
func buildMessage(fromName, fromAddress, to, subject, body string) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s <%s>\r\n", fromName, fromAddress)
	fmt.Fprintf(&sb, "To: %s\r\n", to)
	fmt.Fprintf(&sb, "Subject: %s\r\n", subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	sb.WriteString("\r\n")
	return []byte(sb.String())
}

// LogMailer logs instead of sending. Used when email is disabled.
type LogMailer struct {
	logger *slog.Logger
}

var _ Mailer = (*LogMailer)(nil)

// SendWelcome implements Mailer.SendWelcome.
func (m *LogMailer) SendWelcome(_ context.Context, to, name string) error {
	m.logger.Info("welcome mail suppressed (email disabled)",
		slog.String("to", to),
		slog.String("name", name))
	return nil
}

// SendGoodbye implements Mailer.SendGoodbye.
func (m *LogMailer) SendGoodbye(_ context.Context, to, name string) error {
	m.logger.Info("goodbye mail suppressed (email disabled)",
		slog.String("to", to),
		slog.String("name", name))
	return nil
}
