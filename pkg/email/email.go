package email

import (
	"fmt"
	"mime"
	"net/smtp"

	"go-intake-backend/config"
	"go-intake-backend/internal/domain"
)

// Service sends plain-text email via SMTP (Brevo relay in production).
type Service struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewService creates the SMTP-backed mailer from config.
func NewService(cfg *config.Config) *Service {
	return &Service{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFromEmail,
	}
}

// Send delivers one message. The From header carries the display name
// from the message; the envelope sender is the configured address.
func (s *Service) Send(msg domain.Message) error {
	from := msg.From
	if from == "" {
		from = s.from
	}

	headers := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\n",
		from,
		joinAddresses(msg.To),
	)
	if msg.ReplyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo)
	}
	// Q-encode the subject: bodies carry UTF-8 and so do subjects
	headers += fmt.Sprintf(
		"Subject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n",
		mime.QEncoding.Encode("utf-8", msg.Subject),
	)

	raw := []byte(headers + msg.Body)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.from, msg.To, raw); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the transport has valid SMTP configuration
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

func joinAddresses(addrs []string) string {
	out := ""
	for i, a := range addrs {
		if i > 0 {
			out += ", "
		}
		out += a
	}
	return out
}
