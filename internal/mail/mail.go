// Package mail sends transactional email for the WorkHive API.
//
// The only mail the API sends today is the weekly job digest. Mailer is
// an interface so the digest service can be tested without a live SMTP
// server.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer sends a single HTML email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// Config holds SMTP connection settings
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPMailer sends mail through a plain SMTP relay with AUTH.
type SMTPMailer struct {
	config Config
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{config: cfg}
}

// Send delivers an HTML email to a single recipient.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	addr := m.config.Host + ":" + m.config.Port

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.config.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
