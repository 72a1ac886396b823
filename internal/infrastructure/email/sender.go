// Package email sends transactional mail over SMTP. Like push delivery it
// is best effort: senders return errors for logging but triggering flows
// never abort on them.
package email

import (
	"gopkg.in/gomail.v2"

	"github.com/heliox-inc/heliox/internal/shared/config"
)

// Sender delivers a single HTML email.
type Sender interface {
	Send(to []string, subject, htmlBody string) error
}

type SMTPSender struct {
	dialer      *gomail.Dialer
	fromAddress string
	fromName    string
}

func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
	}
}

func (s *SMTPSender) Send(to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return s.dialer.DialAndSend(m)
}

// NopSender discards every email. Used when SMTP is not configured and in
// tests.
type NopSender struct{}

func (NopSender) Send([]string, string, string) error { return nil }
