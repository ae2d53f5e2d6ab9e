package mailer

import (
	"context"
	"os"
	"strconv"

	"aga_techserv/internal/usecase/interfaces"

	"gopkg.in/gomail.v2"
)

// GomailMailer sends workflow notifications over SMTP.
//
// Env vars:
//   - SMTP_HOST (default: localhost)
//   - SMTP_PORT (default: 587)
//   - SMTP_USER / SMTP_PASSWORD (optional for local relays)
//   - SMTP_FROM (default: noreply@aga-techserv.local)

type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ interfaces.IMailer = (*GomailMailer)(nil)

func NewGomailMailer() *GomailMailer {
	host := getenvDefault("SMTP_HOST", "localhost")
	port, err := strconv.Atoi(getenvDefault("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}

	return &GomailMailer{
		dialer: gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD")),
		from:   getenvDefault("SMTP_FROM", "noreply@aga-techserv.local"),
	}
}

func (m *GomailMailer) Send(_ context.Context, mail interfaces.Mail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)

	switch {
	case mail.HTML != "" && mail.Text != "":
		msg.SetBody("text/plain", mail.Text)
		msg.AddAlternative("text/html", mail.HTML)
	case mail.HTML != "":
		msg.SetBody("text/html", mail.HTML)
	default:
		msg.SetBody("text/plain", mail.Text)
	}

	return m.dialer.DialAndSend(msg)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
