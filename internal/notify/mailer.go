// Package notify sends the admin notification emails over a plain SMTP
// relay. Delivery is best-effort fan-out: each recipient is attempted
// independently and individual failures are counted, never propagated.
package notify

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/iliyamo/investor-portal/internal/config"
)

// Mailer sends HTML mail through a plain SMTP relay.
type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
}

// NewMailer builds a Mailer from the application config. An
// unconfigured mailer counts every send as failed instead of erroring
// out the consumer.
func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{host: cfg.SMTPHost, port: cfg.SMTPPort, user: cfg.SMTPUser, pass: cfg.SMTPPass, from: cfg.MailFrom}
}

// Configured reports whether the relay settings are usable.
func (m *Mailer) Configured() bool { return m.host != "" && m.user != "" }

// Send delivers one HTML message to one recipient.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	if !m.Configured() {
		return fmt.Errorf("smtp not configured")
	}
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/html; charset=utf-8\r\n"+
		"\r\n"+
		"%s\r\n", to, m.from, subject, htmlBody))
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, msg)
}

// FanOut sends body to every recipient independently and returns how
// many sends succeeded and failed. Failures are logged per recipient.
func (m *Mailer) FanOut(recipients []string, subject, htmlBody string) (sent, failed int) {
	for _, to := range recipients {
		if err := m.Send(to, subject, htmlBody); err != nil {
			log.Printf("notify: send to %s failed: %v", to, err)
			failed++
			continue
		}
		sent++
	}
	return sent, failed
}
