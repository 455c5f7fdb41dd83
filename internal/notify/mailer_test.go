package notify

import (
	"testing"

	"github.com/iliyamo/investor-portal/internal/config"
)

// An unconfigured mailer must count sends as failed without erroring
// the consumer.
func TestFanOutUnconfigured(t *testing.T) {
	m := NewMailer(config.Config{})
	sent, failed := m.FanOut([]string{"a@example.com", "b@example.com"}, "subject", "<p>hi</p>")
	if sent != 0 || failed != 2 {
		t.Errorf("sent=%d failed=%d, want 0/2", sent, failed)
	}
}

func TestConfigured(t *testing.T) {
	if NewMailer(config.Config{SMTPHost: "smtp.example.com"}).Configured() {
		t.Error("mailer without user reported configured")
	}
	m := NewMailer(config.Config{SMTPHost: "smtp.example.com", SMTPUser: "portal", SMTPPass: "secret", MailFrom: "noreply@example.com"})
	if !m.Configured() {
		t.Error("fully configured mailer reported unconfigured")
	}
}
