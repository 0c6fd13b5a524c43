package queue

import (
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/config"
)

// Mailer delivers confirmation emails. With an SMTP host configured it
// sends over the wire via net/smtp; without one it appends rendered
// messages to logs/booking.log so local and test environments still
// produce an observable record of every confirmation.
type Mailer struct {
	cfg config.SMTPConfig
}

// NewMailer returns a Mailer for the given SMTP settings.
func NewMailer(cfg config.SMTPConfig) *Mailer { return &Mailer{cfg: cfg} }

// Send delivers one message to a single recipient.
func (m *Mailer) Send(to, subject, body string) error {
	if m.cfg.Host == "" {
		return m.appendToLog(to, subject, body)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.cfg.From, to, subject, body)

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg))
}

// appendToLog records the message in logs/booking.log, one entry per
// delivery, in a single-line human-friendly format.
func (m *Mailer) appendToLog(to, subject, body string) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "booking.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] Confirmation email | to=%s | subject=%q | %d bytes\n",
		time.Now().UTC().Format(time.RFC3339), to, subject, len(body))
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
