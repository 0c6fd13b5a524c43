package config

// SMTPConfig holds settings for the confirmation-email sender used by the
// booking consumer.  When Host is empty the mailer falls back to writing
// rendered messages to a local log file so that the consumer keeps
// functioning in environments without an SMTP relay.
type SMTPConfig struct {
	Host string // SMTP server hostname; empty disables real delivery
	Port string // SMTP server port
	User string // SMTP auth username (optional)
	Pass string // SMTP auth password (optional)
	From string // sender address on outgoing mail
}

// LoadSMTPConfig reads SMTP_* environment variables.  Every field is
// optional: the consumer degrades to file logging when Host is unset.
func LoadSMTPConfig() SMTPConfig {
	return SMTPConfig{
		Host: envStr("SMTP_HOST", ""),
		Port: envStr("SMTP_PORT", "587"),
		User: envStr("SMTP_USER", ""),
		Pass: envStr("SMTP_PASS", ""),
		From: envStr("SMTP_FROM", "bookings@localhost"),
	}
}
