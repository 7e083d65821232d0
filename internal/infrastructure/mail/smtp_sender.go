package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"sort"
	"strings"
	"time"
)

var ErrNotConfigured = errors.New("smtp sender not configured")

// SMTPSender delivers plain-text mail over SMTP. Callers treat delivery as
// best-effort; they log and move on when Send fails.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPSenderFromEnv reads SMTP_HOST, SMTP_PORT, SMTP_USERNAME,
// SMTP_PASSWORD and SMTP_FROM. Host and from address are required; auth is
// skipped when no username is set.
func NewSMTPSenderFromEnv() (*SMTPSender, error) {
	s := &SMTPSender{
		host:     os.Getenv("SMTP_HOST"),
		port:     getenvDefault("SMTP_PORT", "587"),
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
	if s.host == "" || s.from == "" {
		return nil, ErrNotConfigured
	}
	return s, nil
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string, headers map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.host == "" || s.from == "" {
		return ErrNotConfigured
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")

	// Deterministic header order.
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&msg, "%s: %s\r\n", k, headers[k])
	}

	msg.WriteString("\r\n")
	msg.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	addr := s.host + ":" + s.port
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
