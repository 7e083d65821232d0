package mail

import "context"

// NopSender discards mail. Used when SMTP is not configured so the
// inquiry flow keeps working without notifications.
type NopSender struct{}

func (NopSender) Send(ctx context.Context, to, subject, body string, headers map[string]string) error {
	return nil
}
