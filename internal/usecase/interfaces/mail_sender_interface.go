package interfaces

import "context"

//go:generate mockgen -source=mail_sender_interface.go -destination=mocks/mail_sender_mock.go -package=mocks

// IMailSender delivers fire-and-forget outbound mail. Callers treat send
// failures as best-effort: they are logged, never propagated to the user.
type IMailSender interface {
	Send(ctx context.Context, to, subject, body string, headers map[string]string) error
}
