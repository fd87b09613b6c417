// Package email delivers one-time passcodes to users. The Sender interface is
// the injection point: the authenticator never talks SMTP directly, so tests
// and development environments can swap in a fake.
package email

import (
	"context"
	"log/slog"
)

// Sender delivers an OTP to an email address. Implementations own their own
// retry and timeout behavior; callers treat a returned error as "not
// delivered" and nothing more.
type Sender interface {
	Send(ctx context.Context, to, code string) error
}

// LogSender is the development fallback used when no SMTP server is
// configured. It logs the delivery instead of performing it.
type LogSender struct{}

func (LogSender) Send(_ context.Context, to, code string) error {
	slog.Info("email delivery skipped (no SMTP configured)", "to", to, "code", code)
	return nil
}
