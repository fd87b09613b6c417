package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

const (
	dialTimeout = 8 * time.Second
	sendTimeout = 15 * time.Second
)

// SMTPSender sends OTP mails over SMTP with STARTTLS.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
	fromName string
	otpTTL   time.Duration
}

// NewSMTPSender creates a sender for the given SMTP server. from is the
// envelope and header sender address; fromName is the display name. otpTTL
// is quoted in the mail body so it must match the issuing authenticator's.
func NewSMTPSender(host, port, username, password, from, fromName string, otpTTL time.Duration) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
		otpTTL:   otpTTL,
	}
}

// Send delivers the passcode mail. The whole exchange is bounded by a single
// connection deadline so a stalled server cannot hang the caller.
func (s *SMTPSender) Send(ctx context.Context, to, code string) error {
	msg := s.buildMessage(to, code)

	addr := net.JoinHostPort(s.host, s.port)
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(sendTimeout))
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer func() { _ = client.Quit() }()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	return w.Close()
}

func (s *SMTPSender) buildMessage(to, code string) string {
	fromHeader := s.from
	if s.fromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", s.fromName, s.from)
	}
	minutes := int(s.otpTTL.Minutes())
	if minutes <= 0 {
		minutes = 10
	}
	body := fmt.Sprintf(
		"Your Kharcha login code is %s.\r\n\r\nIt expires in %d minutes. If you did not request it, ignore this email.\r\n",
		code, minutes,
	)
	return strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		"Subject: Your Kharcha login code",
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
		body,
	}, "\r\n")
}
