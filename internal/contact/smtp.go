package contact

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/campushub/campuschat-server/internal/config"
)

// SMTPSender delivers submissions over SMTP with implicit TLS (port
// 465 style). The reply-to header points at the visitor so staff can
// answer directly.
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender builds a sender from config. Returns nil when no host
// is configured, which disables outbound mail.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	if cfg.Host == "" {
		return nil
	}
	return &SMTPSender{cfg: cfg}
}

// Send mails one submission. The context deadline bounds the whole
// exchange, connection included.
func (s *SMTPSender) Send(ctx context.Context, sub Submission) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))

	dialer := &tls.Dialer{Config: &tls.Config{ServerName: s.cfg.Host}}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	to := s.cfg.To
	if to == "" {
		to = s.cfg.Username
	}

	if err := client.Mail(s.cfg.Username); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(composeMail(s.cfg.Username, to, sub))); err != nil {
		return fmt.Errorf("write mail body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close mail body: %w", err)
	}

	return client.Quit()
}

func composeMail(from, to string, sub Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", sub.Email)
	fmt.Fprintf(&b, "Subject: New Contact Form Submission: %s — %s\r\n", sub.Subject, sub.Name)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "Name: %s\r\nSubject: %s\r\nEmail: %s\r\n\r\nMessage:\r\n%s\r\n", sub.Name, sub.Subject, sub.Email, sub.Message)
	return b.String()
}
