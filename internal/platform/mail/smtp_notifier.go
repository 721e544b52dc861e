package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/redact"
)

// sendFunc matches smtp.SendMail.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier sends messages through an SMTP relay.
type SMTPNotifier struct {
	addr   string
	auth   smtp.Auth
	from   string
	send   sendFunc
	logger *slog.Logger
}

// NewSMTPNotifier creates an SMTPNotifier for cfg. PLAIN authentication is
// used when a username is configured.
func NewSMTPNotifier(cfg config.MailConfig, logger *slog.Logger) *SMTPNotifier {
	if logger == nil {
		logger = slog.Default()
	}

	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}

	return &SMTPNotifier{
		addr:   net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		auth:   auth,
		from:   cfg.FromAddress,
		send:   smtp.SendMail,
		logger: logger.With(slog.String("component", "mail")),
	}
}

// Send implements Notifier. smtp.SendMail cannot be cancelled, so ctx is
// only checked before dialing.
func (n *SMTPNotifier) Send(ctx context.Context, msg Message) error {
	log := logger.FromContextOrDefault(ctx, n.logger)

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := n.send(n.addr, n.auth, n.from, []string{msg.To}, n.render(msg)); err != nil {
		log.Error("failed to send mail",
			slog.String("to", redact.Email(msg.To)),
			slog.String("error", redact.Error(err)))
		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info("mail sent",
		slog.String("to", redact.Email(msg.To)),
		slog.String("subject", msg.Subject))
	return nil
}

// render builds an RFC 5322 message with CRLF line endings.
func (n *SMTPNotifier) render(msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}
