// Package mail delivers out-of-band notifications, currently the password
// reset token. The log driver records a redacted notice for local use; the
// smtp driver sends a plain-text mail.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-api/internal/config"
)

// Drivers accepted in config.MailConfig.Driver.
const (
	DriverLog  = "log"
	DriverSMTP = "smtp"
)

// Message is a plain-text mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers messages.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// NewNotifier returns the notifier selected by cfg.Driver.
func NewNotifier(cfg config.MailConfig, logger *slog.Logger) (Notifier, error) {
	switch cfg.Driver {
	case DriverLog, "":
		return NewLogNotifier(logger), nil
	case DriverSMTP:
		return NewSMTPNotifier(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unsupported mail driver %q", cfg.Driver)
	}
}
