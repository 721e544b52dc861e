package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/phrazzld/task-api/internal/events"
)

// PasswordResetSubject is the subject of reset token mails.
const PasswordResetSubject = "Reset Password Notification"

// PasswordResetHandler mails the token carried by
// password_reset_requested events. Other events are ignored.
type PasswordResetHandler struct {
	notifier Notifier
	lifetime time.Duration
}

// Ensure PasswordResetHandler implements events.EventHandler interface
var _ events.EventHandler = (*PasswordResetHandler)(nil)

// NewPasswordResetHandler creates a handler that tells recipients the token
// expires after lifetime.
func NewPasswordResetHandler(notifier Notifier, lifetime time.Duration) *PasswordResetHandler {
	return &PasswordResetHandler{notifier: notifier, lifetime: lifetime}
}

// HandleEvent implements events.EventHandler.
func (h *PasswordResetHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	if event.Type != events.EventTypePasswordResetRequested {
		return nil
	}

	var payload events.PasswordResetRequested
	if err := event.UnmarshalPayload(&payload); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", event.Type, err)
	}

	greeting := "Hello!"
	if payload.Name != "" {
		greeting = "Hello " + payload.Name + "!"
	}

	body := fmt.Sprintf("%s\n\n"+
		"You are receiving this email because we received a password reset request for your account.\n\n"+
		"Reset token: %s\n\n"+
		"This password reset token will expire in %d minutes.\n\n"+
		"If you did not request a password reset, no further action is required.\n",
		greeting, payload.Token, int(h.lifetime.Minutes()))

	return h.notifier.Send(ctx, Message{
		To:      payload.Email,
		Subject: PasswordResetSubject,
		Body:    body,
	})
}
