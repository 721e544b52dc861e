package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

type recordingNotifier struct {
	sent []Message
	err  error
}

func (r *recordingNotifier) Send(_ context.Context, msg Message) error {
	r.sent = append(r.sent, msg)
	return r.err
}

func TestNewNotifier(t *testing.T) {
	t.Parallel()

	n, err := NewNotifier(config.MailConfig{Driver: DriverLog}, nil)
	require.NoError(t, err)
	assert.IsType(t, &LogNotifier{}, n)

	n, err = NewNotifier(config.MailConfig{
		Driver: DriverSMTP, SMTPHost: "smtp.example.com", SMTPPort: 587, FromAddress: "noreply@example.com",
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &SMTPNotifier{}, n)

	_, err = NewNotifier(config.MailConfig{Driver: "pigeon"}, nil)
	assert.Error(t, err)
}

func TestLogNotifier_RedactsSecrets(t *testing.T) {
	t.Parallel()

	logBuf, log := logger.NewTestLogger(t)
	n := NewLogNotifier(log)

	err := n.Send(context.Background(), Message{
		To:      "ann@example.com",
		Subject: PasswordResetSubject,
		Body:    "Reset token: " + testToken,
	})
	require.NoError(t, err)

	logger.AssertLogContains(t, logBuf, "mail not sent")
	logger.AssertLogContains(t, logBuf, PasswordResetSubject)
	logger.AssertLogNotContains(t, logBuf, testToken)
	logger.AssertLogNotContains(t, logBuf, "ann@example.com")
}

func TestSMTPNotifier_Send(t *testing.T) {
	t.Parallel()

	cfg := config.MailConfig{
		Driver:       DriverSMTP,
		SMTPHost:     "smtp.example.com",
		SMTPPort:     2525,
		SMTPUsername: "user",
		SMTPPassword: "pass",
		FromAddress:  "noreply@example.com",
	}

	t.Run("renders and sends", func(t *testing.T) {
		t.Parallel()

		n := NewSMTPNotifier(cfg, nil)
		var (
			gotAddr string
			gotFrom string
			gotTo   []string
			gotMsg  string
		)
		n.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, string(msg)
			assert.NotNil(t, a)
			return nil
		}

		err := n.Send(context.Background(), Message{To: "ann@example.com", Subject: "Hi", Body: "line1\nline2"})
		require.NoError(t, err)

		assert.Equal(t, "smtp.example.com:2525", gotAddr)
		assert.Equal(t, "noreply@example.com", gotFrom)
		assert.Equal(t, []string{"ann@example.com"}, gotTo)
		assert.True(t, strings.HasPrefix(gotMsg, "From: noreply@example.com\r\nTo: ann@example.com\r\nSubject: Hi\r\n"))
		assert.True(t, strings.HasSuffix(gotMsg, "\r\n\r\nline1\r\nline2"))
	})

	t.Run("propagates failures", func(t *testing.T) {
		t.Parallel()

		n := NewSMTPNotifier(cfg, nil)
		n.send = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		}

		err := n.Send(context.Background(), Message{To: "ann@example.com"})
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		n := NewSMTPNotifier(cfg, nil)
		n.send = func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatal("send must not be called")
			return nil
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, n.Send(ctx, Message{To: "ann@example.com"}), context.Canceled)
	})
}

func TestPasswordResetHandler(t *testing.T) {
	t.Parallel()

	t.Run("mails the token", func(t *testing.T) {
		t.Parallel()

		rec := &recordingNotifier{}
		h := NewPasswordResetHandler(rec, time.Hour)

		event, err := events.NewEvent(events.EventTypePasswordResetRequested, events.PasswordResetRequested{
			Email: "ann@example.com", Name: "Ann", Token: testToken,
		})
		require.NoError(t, err)

		require.NoError(t, h.HandleEvent(context.Background(), event))
		require.Len(t, rec.sent, 1)
		assert.Equal(t, "ann@example.com", rec.sent[0].To)
		assert.Equal(t, PasswordResetSubject, rec.sent[0].Subject)
		assert.Contains(t, rec.sent[0].Body, "Hello Ann!")
		assert.Contains(t, rec.sent[0].Body, testToken)
		assert.Contains(t, rec.sent[0].Body, "60 minutes")
	})

	t.Run("ignores other events", func(t *testing.T) {
		t.Parallel()

		rec := &recordingNotifier{}
		h := NewPasswordResetHandler(rec, time.Hour)

		event, err := events.NewEvent("task_created", map[string]string{"id": "1"})
		require.NoError(t, err)

		require.NoError(t, h.HandleEvent(context.Background(), event))
		assert.Empty(t, rec.sent)
	})

	t.Run("returns notifier errors", func(t *testing.T) {
		t.Parallel()

		rec := &recordingNotifier{err: errors.New("smtp down")}
		h := NewPasswordResetHandler(rec, time.Hour)

		event, err := events.NewEvent(events.EventTypePasswordResetRequested, events.PasswordResetRequested{
			Email: "ann@example.com", Token: testToken,
		})
		require.NoError(t, err)

		assert.Error(t, h.HandleEvent(context.Background(), event))
	})
}
