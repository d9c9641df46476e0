package channel

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type fakeMailSender struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeMailSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	f.sent = append(f.sent, messages...)
	return f.err
}

func newTestEmail(sender *fakeMailSender) *Email {
	return &Email{
		from:   "reminders@example.com",
		sender: func() (mailSender, error) { return sender, nil },
	}
}

func TestEmail_Send(t *testing.T) {
	t.Run("Should send one message to the configured address", func(t *testing.T) {
		sender := &fakeMailSender{}
		email := newTestEmail(sender)

		err := email.Send(context.Background(), map[string]any{"address": "me@example.com"}, testMessage)
		require.NoError(t, err)
		require.Len(t, sender.sent, 1)

		rcpts, err := sender.sent[0].GetRecipients()
		require.NoError(t, err)
		assert.Equal(t, []string{"me@example.com"}, rcpts)
		assert.Equal(t, []string{"Outfit reminder"}, sender.sent[0].GetGenHeader(mail.HeaderSubject))
	})

	t.Run("Should treat connection failures as transient", func(t *testing.T) {
		sender := &fakeMailSender{err: errors.New("dial tcp: connection refused")}
		email := newTestEmail(sender)

		err := email.Send(context.Background(), map[string]any{"address": "me@example.com"}, testMessage)

		var de *domain.DeliveryError
		require.ErrorAs(t, err, &de)
		assert.False(t, domain.IsTerminal(err))
	})

	t.Run("Should fail terminally without an smtp host", func(t *testing.T) {
		email := NewEmail(SMTPOptions{From: "reminders@example.com"})

		err := email.Send(context.Background(), map[string]any{"address": "me@example.com"}, testMessage)
		assert.True(t, domain.IsTerminal(err))
	})

	t.Run("Should not send with an invalid address", func(t *testing.T) {
		sender := &fakeMailSender{}
		email := newTestEmail(sender)

		err := email.Send(context.Background(), map[string]any{"address": "nope"}, testMessage)
		assert.True(t, domain.IsValidation(err))
		assert.Empty(t, sender.sent)
	})
}
