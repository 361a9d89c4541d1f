package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/daavo03/node-tours-app/internal/notification/mocks"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/mail.v2"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func sampleBooking() (*domain.Booking, *domain.Tour, *domain.User) {
	tour := &domain.Tour{ID: "t1", Name: "The Sea_Explorer"}
	user := &domain.User{ID: "u1", Name: "Laura Wilson", Email: "laura@example.com"}
	b := &domain.Booking{ID: "b1", TourID: tour.ID, UserID: user.ID, Price: 497}
	return b, tour, user
}

func TestTelegramNotifier_SendsBooking(t *testing.T) {
	bot := mocks.NewMockBotSender(t)
	n := &TelegramNotifier{bot: bot, chatID: 42, logger: newTestLogger(t)}

	bot.EXPECT().Send(mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg, ok := c.(tgbotapi.MessageConfig)
		return ok &&
			msg.ChatID == 42 &&
			msg.ParseMode == tgbotapi.ModeMarkdown &&
			strings.Contains(msg.Text, `The Sea\_Explorer`) &&
			strings.Contains(msg.Text, "$497.00")
	})).Return(tgbotapi.Message{}, nil).Once()

	b, tour, user := sampleBooking()
	n.NotifyBookingCreated(context.Background(), b, tour, user)
}

func TestTelegramNotifier_SendErrorIsSwallowed(t *testing.T) {
	bot := mocks.NewMockBotSender(t)
	n := &TelegramNotifier{bot: bot, chatID: 42, logger: newTestLogger(t)}

	bot.EXPECT().Send(mock.Anything).Return(tgbotapi.Message{}, errors.New("network down")).Once()

	b, tour, user := sampleBooking()
	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), b, tour, user)
	})
}

func TestTelegramNotifier_Skips(t *testing.T) {
	b, tour, user := sampleBooking()

	t.Run("disabled bot", func(t *testing.T) {
		n, err := NewTelegramNotifier("", 42, newTestLogger(t))
		require.NoError(t, err)
		n.NotifyBookingCreated(context.Background(), b, tour, user)
	})

	t.Run("no chat id", func(t *testing.T) {
		bot := mocks.NewMockBotSender(t)
		n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}
		n.NotifyBookingCreated(context.Background(), b, tour, user)
	})

	t.Run("cancelled context", func(t *testing.T) {
		bot := mocks.NewMockBotSender(t)
		n := &TelegramNotifier{bot: bot, chatID: 42, logger: newTestLogger(t)}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		n.NotifyBookingCreated(ctx, b, tour, user)
	})
}

type fakeDialer struct {
	sent []*mail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*mail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func renderMessage(t *testing.T, m *mail.Message) string {
	t.Helper()
	var sb strings.Builder
	_, err := m.WriteTo(&sb)
	require.NoError(t, err)
	return sb.String()
}

func TestMailer_SendWelcome(t *testing.T) {
	d := &fakeDialer{}
	m := &Mailer{dialer: d, from: "hello@natours.io", logger: newTestLogger(t)}
	_, _, user := sampleBooking()

	err := m.SendWelcome(context.Background(), user, "http://127.0.0.1:3000/me")
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"laura@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{subjectWelcome}, msg.GetHeader("Subject"))
	assert.Contains(t, msg.GetHeader("From")[0], "hello@natours.io")

	raw := renderMessage(t, msg)
	assert.Contains(t, raw, "Hi Laura,")
	assert.Contains(t, raw, "http://127.0.0.1:3000/me")
	assert.Contains(t, raw, "text/html")
}

func TestMailer_SendPasswordReset(t *testing.T) {
	d := &fakeDialer{}
	m := &Mailer{dialer: d, from: "hello@natours.io", logger: newTestLogger(t)}
	_, _, user := sampleBooking()

	err := m.SendPasswordReset(context.Background(), user, "http://x/api/v1/users/resetPassword/abc")
	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{subjectReset}, d.sent[0].GetHeader("Subject"))
	assert.Contains(t, renderMessage(t, d.sent[0]), "resetPassword/abc")
}

func TestMailer_DialError(t *testing.T) {
	d := &fakeDialer{err: errors.New("connection refused")}
	m := &Mailer{dialer: d, from: "hello@natours.io", logger: newTestLogger(t)}
	_, _, user := sampleBooking()

	err := m.SendWelcome(context.Background(), user, "http://x/me")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMailer_NoHostOnlyLogs(t *testing.T) {
	m := NewMailer(MailerConfig{From: "hello@natours.io"}, newTestLogger(t))
	_, _, user := sampleBooking()

	assert.NoError(t, m.SendWelcome(context.Background(), user, "http://x/me"))
}

func TestMailer_CancelledContext(t *testing.T) {
	d := &fakeDialer{}
	m := &Mailer{dialer: d, logger: newTestLogger(t)}
	_, _, user := sampleBooking()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.SendWelcome(ctx, user, "http://x/me"), context.Canceled)
	assert.Empty(t, d.sent)
}
