package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"ceremonia/internal/domain"
)

// TelegramNotifier posts booking activity to the ops chat. Participants are
// reached over WhatsApp out of band; this channel is for the team running
// the ceremonies.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCommitted(ctx context.Context, b *domain.PersistedBooking) {
	text := fmt.Sprintf(
		"*New booking*\n\nCeremony: %s\nDate: %s %s\nReference: `%s`\nParticipants: %d\nDeposit due: %.0f %s",
		b.Event.Name, b.Event.Date, b.Event.Time, b.BookingReference,
		b.Pricing.TotalParticipants, b.Pricing.DepositAmount, b.Event.Currency,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifySyncConfirmed(ctx context.Context, b *domain.PersistedBooking) {
	text := fmt.Sprintf(
		"*Booking synced*\n\nReference: `%s`\nRemote id: `%s`",
		b.BookingReference, b.RemoteID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifySyncDeferred(ctx context.Context, b *domain.PersistedBooking) {
	text := fmt.Sprintf(
		"*Booking saved locally, sync deferred*\n\nReference: `%s`\nThe remote write will be replayed once a session is available.",
		b.BookingReference,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
