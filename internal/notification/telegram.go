package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking events to the back-office admin chat.
// With an empty token or chat id it degrades to a no-op.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, adminChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, adminChatID: adminChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, booking *domain.Booking, car *domain.Car) {
	text := fmt.Sprintf(
		"*New booking request*\n\nCar: %s (%s)\nRequested by: %s\nWindow: %s\nAwaiting approval.",
		car.Name, car.Plate, requesterLabel(booking), windowLabel(booking),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, booking *domain.Booking, car *domain.Car) {
	text := fmt.Sprintf(
		"*Booking approved*\n\nCar: %s (%s)\nRequested by: %s\nWindow: %s",
		car.Name, car.Plate, requesterLabel(booking), windowLabel(booking),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingClosed(ctx context.Context, booking *domain.Booking, car *domain.Car) {
	text := fmt.Sprintf(
		"*Car returned*\n\nCar: %s (%s)\nRequested by: %s\nWindow: %s",
		car.Name, car.Plate, requesterLabel(booking), windowLabel(booking),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingOverdue(ctx context.Context, booking *domain.Booking, car *domain.Car) {
	text := fmt.Sprintf(
		"*Car still out*\n\nCar: %s (%s)\nRequested by: %s\nOut since: %s (no return time set)",
		car.Name, car.Plate, requesterLabel(booking),
		booking.StartAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func requesterLabel(b *domain.Booking) string {
	if b.GuestName != nil {
		return *b.GuestName + " (guest)"
	}
	if b.AccountID != nil {
		return *b.AccountID
	}
	return "unknown"
}

func windowLabel(b *domain.Booking) string {
	const layout = "02.01.2006 15:04"
	if b.EndAt == nil {
		return b.StartAt.Format(layout) + " — open"
	}
	return b.StartAt.Format(layout) + " — " + b.EndAt.Format(layout)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.adminChatID == 0 {
		n.logger.Debug("notification skipped (no admin chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.adminChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.adminChatID),
			logger.String("error", err.Error()),
		)
	}
}
