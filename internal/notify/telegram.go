package notify

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

// TelegramNotifier шлёт уведомления оператору в Telegram-чат
type TelegramNotifier struct {
	bot    *bot.Bot
	chatID int64
	logger *zap.Logger
}

// NewTelegramNotifier создаёт уведомитель поверх уже инициализированного бота
func NewTelegramNotifier(b *bot.Bot, chatID int64, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		bot:    b,
		chatID: chatID,
		logger: logger,
	}
}

// Show отправляет сообщение в чат. Длительность показа для Telegram смысла
// не имеет и игнорируется; ошибки отправки только логируются.
func (n *TelegramNotifier) Show(ctx context.Context, kind Kind, message string, duration time.Duration) {
	prefix := "✅ "
	if kind == KindAlert {
		prefix = "⚠️ "
	}

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   prefix + message,
	})
	if err != nil {
		n.logger.Error("Failed to send telegram notification",
			zap.String("kind", string(kind)),
			zap.Error(err))
	}
}
