package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LogNotifier выводит уведомления в лог. Используется, когда Telegram
// не настроен, и в тестовых окружениях.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Show пишет уведомление в лог
func (n *LogNotifier) Show(ctx context.Context, kind Kind, message string, duration time.Duration) {
	if kind == KindAlert {
		n.logger.Warn("Notification", zap.String("kind", string(kind)), zap.String("message", message))
		return
	}
	n.logger.Info("Notification", zap.String("kind", string(kind)), zap.String("message", message))
}

// AutoConfirm диалог подтверждения для безголовых запусков:
// отвечает заранее заданным значением
type AutoConfirm struct {
	Answer bool
}

func (a AutoConfirm) Confirm(ctx context.Context, prompt string) (bool, error) {
	return a.Answer, nil
}
