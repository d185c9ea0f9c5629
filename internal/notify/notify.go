package notify

import (
	"context"
	"time"
)

// Kind вид уведомления
type Kind string

const (
	KindSuccess Kind = "success"
	KindAlert   Kind = "alert"
)

// DefaultDuration длительность показа уведомления, когда вызывающий её не задал
const DefaultDuration = 5 * time.Second

// Notifier приёмник уведомлений, fire-and-forget: ошибки доставки
// реализация гасит сама, вызывающий код их не видит.
type Notifier interface {
	Show(ctx context.Context, kind Kind, message string, duration time.Duration)
}

// ConfirmDialog асинхронное подтверждение пользователя.
// Требуется перед разрушительными операциями вроде удаления сессии.
type ConfirmDialog interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}
