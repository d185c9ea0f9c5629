package schedule

import (
	"errors"
	"fmt"

	"github.com/Freeeeeet/course_scheduler/internal/model"
)

// RecurrencePattern правило повторения сессий
type RecurrencePattern string

const (
	RecurrenceWeekly   RecurrencePattern = "weekly"
	RecurrenceBiweekly RecurrencePattern = "biweekly"
	RecurrenceMonthly  RecurrencePattern = "monthly"
)

var ErrBadRecurrenceCount = errors.New("recurrence count must be at least 1")

// ExpandDates разворачивает правило повторения в список из count конкретных дат.
// Элемент 0 — start без изменений. Каждый следующий элемент считается смещением
// от исходной даты, а не от предыдущего элемента: weekly → +7i дней,
// biweekly → +14i дней, monthly → +i месяцев. Для monthly переполнение месяца
// (31 января + 1 месяц) не корректируется — перенос остаётся как есть.
func ExpandDates(start model.Date, pattern RecurrencePattern, count int) ([]model.Date, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadRecurrenceCount, count)
	}

	dates := make([]model.Date, 0, count)
	for i := 0; i < count; i++ {
		switch pattern {
		case RecurrenceWeekly:
			dates = append(dates, start.AddDays(7*i))
		case RecurrenceBiweekly:
			dates = append(dates, start.AddDays(14*i))
		case RecurrenceMonthly:
			dates = append(dates, start.AddMonths(i))
		default:
			return nil, fmt.Errorf("unknown recurrence pattern %q", pattern)
		}
	}
	return dates, nil
}
