package model

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date представляет календарный день без времени суток.
// Неизменяемое значение: все арифметические методы возвращают новую дату,
// переполнение месяца (31 января + 1 месяц) проходит как есть через time.AddDate.
type Date struct {
	t time.Time
}

// NewDate создаёт дату из года, месяца и дня
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf обрезает время суток до полуночи
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate разбирает дату в формате "2006-01-02".
// Бэкенд иногда присылает полный ISO-8601 timestamp, поэтому принимаем и RFC3339,
// отбрасывая время суток.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// AddDays возвращает дату через n дней
func (d Date) AddDays(n int) Date {
	return DateOf(d.t.AddDate(0, 0, n))
}

// AddMonths возвращает дату через n месяцев (с календарным переносом)
func (d Date) AddMonths(n int) Date {
	return DateOf(d.t.AddDate(0, n, 0))
}

// Equal сравнивает два календарных дня
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Before сообщает, наступает ли день d раньше other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Year возвращает год
func (d Date) Year() int { return d.t.Year() }

// Month возвращает месяц
func (d Date) Month() time.Month { return d.t.Month() }

// Day возвращает день месяца
func (d Date) Day() int { return d.t.Day() }

// Weekday возвращает день недели
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// Time возвращает полночь этого дня в UTC
func (d Date) Time() time.Time { return d.t }

// IsZero сообщает, является ли дата нулевым значением
func (d Date) IsZero() bool { return d.t.IsZero() }

// String возвращает дату в формате "2006-01-02"
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// MarshalJSON сериализует дату как "2006-01-02"
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON разбирает "2006-01-02" или полный RFC3339 timestamp
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
