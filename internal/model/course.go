package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Ошибки валидации сессии
var (
	ErrSessionNoDate   = errors.New("session has no date")
	ErrSessionBadTime  = errors.New("session time is not in HH:MM format")
	ErrSessionTimeSpan = errors.New("session end time must be after start time")
)

// Session представляет одно занятие курса: календарный день плюс окно времени.
// Время суток в Date не учитывается, start/end — часы-минуты на 24-часовой шкале.
type Session struct {
	ID        string `json:"id"`
	Date      Date   `json:"date"`
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}

// Course представляет курс с расписанием. Владелец данных — бэкенд,
// локально хранится только снимок, заменяемый целиком при каждой загрузке.
type Course struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Teacher   string    `json:"teacher"`
	TeacherID string    `json:"teacherId,omitempty"`
	Sessions  []Session `json:"sessions"`
}

// ParseClock переводит "HH:MM" в минуты с полуночи
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrSessionBadTime, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSessionBadTime, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSessionBadTime, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrSessionBadTime, s)
	}
	return hour*60 + minute, nil
}

// Validate проверяет сессию: дата задана, времена разбираются, конец позже начала
func (s Session) Validate() error {
	if s.Date.IsZero() {
		return ErrSessionNoDate
	}
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return ErrSessionTimeSpan
	}
	return nil
}

// Pending сообщает, ожидает ли курс планирования (нет ни одной сессии)
func (c Course) Pending() bool {
	return len(c.Sessions) == 0
}

// Clone возвращает глубокую копию курса
func (c Course) Clone() Course {
	cp := c
	if c.Sessions != nil {
		cp.Sessions = make([]Session, len(c.Sessions))
		copy(cp.Sessions, c.Sessions)
	}
	return cp
}

// CloneCourses возвращает глубокую копию списка курсов
func CloneCourses(courses []Course) []Course {
	if courses == nil {
		return nil
	}
	out := make([]Course, len(courses))
	for i, c := range courses {
		out[i] = c.Clone()
	}
	return out
}
