package model

// CalendarDay представляет одну ячейку месячной сетки календаря.
// Производное значение, пересчитывается при каждом построении сетки.
type CalendarDay struct {
	Date           Date `json:"date"`
	IsCurrentMonth bool `json:"isCurrentMonth"`
	IsToday        bool `json:"isToday"`
}
