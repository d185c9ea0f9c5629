package schedule

import (
	"time"

	"github.com/Freeeeeet/course_scheduler/internal/model"
)

// Размер месячной сетки: всегда 6 полных недель
const (
	gridWeeks = 6
	gridDays  = gridWeeks * 7
)

// Подменяется в тестах
var nowFunc = time.Now

// BuildMonthGrid строит месячную сетку из 42 дней для опорного месяца.
// Сетка начинается с воскресенья на/перед первым числом месяца и идёт
// день за днём 6 полных недель, даже если месяцу хватило бы пяти.
func BuildMonthGrid(ref model.Date) []model.CalendarDay {
	first := model.NewDate(ref.Year(), ref.Month(), 1)

	// Откатываемся к воскресенью
	start := first.AddDays(-int(first.Weekday()))

	today := model.DateOf(nowFunc())

	grid := make([]model.CalendarDay, 0, gridDays)
	for i := 0; i < gridDays; i++ {
		day := start.AddDays(i)
		grid = append(grid, model.CalendarDay{
			Date:           day,
			IsCurrentMonth: day.Month() == ref.Month() && day.Year() == ref.Year(),
			IsToday:        day.Equal(today),
		})
	}
	return grid
}
