package schedule

import (
	"testing"
	"time"

	"github.com/Freeeeeet/course_scheduler/internal/model"
)

func TestBuildMonthGrid(t *testing.T) {
	tests := []struct {
		name       string
		ref        model.Date
		wantInMonth int
	}{
		{name: "june 2024", ref: model.NewDate(2024, time.June, 15), wantInMonth: 30},
		{name: "february leap 2024", ref: model.NewDate(2024, time.February, 1), wantInMonth: 29},
		{name: "february 2023", ref: model.NewDate(2023, time.February, 28), wantInMonth: 28},
		{name: "december 2025", ref: model.NewDate(2025, time.December, 31), wantInMonth: 31},
		{name: "month starting on sunday", ref: model.NewDate(2024, time.September, 1), wantInMonth: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildMonthGrid(tt.ref)

			if len(grid) != 42 {
				t.Fatalf("grid size = %d, want 42", len(grid))
			}
			if got := grid[0].Date.Weekday(); got != time.Sunday {
				t.Errorf("first day weekday = %v, want Sunday", got)
			}

			inMonth := 0
			for i, day := range grid {
				if day.IsCurrentMonth {
					inMonth++
				}
				// Дни идут подряд без пропусков
				if i > 0 && !day.Date.Equal(grid[i-1].Date.AddDays(1)) {
					t.Errorf("day %d is %s, not consecutive after %s", i, day.Date, grid[i-1].Date)
				}
			}
			if inMonth != tt.wantInMonth {
				t.Errorf("current month days = %d, want %d", inMonth, tt.wantInMonth)
			}
		})
	}
}

func TestBuildMonthGrid_today(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2024, time.June, 15, 13, 45, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	grid := BuildMonthGrid(model.NewDate(2024, time.June, 1))

	var todays []model.Date
	for _, day := range grid {
		if day.IsToday {
			todays = append(todays, day.Date)
		}
	}

	if len(todays) != 1 {
		t.Fatalf("IsToday count = %d, want 1", len(todays))
	}
	if want := model.NewDate(2024, time.June, 15); !todays[0].Equal(want) {
		t.Errorf("IsToday on %s, want %s", todays[0], want)
	}
}

func TestBuildMonthGrid_todayOutsideMonth(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	grid := BuildMonthGrid(model.NewDate(2024, time.June, 1))
	for _, day := range grid {
		if day.IsToday {
			t.Fatalf("unexpected IsToday on %s", day.Date)
		}
	}
}
