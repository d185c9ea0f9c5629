package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/course_scheduler/internal/model"
	"github.com/Freeeeeet/course_scheduler/internal/render"
	"github.com/Freeeeeet/course_scheduler/internal/schedule"
)

func main() {
	now := time.Now()
	ref := model.DateOf(now)

	grid := schedule.BuildMonthGrid(ref)

	// Тестовые сессии: пара занятий на этой неделе
	today := model.DateOf(now)
	sessions := map[string][]string{
		today.String():            {"09:00 Algebra", "14:00 Physics"},
		today.AddDays(2).String(): {"10:30 Chemistry"},
		today.AddDays(7).String(): {"09:00 Algebra"},
	}

	title := fmt.Sprintf("%s %d", ref.Month().String(), ref.Year())

	imageData, err := render.GenerateMonthImage(grid, sessions, title)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	filename := "month_schedule.png"
	if err := os.WriteFile(filename, imageData, 0644); err != nil {
		fmt.Printf("Ошибка записи файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Изображение сохранено: %s (%d байт)\n", filename, len(imageData))
}
