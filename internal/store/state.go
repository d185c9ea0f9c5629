package store

import (
	"github.com/Freeeeeet/course_scheduler/internal/model"
)

// State неизменяемый снимок состояния планировщика.
// Редьюсер никогда не меняет снимок на месте — срезы заменяются целиком,
// поэтому читатели могут держать снимок сколько угодно.
type State struct {
	// Курсы без единой сессии, ждущие планирования. Обновляются только
	// целиком: либо очередным опросом бэкенда, либо удалением курса
	// после успешной отправки расписания.
	PendingCourses []model.Course

	// Коллекция запланированных курсов, пришедшая с бэкенда. Корпус для
	// проверки конфликтов — её объединение с PendingCourses, см. AllCourses
	Courses []model.Course

	// Результат последней удалённой проверки конфликтов
	Conflicts []model.Conflict

	Config       model.AppConfig
	ConfigLoaded bool

	Loading bool
	Err     string
}

// NewState возвращает начальное состояние с конфигурацией по умолчанию
func NewState() State {
	return State{Config: model.DefaultAppConfig()}
}

// AllCourses возвращает объединение запланированных и ожидающих курсов —
// полный корпус для проверки конфликтов. Сессии, добавленные ожидающему курсу
// локально, до отправки расписания существуют только в PendingCourses,
// поэтому проверять кандидата по одному Courses недостаточно.
func (s State) AllCourses() []model.Course {
	if len(s.PendingCourses) == 0 {
		return s.Courses
	}
	all := make([]model.Course, 0, len(s.Courses)+len(s.PendingCourses))
	all = append(all, s.Courses...)
	all = append(all, s.PendingCourses...)
	return all
}

// FindCourse ищет курс по id сначала среди запланированных, потом среди ожидающих
func (s State) FindCourse(id string) (model.Course, bool) {
	for _, c := range s.Courses {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	for _, c := range s.PendingCourses {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return model.Course{}, false
}
