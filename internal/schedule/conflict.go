package schedule

import (
	"github.com/Freeeeeet/course_scheduler/internal/model"
)

// Candidate сессия-кандидат вместе с идентичностью преподавателя её курса
type Candidate struct {
	Session     model.Session
	CourseID    string
	TeacherID   string
	TeacherName string
}

// DetectConflicts сравнивает кандидата со всеми сессиями всех курсов.
// Конфликтом считается сессия того же календарного дня с пересекающимся
// окном времени (полуоткрытые интервалы в минутах с полуночи), принадлежащая
// тому же преподавателю. Сессия с id, равным excludeID, пропускается —
// редактируемая сессия не конфликтует сама с собой. При allowOverlap=true
// конфликты не возбуждаются вовсе.
//
// Результат идёт в порядке обхода коллекции курсов, входные данные не меняются.
func DetectConflicts(cand Candidate, excludeID string, courses []model.Course, allowOverlap bool) []model.Conflict {
	if allowOverlap {
		return nil
	}

	candStart, err := model.ParseClock(cand.Session.StartTime)
	if err != nil {
		return nil
	}
	candEnd, err := model.ParseClock(cand.Session.EndTime)
	if err != nil {
		return nil
	}
	candDay := cand.Session.Date

	var conflicts []model.Conflict
	for _, course := range courses {
		for _, existing := range course.Sessions {
			if existing.ID != "" && existing.ID == excludeID {
				continue
			}
			if !existing.Date.Equal(candDay) {
				continue
			}

			exStart, err := model.ParseClock(existing.StartTime)
			if err != nil {
				continue
			}
			exEnd, err := model.ParseClock(existing.EndTime)
			if err != nil {
				continue
			}

			// Пересечение полуоткрытых интервалов
			if candStart >= exEnd || exStart >= candEnd {
				continue
			}

			if !sameTeacher(cand.TeacherID, cand.TeacherName, course.TeacherID, course.Teacher) {
				continue
			}

			conflicts = append(conflicts, model.Conflict{
				SessionID:  existing.ID,
				Date:       existing.Date,
				StartTime:  existing.StartTime,
				EndTime:    existing.EndTime,
				CourseName: course.Name,
				TeacherID:  course.TeacherID,
			})
		}
	}
	return conflicts
}

// sameTeacher сравнивает идентичность преподавателей: по teacherId, когда он есть
// у обеих сторон, иначе по точному совпадению отображаемого имени.
// Сравнение по имени может давать ложные срабатывания для тёзок —
// поведение сохранено как есть.
func sameTeacher(candID, candName, courseID, courseName string) bool {
	if candID != "" && courseID != "" {
		return candID == courseID
	}
	return candName == courseName
}
