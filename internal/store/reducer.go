package store

import (
	"github.com/Freeeeeet/course_scheduler/internal/model"
)

// Reduce применяет действие к снимку состояния и возвращает новый снимок.
// Чистая функция: не блокируется, не делает I/O, не меняет вход.
func Reduce(state State, action Action) State {
	switch a := action.(type) {

	case LoadPendingCourses:
		next := state
		next.Loading = true
		return next

	case LoadPendingCoursesSuccess:
		next := state
		next.PendingCourses = model.CloneCourses(a.Courses)
		next.Loading = false
		next.Err = ""
		return next

	case LoadPendingCoursesFail:
		next := state
		next.Loading = false
		next.Err = a.Err
		return next

	case LoadScheduledCourses:
		next := state
		next.Loading = true
		return next

	case LoadScheduledCoursesSuccess:
		next := state
		next.Courses = model.CloneCourses(a.Courses)
		next.Loading = false
		next.Err = ""
		return next

	case LoadScheduledCoursesFail:
		next := state
		next.Loading = false
		next.Err = a.Err
		return next

	case SubmitSchedule:
		next := state
		next.Loading = true
		next.Err = ""
		return next

	case SubmitScheduleSuccess:
		next := state
		remaining := make([]model.Course, 0, len(state.PendingCourses))
		for _, c := range state.PendingCourses {
			if c.ID != a.CourseID {
				remaining = append(remaining, c)
			}
		}
		next.PendingCourses = remaining
		next.Loading = false
		next.Err = ""
		return next

	case SubmitScheduleFail:
		next := state
		next.Loading = false
		next.Err = a.Err
		return next

	case CheckConflicts:
		next := state
		next.Loading = true
		next.Conflicts = nil
		next.Err = ""
		return next

	case CheckConflictsSuccess:
		next := state
		next.Conflicts = append([]model.Conflict(nil), a.Conflicts...)
		next.Loading = false
		next.Err = ""
		return next

	case CheckConflictsFail:
		next := state
		next.Loading = false
		next.Err = a.Err
		return next

	case AddCourseSession:
		return mapCourse(state, a.CourseID, func(c model.Course) model.Course {
			c.Sessions = append(c.Sessions, a.Session)
			return c
		})

	case AddRecurringSessions:
		return mapCourse(state, a.CourseID, func(c model.Course) model.Course {
			c.Sessions = append(c.Sessions, a.Sessions...)
			return c
		})

	case UpdateCourseSession:
		return mapCourse(state, a.CourseID, func(c model.Course) model.Course {
			for i, s := range c.Sessions {
				if s.ID == a.SessionID {
					c.Sessions[i] = a.Session
				}
			}
			return c
		})

	case DeleteCourseSession:
		return mapCourse(state, a.CourseID, func(c model.Course) model.Course {
			remaining := make([]model.Session, 0, len(c.Sessions))
			for _, s := range c.Sessions {
				if s.ID != a.SessionID {
					remaining = append(remaining, s)
				}
			}
			c.Sessions = remaining
			return c
		})

	case LoadAppConfigSuccess:
		next := state
		next.Config = a.Config
		next.ConfigLoaded = true
		next.Err = ""
		return next

	case LoadAppConfigFail:
		// Неудачная загрузка настроек не фатальна: остаёмся на значениях
		// по умолчанию, ошибку только фиксируем
		next := state
		next.Config = model.DefaultAppConfig()
		next.ConfigLoaded = true
		next.Err = a.Err
		return next

	case SaveAppConfigSuccess:
		next := state
		next.Config = a.Config
		next.ConfigLoaded = true
		next.Err = ""
		return next

	case SaveAppConfigFail:
		next := state
		next.Err = a.Err
		return next

	case ToggleOverlapSetting:
		if !state.ConfigLoaded {
			return state
		}
		next := state
		next.Config.AllowTeacherScheduleOverlap = a.Allow
		return next
	}

	return state
}

// mapCourse заменяет курс с данным id результатом fn в обоих срезах состояния.
// Курс копируется перед изменением, исходные срезы не трогаются. Членство в
// PendingCourses при этом не пересматривается: список ожидающих меняют только
// целиковое обновление от бэкенда и успешная отправка расписания.
func mapCourse(state State, courseID string, fn func(model.Course) model.Course) State {
	next := state
	next.Courses = mapCourseSlice(state.Courses, courseID, fn)
	next.PendingCourses = mapCourseSlice(state.PendingCourses, courseID, fn)
	return next
}

func mapCourseSlice(courses []model.Course, courseID string, fn func(model.Course) model.Course) []model.Course {
	if courses == nil {
		return nil
	}
	out := make([]model.Course, len(courses))
	for i, c := range courses {
		if c.ID == courseID {
			out[i] = fn(c.Clone())
		} else {
			out[i] = c
		}
	}
	return out
}
