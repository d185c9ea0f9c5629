package store

import (
	"github.com/Freeeeeet/course_scheduler/internal/model"
)

// Action дискретное намерение, применяемое редьюсером к состоянию.
// Type используется для журнала аудита и логов.
type Action interface {
	Type() string
}

// --- Загрузка ожидающих курсов ---

type LoadPendingCourses struct{}

type LoadPendingCoursesSuccess struct {
	Courses []model.Course
}

type LoadPendingCoursesFail struct {
	Err string
}

// --- Загрузка полной коллекции запланированных курсов (корпус для проверки конфликтов) ---

type LoadScheduledCourses struct{}

type LoadScheduledCoursesSuccess struct {
	Courses []model.Course
}

type LoadScheduledCoursesFail struct {
	Err string
}

// --- Отправка расписания курса ---

type SubmitSchedule struct {
	CourseID string
	Sessions []model.Session
}

type SubmitScheduleSuccess struct {
	CourseID string
}

type SubmitScheduleFail struct {
	Err string
}

// --- Удалённая проверка конфликтов ---

type CheckConflicts struct {
	Sessions []model.Session
}

type CheckConflictsSuccess struct {
	Conflicts []model.Conflict
}

type CheckConflictsFail struct {
	Err string
}

// --- Локальные правки сессий курса ---

type AddCourseSession struct {
	CourseID string
	Session  model.Session
}

type AddRecurringSessions struct {
	CourseID string
	Sessions []model.Session
}

type UpdateCourseSession struct {
	CourseID  string
	SessionID string
	Session   model.Session
}

type DeleteCourseSession struct {
	CourseID  string
	SessionID string
}

// --- Настройки планировщика ---

type LoadAppConfig struct{}

type LoadAppConfigSuccess struct {
	Config model.AppConfig
}

type LoadAppConfigFail struct {
	Err string
}

type SaveAppConfig struct {
	Config model.AppConfig
}

type SaveAppConfigSuccess struct {
	Config model.AppConfig
}

type SaveAppConfigFail struct {
	Err string
}

type ToggleOverlapSetting struct {
	Allow bool
}

func (LoadPendingCourses) Type() string          { return "scheduler/load_pending_courses" }
func (LoadPendingCoursesSuccess) Type() string   { return "scheduler/load_pending_courses_success" }
func (LoadPendingCoursesFail) Type() string      { return "scheduler/load_pending_courses_fail" }
func (LoadScheduledCourses) Type() string        { return "scheduler/load_scheduled_courses" }
func (LoadScheduledCoursesSuccess) Type() string { return "scheduler/load_scheduled_courses_success" }
func (LoadScheduledCoursesFail) Type() string    { return "scheduler/load_scheduled_courses_fail" }
func (SubmitSchedule) Type() string              { return "scheduler/submit_schedule" }
func (SubmitScheduleSuccess) Type() string       { return "scheduler/submit_schedule_success" }
func (SubmitScheduleFail) Type() string          { return "scheduler/submit_schedule_fail" }
func (CheckConflicts) Type() string              { return "scheduler/check_conflicts" }
func (CheckConflictsSuccess) Type() string       { return "scheduler/check_conflicts_success" }
func (CheckConflictsFail) Type() string          { return "scheduler/check_conflicts_fail" }
func (AddCourseSession) Type() string            { return "scheduler/add_course_session" }
func (AddRecurringSessions) Type() string        { return "scheduler/add_recurring_sessions" }
func (UpdateCourseSession) Type() string         { return "scheduler/update_course_session" }
func (DeleteCourseSession) Type() string         { return "scheduler/delete_course_session" }
func (LoadAppConfig) Type() string               { return "config/load" }
func (LoadAppConfigSuccess) Type() string        { return "config/load_success" }
func (LoadAppConfigFail) Type() string           { return "config/load_fail" }
func (SaveAppConfig) Type() string               { return "config/save" }
func (SaveAppConfigSuccess) Type() string        { return "config/save_success" }
func (SaveAppConfigFail) Type() string           { return "config/save_fail" }
func (ToggleOverlapSetting) Type() string        { return "config/toggle_overlap" }
