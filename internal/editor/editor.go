package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Freeeeeet/course_scheduler/internal/model"
	"github.com/Freeeeeet/course_scheduler/internal/notify"
	"github.com/Freeeeeet/course_scheduler/internal/schedule"
	"github.com/Freeeeeet/course_scheduler/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mode состояние рабочего процесса добавления/редактирования сессии
type Mode string

const (
	ModeClosed   Mode = "closed"
	ModeDrafting Mode = "drafting" // новая сессия
	ModeEditing  Mode = "editing"  // существующая сессия
)

// Значения по умолчанию для новой сессии
const (
	defaultStartTime = "09:00"
	defaultEndTime   = "10:30"
)

var (
	ErrEditorClosed = errors.New("no session edit in progress")
	ErrValidation   = errors.New("session validation failed")
	ErrConflict     = errors.New("session conflicts with existing schedule")
)

// Store доступ редактора к хранилищу состояния
type Store interface {
	State() store.State
	Dispatch(action store.Action)
}

// recurrence настройки повторения для черновика
type recurrence struct {
	enabled bool
	pattern schedule.RecurrencePattern
	count   int
}

// Editor машина состояний рабочего процесса добавления/редактирования сессии.
// Держит рабочую копию сессии и список конфликтов, пересчитываемый целиком
// при каждом изменении поля. Хранилище мутируется только при успешном Save.
type Editor struct {
	st       Store
	notifier notify.Notifier
	dialog   notify.ConfirmDialog
	logger   *zap.Logger

	mu          sync.RWMutex
	mode        Mode
	courseID    string
	teacherID   string
	teacherName string
	working     model.Session
	conflicts   []model.Conflict
	recur       recurrence
}

// New создаёт редактор в закрытом состоянии
func New(st Store, notifier notify.Notifier, dialog notify.ConfirmDialog, logger *zap.Logger) *Editor {
	return &Editor{
		st:       st,
		notifier: notifier,
		dialog:   dialog,
		logger:   logger,
		mode:     ModeClosed,
	}
}

// Подменяется в тестах
var nowFunc = time.Now

// OpenAdd открывает черновик новой сессии для курса: свежий id,
// дата — сегодня, время 09:00–10:30, конфликты и повторение сброшены
func (e *Editor) OpenAdd(course model.Course) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = ModeDrafting
	e.courseID = course.ID
	e.teacherID = course.TeacherID
	e.teacherName = course.Teacher
	e.working = model.Session{
		ID:        uuid.NewString(),
		Date:      model.DateOf(nowFunc()),
		StartTime: defaultStartTime,
		EndTime:   defaultEndTime,
	}
	e.conflicts = nil
	e.recur = recurrence{}

	e.logger.Info("Session draft opened",
		zap.String("course_id", course.ID),
		zap.String("session_id", e.working.ID))

	e.refreshConflicts()
}

// OpenEdit открывает существующую сессию курса на редактирование.
// Поля копируются в рабочую копию, проверка конфликтов запускается сразу,
// собственный id сессии из проверки исключается.
func (e *Editor) OpenEdit(course model.Course, session model.Session) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = ModeEditing
	e.courseID = course.ID
	e.teacherID = course.TeacherID
	e.teacherName = course.Teacher
	e.working = session
	e.recur = recurrence{}

	e.logger.Info("Session opened for editing",
		zap.String("course_id", course.ID),
		zap.String("session_id", session.ID))

	e.refreshConflicts()
}

// SetDate меняет дату рабочей копии и пересчитывает конфликты
func (e *Editor) SetDate(d model.Date) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == ModeClosed {
		return
	}
	e.working.Date = d
	e.refreshConflicts()
}

// SetStartTime меняет время начала и пересчитывает конфликты
func (e *Editor) SetStartTime(t string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == ModeClosed {
		return
	}
	e.working.StartTime = t
	e.refreshConflicts()
}

// SetEndTime меняет время окончания и пересчитывает конфликты
func (e *Editor) SetEndTime(t string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == ModeClosed {
		return
	}
	e.working.EndTime = t
	e.refreshConflicts()
}

// SetRecurrence включает повторение для черновика
func (e *Editor) SetRecurrence(pattern schedule.RecurrencePattern, count int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == ModeClosed {
		return
	}
	e.recur = recurrence{enabled: true, pattern: pattern, count: count}
}

// ClearRecurrence выключает повторение
func (e *Editor) ClearRecurrence() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == ModeClosed {
		return
	}
	e.recur = recurrence{}
}

// Mode возвращает текущее состояние машины
func (e *Editor) Mode() Mode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mode
}

// Working возвращает рабочую копию сессии
func (e *Editor) Working() model.Session {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.working
}

// Conflicts возвращает конфликты последней проверки
func (e *Editor) Conflicts() []model.Conflict {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]model.Conflict(nil), e.conflicts...)
}

// Close закрывает рабочий процесс, отбрасывая рабочую копию без сохранения
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

// Save сохраняет рабочую копию в курс. Охранные условия: конец позже начала
// и отсутствие конфликтов (либо глобальное разрешение пересечений). При
// нарушении состояние не меняется, уходит только alert-уведомление с причиной.
// Для черновика с включённым повторением даты разворачиваются через
// ExpandDates: первая сессия сохраняет id черновика, остальные получают свежие.
func (e *Editor) Save(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode == ModeClosed {
		return ErrEditorClosed
	}

	if err := e.working.Validate(); err != nil {
		e.notifier.Show(ctx, notify.KindAlert, "Cannot save session: "+err.Error(), 0)
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	allowOverlap := e.st.State().Config.AllowTeacherScheduleOverlap
	if len(e.conflicts) > 0 && !allowOverlap {
		e.notifier.Show(ctx, notify.KindAlert,
			fmt.Sprintf("Cannot save session: %d scheduling conflict(s) found", len(e.conflicts)), 0)
		return fmt.Errorf("%w: %d conflict(s)", ErrConflict, len(e.conflicts))
	}

	switch {
	case e.mode == ModeDrafting && e.recur.enabled:
		dates, err := schedule.ExpandDates(e.working.Date, e.recur.pattern, e.recur.count)
		if err != nil {
			e.notifier.Show(ctx, notify.KindAlert, "Cannot save session: "+err.Error(), 0)
			return fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}

		sessions := make([]model.Session, len(dates))
		for i, d := range dates {
			s := e.working
			s.Date = d
			if i > 0 {
				s.ID = uuid.NewString()
			}
			sessions[i] = s
		}
		e.st.Dispatch(store.AddRecurringSessions{CourseID: e.courseID, Sessions: sessions})

		e.logger.Info("Recurring sessions added",
			zap.String("course_id", e.courseID),
			zap.String("pattern", string(e.recur.pattern)),
			zap.Int("count", len(sessions)))
		e.notifier.Show(ctx, notify.KindSuccess,
			fmt.Sprintf("%d sessions added successfully", len(sessions)), 0)

	case e.mode == ModeDrafting:
		e.st.Dispatch(store.AddCourseSession{CourseID: e.courseID, Session: e.working})
		e.logger.Info("Session added",
			zap.String("course_id", e.courseID),
			zap.String("session_id", e.working.ID))
		e.notifier.Show(ctx, notify.KindSuccess, "Session added successfully", 0)

	default: // ModeEditing
		e.st.Dispatch(store.UpdateCourseSession{
			CourseID:  e.courseID,
			SessionID: e.working.ID,
			Session:   e.working,
		})
		e.logger.Info("Session updated",
			zap.String("course_id", e.courseID),
			zap.String("session_id", e.working.ID))
		e.notifier.Show(ctx, notify.KindSuccess, "Session updated successfully", 0)
	}

	e.reset()
	return nil
}

// Delete удаляет редактируемую сессию после подтверждения пользователем.
// Возвращает true, если удаление состоялось.
func (e *Editor) Delete(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != ModeEditing {
		return false, ErrEditorClosed
	}

	ok, err := e.dialog.Confirm(ctx, "Delete this session? This cannot be undone.")
	if err != nil {
		return false, fmt.Errorf("confirm delete: %w", err)
	}
	if !ok {
		return false, nil
	}

	e.st.Dispatch(store.DeleteCourseSession{CourseID: e.courseID, SessionID: e.working.ID})
	e.logger.Info("Session deleted",
		zap.String("course_id", e.courseID),
		zap.String("session_id", e.working.ID))
	e.notifier.Show(ctx, notify.KindSuccess, "Session deleted", 0)

	e.reset()
	return true, nil
}

// refreshConflicts пересчитывает список конфликтов целиком.
// Вызывается под мьютексом.
func (e *Editor) refreshConflicts() {
	st := e.st.State()
	e.conflicts = schedule.DetectConflicts(
		schedule.Candidate{
			Session:     e.working,
			CourseID:    e.courseID,
			TeacherID:   e.teacherID,
			TeacherName: e.teacherName,
		},
		e.working.ID,
		st.AllCourses(),
		st.Config.AllowTeacherScheduleOverlap,
	)
}

func (e *Editor) reset() {
	e.mode = ModeClosed
	e.courseID = ""
	e.teacherID = ""
	e.teacherName = ""
	e.working = model.Session{}
	e.conflicts = nil
	e.recur = recurrence{}
}
