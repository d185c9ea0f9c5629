package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/course_scheduler/internal/apiclient"
	"github.com/Freeeeeet/course_scheduler/internal/model"
	"github.com/Freeeeeet/course_scheduler/internal/notify"
	"github.com/Freeeeeet/course_scheduler/internal/store"
	"go.uber.org/zap"
)

var ErrScheduleInvalid = errors.New("schedule validation failed")

// SchedulerService сетевые эффекты планировщика: выборка ожидающих курсов,
// отправка расписаний, удалённая проверка конфликтов. Каждый завершившийся
// запрос возвращается в хранилище follow-up действием; автоматических
// повторов нет — следующий тик опроса единственный неявный путь повтора.
type SchedulerService struct {
	api        *apiclient.Client
	notifier   notify.Notifier
	dispatcher store.Dispatcher
	logger     *zap.Logger
}

func NewSchedulerService(api *apiclient.Client, notifier notify.Notifier, dispatcher store.Dispatcher, logger *zap.Logger) *SchedulerService {
	return &SchedulerService{
		api:        api,
		notifier:   notifier,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// SubmitCourseSchedule точка входа отправки расписания курса.
// Предусловия проверяются на клиенте, до какого-либо сетевого вызова:
// список сессий непуст и каждая сессия валидна. При нарушении уходит
// alert-уведомление и типизированная ошибка, сеть не трогается.
func (s *SchedulerService) SubmitCourseSchedule(ctx context.Context, courseID string, sessions []model.Session) error {
	if courseID == "" {
		s.notifier.Show(ctx, notify.KindAlert, "Cannot submit schedule: no course selected", 0)
		return fmt.Errorf("%w: empty course id", ErrScheduleInvalid)
	}
	if len(sessions) == 0 {
		s.notifier.Show(ctx, notify.KindAlert, "Cannot submit schedule: no sessions added", 0)
		return fmt.Errorf("%w: empty session list", ErrScheduleInvalid)
	}
	for _, session := range sessions {
		if err := session.Validate(); err != nil {
			s.notifier.Show(ctx, notify.KindAlert, "Cannot submit schedule: "+err.Error(), 0)
			return fmt.Errorf("%w: session %s: %s", ErrScheduleInvalid, session.ID, err.Error())
		}
	}

	s.logger.Info("Submitting course schedule",
		zap.String("course_id", courseID),
		zap.Int("sessions", len(sessions)))

	s.dispatcher.Dispatch(store.SubmitSchedule{CourseID: courseID, Sessions: sessions})
	return nil
}

// Effect обработчик сетевых действий. Регистрируется в хранилище;
// выполняется вне цикла редьюсера.
func (s *SchedulerService) Effect(ctx context.Context, action store.Action, st store.State, d store.Dispatcher) {
	switch a := action.(type) {

	case store.LoadPendingCourses:
		courses, err := s.api.GetPendingCourses(ctx)
		if err != nil {
			s.logger.Error("Failed to load pending courses", zap.Error(err))
			s.notifier.Show(ctx, notify.KindAlert, "Failed to load pending courses", 0)
			d.Dispatch(store.LoadPendingCoursesFail{Err: err.Error()})
			return
		}
		d.Dispatch(store.LoadPendingCoursesSuccess{Courses: courses})

	case store.LoadScheduledCourses:
		courses, err := s.api.GetScheduledCourses(ctx)
		if err != nil {
			s.logger.Error("Failed to load scheduled courses", zap.Error(err))
			d.Dispatch(store.LoadScheduledCoursesFail{Err: err.Error()})
			return
		}
		d.Dispatch(store.LoadScheduledCoursesSuccess{Courses: courses})

	case store.SubmitSchedule:
		err := s.api.SubmitSchedule(ctx, a.CourseID, a.Sessions)
		if err != nil {
			s.logger.Error("Failed to submit schedule",
				zap.String("course_id", a.CourseID),
				zap.Error(err))
			s.notifier.Show(ctx, notify.KindAlert, "Failed to save schedule: "+err.Error(), 0)
			d.Dispatch(store.SubmitScheduleFail{Err: err.Error()})
			return
		}
		s.logger.Info("Schedule submitted", zap.String("course_id", a.CourseID))
		s.notifier.Show(ctx, notify.KindSuccess, "Course schedule saved successfully", 0)
		d.Dispatch(store.SubmitScheduleSuccess{CourseID: a.CourseID})

	case store.CheckConflicts:
		conflicts, err := s.api.CheckConflicts(ctx, a.Sessions)
		if err != nil {
			s.logger.Error("Remote conflict check failed", zap.Error(err))
			d.Dispatch(store.CheckConflictsFail{Err: err.Error()})
			return
		}
		d.Dispatch(store.CheckConflictsSuccess{Conflicts: conflicts})
	}
}
