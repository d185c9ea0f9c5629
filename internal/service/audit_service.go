package service

import (
	"context"
	"strings"
	"time"

	"github.com/Freeeeeet/course_scheduler/internal/model"
	"github.com/Freeeeeet/course_scheduler/internal/repository"
	"github.com/Freeeeeet/course_scheduler/internal/store"
	"go.uber.org/zap"
)

// Предел длины строковых значений в details журнала
const maxDetailLength = 500

// AuditService пишет журнал аудита в базу. Ошибки записи только логируются:
// недоступный журнал не должен останавливать планировщик.
type AuditService struct {
	repo   *repository.LogRepository
	logger *zap.Logger
}

func NewAuditService(repo *repository.LogRepository, logger *zap.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// Log записывает одну запись журнала
func (s *AuditService) Log(ctx context.Context, category model.LogCategory, action string, details map[string]any) {
	entry := &model.LogEntry{
		Timestamp: time.Now(),
		Category:  category,
		Action:    action,
		Details:   sanitizeDetails(details),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.Error(err))
	}
}

// Recent возвращает последние limit записей журнала
func (s *AuditService) Recent(ctx context.Context, limit int) ([]*model.LogEntry, error) {
	return s.repo.GetRecent(ctx, limit)
}

// Effect протоколирует каждое действие планировщика, прошедшее через
// хранилище. Действия config/* пропускаются: их журналирует ConfigService
// своими записями APP_CONFIG_*.
func (s *AuditService) Effect(ctx context.Context, action store.Action, st store.State, d store.Dispatcher) {
	if strings.HasPrefix(action.Type(), "config/") {
		return
	}

	s.Log(ctx, model.LogCategoryScheduler, action.Type(), actionDetails(action))
}

// actionDetails вытаскивает из действия то, что стоит сохранить в журнале
func actionDetails(action store.Action) map[string]any {
	switch a := action.(type) {
	case store.LoadPendingCoursesSuccess:
		return map[string]any{"count": len(a.Courses)}
	case store.LoadPendingCoursesFail:
		return map[string]any{"error": a.Err}
	case store.LoadScheduledCoursesSuccess:
		return map[string]any{"count": len(a.Courses)}
	case store.LoadScheduledCoursesFail:
		return map[string]any{"error": a.Err}
	case store.SubmitSchedule:
		return map[string]any{"course_id": a.CourseID, "sessions": len(a.Sessions)}
	case store.SubmitScheduleSuccess:
		return map[string]any{"course_id": a.CourseID}
	case store.SubmitScheduleFail:
		return map[string]any{"error": a.Err}
	case store.CheckConflictsSuccess:
		return map[string]any{"conflicts": len(a.Conflicts)}
	case store.CheckConflictsFail:
		return map[string]any{"error": a.Err}
	case store.AddCourseSession:
		return map[string]any{"course_id": a.CourseID, "session_id": a.Session.ID}
	case store.AddRecurringSessions:
		return map[string]any{"course_id": a.CourseID, "sessions": len(a.Sessions)}
	case store.UpdateCourseSession:
		return map[string]any{"course_id": a.CourseID, "session_id": a.SessionID}
	case store.DeleteCourseSession:
		return map[string]any{"course_id": a.CourseID, "session_id": a.SessionID}
	case store.ToggleOverlapSetting:
		return map[string]any{"allow": a.Allow}
	case store.SaveAppConfigFail:
		return map[string]any{"error": a.Err}
	case store.LoadAppConfigFail:
		return map[string]any{"error": a.Err}
	}
	return nil
}

// sanitizeDetails обрезает чрезмерно длинные строковые значения,
// чтобы журнал не разрастался от сырых тел ответов
func sanitizeDetails(details map[string]any) map[string]any {
	if details == nil {
		return nil
	}

	out := make(map[string]any, len(details))
	for k, v := range details {
		if s, ok := v.(string); ok && len(s) > maxDetailLength {
			out[k] = s[:maxDetailLength] + "... [truncated]"
			continue
		}
		out[k] = v
	}
	return out
}
