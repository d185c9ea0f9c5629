package service

import (
	"context"

	"github.com/Freeeeeet/course_scheduler/internal/model"
	"github.com/Freeeeeet/course_scheduler/internal/repository"
	"github.com/Freeeeeet/course_scheduler/internal/store"
	"go.uber.org/zap"
)

// ConfigService загрузка и сохранение настроек планировщика.
// Документ настроек читается один раз при старте; любая ошибка чтения
// не фатальна и сводится к конфигурации по умолчанию. Каждое изменение
// пишется обратно в хранилище с merge-семантикой и фиксируется в журнале.
type ConfigService struct {
	repo   *repository.ConfigRepository
	audit  *AuditService
	logger *zap.Logger
}

func NewConfigService(repo *repository.ConfigRepository, audit *AuditService, logger *zap.Logger) *ConfigService {
	return &ConfigService{
		repo:   repo,
		audit:  audit,
		logger: logger,
	}
}

// Effect обработчик действий настроек
func (s *ConfigService) Effect(ctx context.Context, action store.Action, st store.State, d store.Dispatcher) {
	switch a := action.(type) {

	case store.LoadAppConfig:
		cfg, err := s.repo.Get(ctx)
		if err != nil {
			// Откатываемся на значения по умолчанию, старт не прерываем
			s.logger.Error("Failed to load app config, using defaults", zap.Error(err))
			s.audit.Log(ctx, model.LogCategorySystem, "APP_CONFIG_LOAD_ERROR",
				map[string]any{"error": err.Error()})
			d.Dispatch(store.LoadAppConfigFail{Err: err.Error()})
			return
		}

		if cfg == nil {
			// Документа ещё нет — создаём его со значениями по умолчанию
			defaults := model.DefaultAppConfig()
			s.audit.Log(ctx, model.LogCategorySystem, "APP_DEFAULT_CONFIG_CREATED", nil)
			if err := s.repo.Save(ctx, defaults); err != nil {
				s.logger.Error("Failed to persist default app config", zap.Error(err))
			}
			d.Dispatch(store.LoadAppConfigSuccess{Config: defaults})
			return
		}

		s.logger.Info("App config loaded",
			zap.Bool("allow_overlap", cfg.AllowTeacherScheduleOverlap))
		s.audit.Log(ctx, model.LogCategorySystem, "APP_CONFIG_LOADED", nil)
		d.Dispatch(store.LoadAppConfigSuccess{Config: *cfg})

	case store.ToggleOverlapSetting:
		// Редьюсер уже применил переключение к снимку; кроме случая,
		// когда конфигурация ещё не загружена — тогда ничего не пишем
		if !st.ConfigLoaded {
			return
		}
		d.Dispatch(store.SaveAppConfig{Config: st.Config})

	case store.SaveAppConfig:
		s.audit.Log(ctx, model.LogCategorySystem, "APP_CONFIG_SAVING",
			map[string]any{"allow_overlap": a.Config.AllowTeacherScheduleOverlap})

		if err := s.repo.Save(ctx, a.Config); err != nil {
			s.logger.Error("Failed to save app config", zap.Error(err))
			s.audit.Log(ctx, model.LogCategorySystem, "APP_CONFIG_SAVE_ERROR",
				map[string]any{"error": err.Error()})
			d.Dispatch(store.SaveAppConfigFail{Err: err.Error()})
			return
		}

		s.audit.Log(ctx, model.LogCategorySystem, "APP_CONFIG_SAVED",
			map[string]any{"allow_overlap": a.Config.AllowTeacherScheduleOverlap})
		d.Dispatch(store.SaveAppConfigSuccess{Config: a.Config})
	}
}
