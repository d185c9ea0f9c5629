package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/course_scheduler/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// configDocID единственный документ настроек планировщика
const configDocID = "scheduler-settings"

type ConfigRepository struct {
	pool *pgxpool.Pool
}

func NewConfigRepository(pool *pgxpool.Pool) *ConfigRepository {
	return &ConfigRepository{pool: pool}
}

// Get читает документ настроек. Возвращает (nil, nil), если документа ещё нет.
func (r *ConfigRepository) Get(ctx context.Context) (*model.AppConfig, error) {
	query := `
		SELECT allow_teacher_schedule_overlap
		FROM app_config
		WHERE id = $1
	`

	var cfg model.AppConfig
	err := r.pool.QueryRow(ctx, query, configDocID).Scan(&cfg.AllowTeacherScheduleOverlap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get app config: %w", err)
	}

	return &cfg, nil
}

// Save записывает документ настроек с merge-семантикой:
// вставка при отсутствии, обновление полей при наличии
func (r *ConfigRepository) Save(ctx context.Context, cfg model.AppConfig) error {
	query := `
		INSERT INTO app_config (id, allow_teacher_schedule_overlap, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE
		SET allow_teacher_schedule_overlap = EXCLUDED.allow_teacher_schedule_overlap,
		    updated_at = NOW()
	`

	_, err := r.pool.Exec(ctx, query, configDocID, cfg.AllowTeacherScheduleOverlap)
	if err != nil {
		return fmt.Errorf("save app config: %w", err)
	}

	return nil
}
