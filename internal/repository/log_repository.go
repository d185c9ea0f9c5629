package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Freeeeeet/course_scheduler/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LogRepository struct {
	pool *pgxpool.Pool
}

func NewLogRepository(pool *pgxpool.Pool) *LogRepository {
	return &LogRepository{pool: pool}
}

// Insert записывает одну запись журнала аудита
func (r *LogRepository) Insert(ctx context.Context, entry *model.LogEntry) error {
	query := `
		INSERT INTO scheduler_logs (ts, user_id, user_role, category, action, details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var details []byte
	if entry.Details != nil {
		raw, err := json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("encode log details: %w", err)
		}
		details = raw
	}

	err := r.pool.QueryRow(
		ctx, query,
		entry.Timestamp,
		entry.UserID,
		entry.UserRole,
		entry.Category,
		entry.Action,
		details,
	).Scan(&entry.ID)

	if err != nil {
		return fmt.Errorf("insert log entry: %w", err)
	}

	return nil
}

// GetRecent возвращает последние limit записей журнала, новые первыми
func (r *LogRepository) GetRecent(ctx context.Context, limit int) ([]*model.LogEntry, error) {
	query := `
		SELECT id, ts, user_id, user_role, category, action, details
		FROM scheduler_logs
		ORDER BY ts DESC, id DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("get recent logs: %w", err)
	}
	defer rows.Close()

	var entries []*model.LogEntry
	for rows.Next() {
		var entry model.LogEntry
		var details []byte

		err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.UserID,
			&entry.UserRole,
			&entry.Category,
			&entry.Action,
			&details,
		)
		if err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}

		if len(details) > 0 {
			if err := json.Unmarshal(details, &entry.Details); err != nil {
				return nil, fmt.Errorf("decode log details: %w", err)
			}
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate logs: %w", err)
	}

	return entries, nil
}
