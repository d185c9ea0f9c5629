package model

import "time"

// LogCategory категория записи журнала аудита
type LogCategory string

const (
	LogCategoryAuth       LogCategory = "AUTH"
	LogCategoryNavigation LogCategory = "NAVIGATION"
	LogCategoryScheduler  LogCategory = "SCHEDULER"
	LogCategorySystem     LogCategory = "SYSTEM"
)

// LogEntry запись журнала аудита. Details хранятся как произвольный JSON-объект.
type LogEntry struct {
	ID        int64          `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	UserID    string         `json:"user_id,omitempty"`
	UserRole  string         `json:"user_role,omitempty"`
	Category  LogCategory    `json:"category"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
}
