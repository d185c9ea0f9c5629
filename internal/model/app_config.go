package model

// AppConfig глобальные настройки планировщика.
// Загружается один раз при старте, меняется явным переключателем
// и записывается обратно во внешнее хранилище при каждом изменении.
type AppConfig struct {
	AllowTeacherScheduleOverlap bool `json:"allowTeacherScheduleOverlap"`
}

// DefaultAppConfig конфигурация по умолчанию: пересечения расписаний запрещены.
// Используется при отсутствии документа настроек или ошибке его загрузки.
func DefaultAppConfig() AppConfig {
	return AppConfig{AllowTeacherScheduleOverlap: false}
}
