package settings

import "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"

// ConfigStore общая конфигурация календаря (calendar.ConfigHolder)
type ConfigStore interface {
	Get() domain.CalendarConfig
	Update(apply func(cfg *domain.CalendarConfig)) (domain.CalendarConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
