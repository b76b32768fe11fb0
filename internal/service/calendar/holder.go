package calendar

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

// ConfigHolder общая для процесса конфигурация календаря
// Чтение без блокировок (снимок), изменения сериализуются мьютексом и публикуются атомарной заменой
type ConfigHolder struct {
	mu      sync.Mutex
	current atomic.Pointer[domain.CalendarConfig]
}

// NewConfigHolder создает holder с начальной конфигурацией
func NewConfigHolder(cfg domain.CalendarConfig) (*ConfigHolder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	h := &ConfigHolder{}
	snapshot := cfg.Clone()
	h.current.Store(&snapshot)
	return h, nil
}

// Get возвращает копию текущей конфигурации
func (h *ConfigHolder) Get() domain.CalendarConfig {
	return h.current.Load().Clone()
}

// Update применяет изменения к копии, проверяет инварианты и публикует результат
// При ошибке валидации текущая конфигурация не меняется
func (h *ConfigHolder) Update(apply func(cfg *domain.CalendarConfig)) (domain.CalendarConfig, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := h.current.Load().Clone()
	apply(&next)

	if err := next.Validate(); err != nil {
		return domain.CalendarConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	h.current.Store(&next)
	return next.Clone(), nil
}
