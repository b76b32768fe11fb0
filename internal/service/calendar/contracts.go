package calendar

import "time"

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Локация возвращаемого времени задает локацию всех вычислений календаря
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// FixedTimeProvider возвращает заданное время (тесты, воспроизведение)
type FixedTimeProvider struct {
	At time.Time
}

// Now возвращает зафиксированное время
func (p *FixedTimeProvider) Now() time.Time {
	return p.At
}
