package calendar

import (
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

// Service вычисления календаря: слоты, доступность, сетка месяца, валидация, альтернативы
// Не выполняет ввод-вывод: бронирования передает вызывающий код
type Service struct {
	holder       *ConfigHolder
	timeProvider TimeProvider
}

// NewService создает сервис календаря
func NewService(holder *ConfigHolder, timeProvider TimeProvider) *Service {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Service{
		holder:       holder,
		timeProvider: timeProvider,
	}
}

// Config возвращает снимок текущей конфигурации
func (s *Service) Config() domain.CalendarConfig {
	return s.holder.Get()
}

// Now текущее время в локации календаря
func (s *Service) Now() time.Time {
	return s.timeProvider.Now()
}

// ParseDate разбирает YYYY-MM-DD в локации календаря
func (s *Service) ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, date, s.timeProvider.Now().Location())
}

// dateOnly обнуляет время, сохраняя календарную дату
func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// diffDays разница в календарных днях между датами (без учета перехода на летнее время)
func diffDays(day, today time.Time) int {
	y1, m1, d1 := day.Date()
	y2, m2, d2 := today.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}
