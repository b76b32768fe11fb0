package settings

import (
	"context"
	"fmt"
	"sort"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/settings/models"
)

// Service сервис для чтения и изменения конфигурации календаря
type Service struct {
	store  ConfigStore
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(store ConfigStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get возвращает текущую конфигурацию
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	return models.FromDomainConfig(s.store.Get()), nil
}

// Update частично обновляет конфигурацию
// Изменение атомарно: при ошибке валидации действует прежняя конфигурация
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating calendar settings by admin=%s", req.AdminID)

	// 1. Проверяем, что есть что обновлять
	if req.IsEmpty() {
		s.logger.Warn("Update: empty update request from admin=%s", req.AdminID)
		return nil, ErrEmptyUpdate
	}

	// 2. Порядок рабочих дней не важен, храним отсортированными
	if req.WorkingDays != nil {
		days := append([]int(nil), req.WorkingDays...)
		sort.Ints(days)
		req.WorkingDays = days
	}

	// 3. Применяем и валидируем в holder'е
	updated, err := s.store.Update(req.ApplyToConfig)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("Update: calendar settings updated: hours=%s-%s, days=%v, slot=%d, buffer=%d, window=%d..%d",
		updated.BusinessHours.Start, updated.BusinessHours.End, updated.WorkingDays,
		updated.SlotDuration, updated.BufferTime, updated.AdvanceBookingDays, updated.MaxBookingDays)

	return models.FromDomainConfig(updated), nil
}

// Snapshot текущая конфигурация в виде domain модели
func (s *Service) Snapshot() domain.CalendarConfig {
	return s.store.Get()
}
