package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	bookingRepo "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/infra/storage/booking"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings/models"
	confirmationNumber "github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/confirmation"
)

// Service сервис для работы с бронированиями: поиск, отмена и администрирование
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Lookup получает бронирование по ID или номеру подтверждения
// Если передан e-mail и он не совпадает, бронирование считается не найденным
func (s *Service) Lookup(ctx context.Context, req *models.LookupRequest) (*models.BookingResponse, error) {
	if !req.HasReference() {
		return nil, fmt.Errorf("%w: bookingId or confirmation number is required", ErrInvalidInput)
	}

	booking, err := s.find(ctx, "Lookup", req.ID, req.ConfirmationNumber)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && strings.TrimSpace(*req.Email) != "" && !booking.BelongsTo(*req.Email) {
		s.logger.Warn("Lookup: e-mail mismatch for booking id=%s", booking.ID)
		return nil, ErrBookingNotFound
	}

	s.logger.Info("Lookup: found booking id=%s", booking.ID)
	return models.FromDomainBookingPublic(booking), nil
}

// Cancel отменяет бронирование
// Повторная отмена и отмена отсутствующего бронирования дают ErrNotFoundOrCancelled
func (s *Service) Cancel(ctx context.Context, req *models.CancelRequest) error {
	ref := &models.LookupRequest{ID: req.ID, ConfirmationNumber: req.ConfirmationNumber}
	if !ref.HasReference() {
		return fmt.Errorf("%w: bookingId or confirmation number is required", ErrInvalidInput)
	}

	// 1. Находим бронирование, если нужна проверка e-mail или указан только номер подтверждения
	id := ""
	if req.ID != nil {
		id = strings.TrimSpace(*req.ID)
	}
	needsLookup := id == "" || (req.Email != nil && strings.TrimSpace(*req.Email) != "")
	if needsLookup {
		booking, err := s.find(ctx, "Cancel", req.ID, req.ConfirmationNumber)
		if err != nil {
			if errors.Is(err, ErrBookingNotFound) {
				return ErrNotFoundOrCancelled
			}
			return err
		}
		if req.Email != nil && strings.TrimSpace(*req.Email) != "" && !booking.BelongsTo(*req.Email) {
			s.logger.Warn("Cancel: e-mail mismatch for booking id=%s", booking.ID)
			return ErrNotFoundOrCancelled
		}
		id = booking.ID
	}

	s.logger.Info("Cancel: cancelling booking id=%s", id)

	// 2. Условный переход в cancelled: только из активных статусов
	cancelled, err := s.bookingRepo.Cancel(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}
	if !cancelled {
		s.logger.Warn("Cancel: booking id=%s not found or already cancelled", id)
		return ErrNotFoundOrCancelled
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return nil
}

// List получает страницу бронирований для администратора
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.BookingListResponse, error) {
	req.Normalize()

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	page, err := s.bookingRepo.List(ctx, filter, req.Page, req.PageSize)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d bookings (page=%d, pageSize=%d)",
		len(page.Bookings), page.Total, page.Page, page.PageSize)
	return models.FromDomainBookingPage(page), nil
}

// Update обновляет заметки администратора, статус и приоритет
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%s by admin=%s", id, req.AdminID)

	// 1. Валидация входных данных
	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid input for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if update.AdminNotes != nil && len(*update.AdminNotes) > domain.MaxAdminNotesLength {
		return nil, fmt.Errorf("%w: admin notes must be at most %d characters", ErrInvalidInput, domain.MaxAdminNotesLength)
	}

	// 2. Получаем бронирование и проверяем принадлежность администратору
	booking, err := s.getOwned(ctx, "Update", id, req.AdminID)
	if err != nil {
		return nil, err
	}

	// 3. Проверяем переход статуса
	if update.Status != nil && !booking.Status.CanTransitionTo(*update.Status) {
		s.logger.Warn("Update: invalid transition %s -> %s for booking id=%s", booking.Status, *update.Status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, booking.Status, *update.Status)
	}

	updated, err := s.bookingRepo.UpdateWithAdminNotes(ctx, id, update)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%s, status=%s, priority=%s", id, updated.Status, updated.Priority)
	return models.FromDomainBooking(updated), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id, adminID string) error {
	s.logger.Info("Delete: deleting booking id=%s by admin=%s", id, adminID)

	if _, err := s.getOwned(ctx, "Delete", id, adminID); err != nil {
		return err
	}

	deleted, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	if !deleted {
		return ErrBookingNotFound
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// Вспомогательные методы

func (s *Service) find(ctx context.Context, op string, id, confirmation *string) (*domain.Booking, error) {
	var (
		booking *domain.Booking
		err     error
	)
	switch {
	case id != nil && strings.TrimSpace(*id) != "":
		booking, err = s.bookingRepo.GetByID(ctx, strings.TrimSpace(*id))
	case confirmation != nil && strings.TrimSpace(*confirmation) != "":
		number := strings.ToUpper(strings.TrimSpace(*confirmation))
		if !confirmationNumber.IsValid(number) {
			s.logger.Warn("%s: malformed confirmation number %q", op, number)
			return nil, ErrBookingNotFound
		}
		booking, err = s.bookingRepo.GetByConfirmationNumber(ctx, number)
	default:
		return nil, ErrBookingNotFound
	}

	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking not found", op)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return booking, nil
}

// getOwned возвращает бронирование администратора; чужое бронирование не раскрывается
func (s *Service) getOwned(ctx context.Context, op, id, adminID string) (*domain.Booking, error) {
	booking, err := s.find(ctx, op, &id, nil)
	if err != nil {
		return nil, err
	}
	if booking.AdminID != adminID {
		s.logger.Warn("%s: booking id=%s does not belong to admin=%s", op, id, adminID)
		return nil, ErrBookingNotFound
	}
	return booking, nil
}
