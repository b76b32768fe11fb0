package models

import (
	"errors"
	"strings"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPriority возвращается при некорректном приоритете
	ErrInvalidPriority = errors.New("invalid booking priority")
)

// Request модели

// LookupRequest поиск бронирования по ID или номеру подтверждения
// Email необязателен; при несовпадении бронирование считается не найденным
type LookupRequest struct {
	ID                 *string
	ConfirmationNumber *string
	Email              *string
}

// HasReference возвращает true, если задан ID или номер подтверждения
func (r *LookupRequest) HasReference() bool {
	return nonEmpty(r.ID) || nonEmpty(r.ConfirmationNumber)
}

// CancelRequest запрос на отмену бронирования
type CancelRequest struct {
	ID                 *string
	ConfirmationNumber *string
	Email              *string
}

// ListRequest запрос списка бронирований для администратора
type ListRequest struct {
	AdminID    *string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *string
	SearchTerm *string
	Page       int
	PageSize   int
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.BookingFilter, error) {
	filter := domain.BookingFilter{
		AdminID:    r.AdminID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		SearchTerm: r.SearchTerm,
	}

	if r.Status != nil && *r.Status != "" {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Normalize приводит пагинацию к допустимым значениям
func (r *ListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = domain.DefaultPageSize
	}
	if r.PageSize > domain.MaxPageSize {
		r.PageSize = domain.MaxPageSize
	}
}

// UpdateBookingRequest административное обновление бронирования
type UpdateBookingRequest struct {
	AdminID    string
	AdminNotes *string
	Status     *string
	Priority   *string
}

// ToDomainUpdate конвертирует request в domain обновление
func (r *UpdateBookingRequest) ToDomainUpdate() (domain.BookingUpdate, error) {
	update := domain.BookingUpdate{AdminNotes: r.AdminNotes}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return update, err
		}
		update.Status = &status
	}

	if r.Priority != nil {
		priority := domain.Priority(strings.ToLower(*r.Priority))
		if !priority.IsValid() {
			return update, ErrInvalidPriority
		}
		update.Priority = &priority
	}

	return update, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                 string    `json:"id"`
	AdminID            string    `json:"adminId"`
	PreferredDate      string    `json:"preferredDate"` // "2025-06-02"
	PreferredTime      string    `json:"preferredTime"` // "10:00"
	Timezone           string    `json:"timezone"`
	Status             string    `json:"status"`
	BookingType        string    `json:"bookingType"`
	Priority           string    `json:"priority,omitempty"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Company            *string   `json:"company,omitempty"`
	Phone              *string   `json:"phone,omitempty"`
	Requirements       *string   `json:"requirements,omitempty"`
	ConfirmationNumber string    `json:"confirmationNumber"`
	AdminNotes         *string   `json:"adminNotes,omitempty"`
	CancelledAt        *string   `json:"cancelledAt,omitempty"` // ISO 8601
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// BookingListResponse страница бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	HasMore  bool              `json:"hasMore"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		AdminID:            b.AdminID,
		PreferredDate:      b.DateKey(),
		PreferredTime:      b.PreferredTime.String(),
		Timezone:           b.Timezone,
		Status:             string(b.Status),
		BookingType:        string(b.BookingType),
		Priority:           string(b.Priority),
		Name:               b.Name,
		Email:              b.Email,
		Company:            b.Company,
		Phone:              b.Phone,
		Requirements:       b.Requirements,
		ConfirmationNumber: b.ConfirmationNumber,
		AdminNotes:         b.AdminNotes,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingPublic DTO для клиента: без внутренних полей администратора
func FromDomainBookingPublic(b *domain.Booking) *BookingResponse {
	resp := FromDomainBooking(b)
	if resp != nil {
		resp.AdminNotes = nil
		resp.Priority = ""
	}
	return resp
}

// FromDomainBookingPage конвертирует страницу domain моделей в DTO
func FromDomainBookingPage(page *domain.BookingPage) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(page.Bookings)),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		HasMore:  page.HasMore,
	}

	for _, booking := range page.Bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(strings.ToLower(strings.TrimSpace(status)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func nonEmpty(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
