package update_booking

import (
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings/models"
)

// UpdateBookingRequest HTTP request model
// Все поля опциональны
type UpdateBookingRequest struct {
	AdminNotes *string `json:"adminNotes"`
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
}

// ToServiceRequest конвертирует HTTP request в service request
func (r *UpdateBookingRequest) ToServiceRequest(adminID string) *models.UpdateBookingRequest {
	return &models.UpdateBookingRequest{
		AdminID:    adminID,
		AdminNotes: r.AdminNotes,
		Status:     r.Status,
		Priority:   r.Priority,
	}
}
