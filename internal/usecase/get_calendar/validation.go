package get_calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

// normalizeRequest подставляет текущий месяц и тип встречи по умолчанию
func normalizeRequest(req *Request, now time.Time) (*Request, error) {
	out := *req
	out.AdminID = strings.TrimSpace(out.AdminID)

	if out.Month == 0 {
		out.Month = int(now.Month())
	}
	if out.Year == 0 {
		out.Year = now.Year()
	}

	if out.Month < 1 || out.Month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if out.Year < 1970 || out.Year > 9999 {
		return nil, fmt.Errorf("%w: year is out of range", ErrInvalidInput)
	}

	out.BookingType = strings.ToLower(strings.TrimSpace(out.BookingType))
	if out.BookingType == "" {
		out.BookingType = string(domain.DefaultBookingType)
	}
	if !domain.BookingType(out.BookingType).IsValid() {
		return nil, fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, out.BookingType)
	}

	return &out, nil
}
