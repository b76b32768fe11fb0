package list_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

// resolveRange разбирает границы диапазона и проверяет его длину
func resolveRange(req *Request, now time.Time, parse func(string) (time.Time, error)) (time.Time, time.Time, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if s := strings.TrimSpace(req.StartDate); s != "" {
		parsed, err := parse(s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: startDate must be in YYYY-MM-DD format", ErrInvalidInput)
		}
		start = parsed
	}

	end := start.AddDate(0, 0, domain.DefaultSlotRangeDays-1)
	if s := strings.TrimSpace(req.EndDate); s != "" {
		parsed, err := parse(s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate must be in YYYY-MM-DD format", ErrInvalidInput)
		}
		end = parsed
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}
	if end.After(start.AddDate(0, 0, domain.MaxSlotRangeDays-1)) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: range must not exceed %d days", ErrInvalidInput, domain.MaxSlotRangeDays)
	}

	return start, end, nil
}
