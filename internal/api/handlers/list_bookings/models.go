package list_bookings

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(r *http.Request, adminID string) (*models.ListRequest, error) {
	req := &models.ListRequest{
		AdminID:    &adminID,
		Status:     handlers.QueryOptional(r, "status"),
		SearchTerm: handlers.QueryOptional(r, "search"),
	}

	var err error
	if req.StartDate, err = parseDate(r, "startDate"); err != nil {
		return nil, err
	}
	if req.EndDate, err = parseDate(r, "endDate"); err != nil {
		return nil, err
	}
	if req.Page, err = handlers.QueryInt(r, "page", 1); err != nil {
		return nil, err
	}
	if req.PageSize, err = handlers.QueryInt(r, "pageSize", domain.DefaultPageSize); err != nil {
		return nil, err
	}

	return req, nil
}

func parseDate(r *http.Request, key string) (*time.Time, error) {
	raw := handlers.QueryOptional(r, key)
	if raw == nil {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, *raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be in YYYY-MM-DD format", key)
	}
	return &date, nil
}
