package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-().]{7,20}$`)

	scriptBlockPattern  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	htmlTagPattern      = regexp.MustCompile(`(?s)<[^>]*>`)
	jsProtocolPattern   = regexp.MustCompile(`(?i)javascript\s*:`)
	eventHandlerPattern = regexp.MustCompile(`(?i)\bon[a-z]+\s*=`)
)

// validateRequest проверяет запрос целиком и накапливает все ошибки
// Свободный текст очищается; факт очистки попадает в предупреждения
func validateRequest(req *Request, calendar CalendarService, defaultAdminID string) (*input, *ValidationError) {
	in := &input{
		adminID:  strings.TrimSpace(req.AdminID),
		date:     strings.TrimSpace(req.PreferredDate),
		slotTime: strings.TrimSpace(req.PreferredTime),
		timezone: strings.TrimSpace(req.Timezone),
		email:    strings.TrimSpace(req.Email),
	}
	if in.adminID == "" {
		in.adminID = defaultAdminID
	}
	if in.timezone == "" {
		in.timezone = calendar.Config().BusinessHours.Timezone
	}

	var errs []string

	// Обязательные поля
	if in.date == "" {
		errs = append(errs, "Preferred date is required")
	}
	if in.slotTime == "" {
		errs = append(errs, "Preferred time is required")
	}
	if in.email == "" {
		errs = append(errs, "Email is required")
	}

	// Очистка свободного текста
	in.name = in.sanitize("name", req.Name)
	if in.name == "" {
		errs = append(errs, "Name is required")
	}
	in.company = in.sanitizeOptional("company", req.Company)
	in.requirements = in.sanitizeOptional("requirements", req.Requirements)
	if req.Phone != nil && strings.TrimSpace(*req.Phone) != "" {
		phone := strings.TrimSpace(*req.Phone)
		in.phone = &phone
	}

	// Форматы
	if in.email != "" && !emailPattern.MatchString(in.email) {
		errs = append(errs, "Invalid email format")
	}
	dateOK := in.date != "" && datePattern.MatchString(in.date)
	if in.date != "" && !dateOK {
		errs = append(errs, "Invalid date format. Use YYYY-MM-DD")
	}
	timeOK := in.slotTime != "" && types.IsCanonicalTimeString(in.slotTime)
	if in.slotTime != "" && !timeOK {
		errs = append(errs, "Invalid time format. Use HH:MM")
	}
	if in.phone != nil && !phonePattern.MatchString(*in.phone) {
		errs = append(errs, "Invalid phone number format")
	}

	// Ограничения длины (после очистки)
	if utf8.RuneCountInString(in.name) > domain.MaxNameLength {
		errs = append(errs, fmt.Sprintf("Name must be at most %d characters", domain.MaxNameLength))
	}
	if in.company != nil && utf8.RuneCountInString(*in.company) > domain.MaxCompanyLength {
		errs = append(errs, fmt.Sprintf("Company must be at most %d characters", domain.MaxCompanyLength))
	}
	if in.requirements != nil && utf8.RuneCountInString(*in.requirements) > domain.MaxRequirementsLength {
		errs = append(errs, fmt.Sprintf("Requirements must be at most %d characters", domain.MaxRequirementsLength))
	}

	// Тип встречи
	in.bookingType = domain.DefaultBookingType
	if bt := strings.TrimSpace(req.BookingType); bt != "" {
		in.bookingType = domain.BookingType(strings.ToLower(bt))
		if !in.bookingType.IsValid() {
			errs = append(errs, "Invalid booking type")
		}
	}

	// Бизнес-правила слота
	var reason string
	if dateOK && timeOK {
		if v := calendar.ValidateTimeSlot(in.date, in.slotTime, in.timezone); !v.Valid {
			reason = v.Reason
			errs = append(errs, v.Reason)
		}
	}

	if len(errs) > 0 {
		return in, &ValidationError{Errors: errs, Warnings: in.warnings, Reason: reason}
	}
	return in, nil
}

func (in *input) sanitize(field, value string) string {
	clean, changed := sanitizeText(value)
	if changed {
		in.warnings = append(in.warnings, fmt.Sprintf("Potentially unsafe content was removed from %s", field))
	}
	return clean
}

func (in *input) sanitizeOptional(field string, value *string) *string {
	if value == nil {
		return nil
	}
	clean := in.sanitize(field, *value)
	if clean == "" {
		return nil
	}
	return &clean
}

// sanitizeText убирает <script> блоки, HTML теги, javascript: и inline обработчики on*=
func sanitizeText(s string) (string, bool) {
	original := strings.TrimSpace(s)
	clean := scriptBlockPattern.ReplaceAllString(original, "")
	clean = htmlTagPattern.ReplaceAllString(clean, "")
	clean = jsProtocolPattern.ReplaceAllString(clean, "")
	clean = eventHandlerPattern.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)
	return clean, clean != original
}
