package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// Допускается час без ведущего нуля ("9:00"), хранится всегда нормализованное "09:00"
var timeStringPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// Время слота от клиента принимается только в каноничном виде
var canonicalTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

const minutesPerDay = 24 * 60

// TimeString время суток в формате HH:MM
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString разбирает и нормализует строку HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	m := timeStringPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return FromMinutes(hours*60 + minutes), nil
}

// FromMinutes создает TimeString из количества минут от начала суток
func FromMinutes(total int) TimeString {
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

// IsValidTimeString проверяет формат без нормализации
func IsValidTimeString(s string) bool {
	return timeStringPattern.MatchString(s)
}

// IsCanonicalTimeString проверяет строгий формат HH:MM с ведущим нулем
func IsCanonicalTimeString(s string) bool {
	return canonicalTimePattern.MatchString(s)
}

// Validate проверяет, что значение имеет формат HH:MM
func (t TimeString) Validate() error {
	if !timeStringPattern.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	m := timeStringPattern.FindStringSubmatch(string(t))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// AddMinutes возвращает время, сдвинутое на n минут
// Переход через полночь считается ошибкой
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := current + n
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s %+d minutes leaves the day", ErrInvalidTimeString, t, n)
	}
	if total == minutesPerDay {
		return "24:00", nil
	}
	return FromMinutes(total), nil
}

// IsBefore сравнивает два времени суток
func (t TimeString) IsBefore(other TimeString) bool {
	return t.compare(other) < 0
}

// IsAfter сравнивает два времени суток
func (t TimeString) IsAfter(other TimeString) bool {
	return t.compare(other) > 0
}

// OnDate собирает момент времени из даты и времени суток в локации даты
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, date.Location()), nil
}

func (t TimeString) String() string {
	return string(t)
}

// "24:00" допустим только как результат AddMinutes и всегда больше любого HH:MM
func (t TimeString) compare(other TimeString) int {
	a := t.sortKey()
	b := other.sortKey()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t TimeString) sortKey() int {
	if t == "24:00" {
		return minutesPerDay
	}
	m, err := t.Minutes()
	if err != nil {
		return -1
	}
	return m
}

// Scan реализует sql.Scanner (поддерживает TIME и VARCHAR колонки)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Postgres TIME возвращает HH:MM:SS
	if len(s) > 5 && strings.Count(s, ":") == 2 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
