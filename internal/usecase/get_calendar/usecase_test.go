package get_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/calendar"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/logger"
)

// Пятница, 30 мая 2025, 09:00 UTC
var testNow = time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)

type fakeRepo struct {
	bookings []*domain.Booking
	err      error

	adminID  string
	from, to time.Time
}

func (f *fakeRepo) FindActiveInRange(_ context.Context, adminID string, from, to time.Time) ([]*domain.Booking, error) {
	f.adminID, f.from, f.to = adminID, from, to
	return f.bookings, f.err
}

func newUseCase(t *testing.T, repo *fakeRepo) *UseCase {
	t.Helper()
	holder, err := calendar.NewConfigHolder(domain.DefaultCalendarConfig())
	require.NoError(t, err)
	cal := calendar.NewService(holder, &calendar.FixedTimeProvider{At: testNow})
	return NewUseCase(repo, cal, "default-admin", logger.NewNop())
}

func findDay(t *testing.T, month *domain.CalendarMonth, date string) domain.CalendarDay {
	t.Helper()
	for _, d := range month.Days {
		if d.Date == date {
			return d
		}
	}
	t.Fatalf("day %s not found", date)
	return domain.CalendarDay{}
}

func TestExecute_JuneGrid(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{{
		ID:            "b1",
		PreferredDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		PreferredTime: "10:00",
		Status:        domain.StatusPending,
	}}}
	uc := newUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{AdminID: "admin-1", Month: 6, Year: 2025})

	require.NoError(t, err)
	assert.Equal(t, "admin-1", repo.adminID)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), repo.from)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), repo.to)

	month := resp.Calendar
	require.Len(t, month.Days, 30)
	assert.Equal(t, domain.DefaultTimezone, month.Timezone)
	assert.Equal(t, domain.BookingTypeDemo, resp.BookingType)

	sunday := findDay(t, month, "2025-06-01")
	assert.True(t, sunday.IsBlocked)
	assert.Equal(t, calendar.BlockReasonWeekend, sunday.BlockReason)

	monday := findDay(t, month, "2025-06-02")
	assert.True(t, monday.Available)
	for _, slot := range monday.TimeSlots {
		if slot.Time == "10:00" {
			assert.False(t, slot.Available)
			assert.Equal(t, calendar.ReasonAlreadyBooked, slot.Reason)
		}
	}
}

func TestExecute_DefaultsToCurrentMonth(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{Timezone: "Europe/Berlin", BookingType: "Support"})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Calendar.Month)
	assert.Equal(t, 2025, resp.Calendar.Year)
	assert.Len(t, resp.Calendar.Days, 31)
	assert.Equal(t, "Europe/Berlin", resp.Calendar.Timezone)
	assert.Equal(t, domain.BookingTypeSupport, resp.BookingType)
	assert.Equal(t, "default-admin", repo.adminID)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(t, &fakeRepo{})

	_, err := uc.Execute(context.Background(), &Request{Month: 13, Year: 2025})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = uc.Execute(context.Background(), &Request{Month: 6, Year: 2025, BookingType: "party"})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestExecute_StoreError(t *testing.T) {
	uc := newUseCase(t, &fakeRepo{err: errors.New("db down")})

	_, err := uc.Execute(context.Background(), &Request{Month: 6, Year: 2025})

	assert.True(t, errors.Is(err, ErrInternal))
}
