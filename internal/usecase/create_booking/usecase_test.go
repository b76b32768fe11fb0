package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	bookingRepo "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/infra/storage/booking"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/calendar"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/logger"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/ptr"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/txmanager"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// Пятница, 30 мая 2025, 09:00 UTC; 2 июня 2025 понедельник
var testNow = time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)

const testAdmin = "admin-1"

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, b)
	if v := args.Get(0); v != nil {
		return v.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) FindActiveBySlot(ctx context.Context, adminID string, date time.Time, slotTime types.TimeString) ([]*domain.Booking, error) {
	args := m.Called(ctx, adminID, date, slotTime)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) FindActiveInRange(ctx context.Context, adminID string, from, to time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, adminID, from, to)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) FindDuplicate(ctx context.Context, adminID, email string, date time.Time, slotTime types.TimeString) (*domain.Booking, error) {
	args := m.Called(ctx, adminID, email, date, slotTime)
	if v := args.Get(0); v != nil {
		return v.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendConfirmation(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
}

type fakeMetrics struct {
	outcomes    []string
	guardErrors []string
}

func (f *fakeMetrics) IncBookingOutcome(outcome string) { f.outcomes = append(f.outcomes, outcome) }

func (f *fakeMetrics) IncDuplicateGuardError(op string) { f.guardErrors = append(f.guardErrors, op) }

type fixture struct {
	repo    *mockRepo
	sender  *mockSender
	metrics *fakeMetrics
	uc      *UseCase
}

func newFixture(t *testing.T, numbers ...string) *fixture {
	t.Helper()

	holder, err := calendar.NewConfigHolder(domain.DefaultCalendarConfig())
	require.NoError(t, err)
	cal := calendar.NewService(holder, &calendar.FixedTimeProvider{At: testNow})

	if len(numbers) == 0 {
		numbers = []string{"BK-TEST0001"}
	}
	next := 0
	gen := func() (string, error) {
		n := numbers[next%len(numbers)]
		next++
		return n, nil
	}

	f := &fixture{repo: &mockRepo{}, sender: &mockSender{}, metrics: &fakeMetrics{}}
	f.uc = NewUseCase(f.repo, cal, f.sender, txmanager.Noop{}, gen, f.metrics, testAdmin, logger.NewNop())
	return f
}

func validRequest() *Request {
	return &Request{
		PreferredDate: "2025-06-02",
		PreferredTime: "10:00",
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Company:       ptr.Ptr("Acme"),
		Phone:         ptr.Ptr("+1 555 123 4567"),
	}
}

var slotDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func occupant(email string) *domain.Booking {
	return &domain.Booking{
		ID:                 "existing-1",
		AdminID:            testAdmin,
		PreferredDate:      slotDate,
		PreferredTime:      "10:00",
		Timezone:           domain.DefaultTimezone,
		Status:             domain.StatusPending,
		BookingType:        domain.BookingTypeDemo,
		Email:              email,
		ConfirmationNumber: "BK-EXIST001",
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	f := newFixture(t)

	f.repo.On("FindActiveBySlot", mock.Anything, testAdmin, slotDate, types.TimeString("10:00")).
		Return([]*domain.Booking{}, nil).Twice()
	f.repo.On("FindDuplicate", mock.Anything, testAdmin, "jane@example.com", slotDate, types.TimeString("10:00")).
		Return(nil, bookingRepo.ErrBookingNotFound)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusPending &&
			b.Priority == domain.PriorityMedium &&
			b.BookingType == domain.BookingTypeDemo &&
			b.Timezone == domain.DefaultTimezone &&
			b.ConfirmationNumber == "BK-TEST0001"
	})).Return(func() *domain.Booking {
		b := occupant("jane@example.com")
		b.ID = "new-1"
		b.ConfirmationNumber = "BK-TEST0001"
		b.Phone = ptr.Ptr("+1 555 123 4567")
		return b
	}(), nil)
	f.sender.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "new-1", resp.BookingID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, "BK-TEST0001", resp.ConfirmationNumber)
	assert.Equal(t, ScheduledFor{Date: "2025-06-02", Time: "10:00", Timezone: domain.DefaultTimezone}, resp.ScheduledFor)
	assert.False(t, resp.Duplicate)
	assert.Empty(t, resp.Warnings)
	assert.Contains(t, resp.NextSteps, "Please make sure you have a stable internet connection for the demo")
	assert.Contains(t, resp.NextSteps, "If we cannot reach you online, we will call you at +1 555 123 4567")
	assert.Equal(t, []string{outcomeCreated}, f.metrics.outcomes)
	f.repo.AssertExpectations(t)
	f.sender.AssertExpectations(t)
}

func TestExecute_ValidationAccumulatesErrors(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		PreferredDate: "02/06/2025",
		PreferredTime: "25:00",
		Email:         "not-an-email",
		Name:          "<b></b>",
		BookingType:   "party",
	})

	require.Nil(t, resp)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, errors.Is(err, ErrValidation))
	assert.ElementsMatch(t, []string{
		"Name is required",
		"Invalid email format",
		"Invalid date format. Use YYYY-MM-DD",
		"Invalid time format. Use HH:MM",
		"Invalid booking type",
	}, verr.Errors)
	assert.Equal(t, []string{"Potentially unsafe content was removed from name"}, verr.Warnings)
	assert.Empty(t, verr.Reason)
	assert.Equal(t, []string{outcomeInvalid}, f.metrics.outcomes)
	f.repo.AssertNotCalled(t, "FindActiveBySlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_BusinessRuleReason(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.PreferredDate = "2025-06-07" // суббота

	_, err := f.uc.Execute(context.Background(), req)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, calendar.ReasonWeekend, verr.Reason)
	assert.Equal(t, []string{calendar.ReasonWeekend}, verr.Errors)
}

func TestExecute_RejectsSingleDigitHour(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.PreferredTime = "9:00"

	_, err := f.uc.Execute(context.Background(), req)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"Invalid time format. Use HH:MM"}, verr.Errors)
	f.repo.AssertNotCalled(t, "FindActiveBySlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_SanitizesFreeText(t *testing.T) {
	f := newFixture(t)

	f.repo.On("FindActiveBySlot", mock.Anything, testAdmin, slotDate, types.TimeString("09:00")).
		Return([]*domain.Booking{}, nil)
	f.repo.On("FindDuplicate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, bookingRepo.ErrBookingNotFound)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Requirements != nil && *b.Requirements == "Need a demo" && b.PreferredTime == "09:00"
	})).Return(occupant("jane@example.com"), nil)
	f.sender.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.PreferredTime = "09:00"
	req.Requirements = ptr.Ptr(`Need a demo<script>alert("x")</script>`)

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"Potentially unsafe content was removed from requirements"}, resp.Warnings)
	f.repo.AssertExpectations(t)
}

func TestExecute_ConflictReturnsAlternatives(t *testing.T) {
	f := newFixture(t)

	taken := occupant("other@example.com")
	f.repo.On("FindActiveBySlot", mock.Anything, testAdmin, slotDate, types.TimeString("10:00")).
		Return([]*domain.Booking{taken}, nil)
	f.repo.On("FindActiveInRange", mock.Anything, testAdmin, slotDate, slotDate.AddDate(0, 0, 7)).
		Return([]*domain.Booking{taken}, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.Nil(t, resp)
	var cerr *ConflictError
	require.True(t, errors.As(err, &cerr))
	assert.True(t, errors.Is(err, ErrSlotNotAvailable))
	require.Len(t, cerr.Alternatives, 3)
	for _, alt := range cerr.Alternatives {
		assert.True(t, alt.Available)
		assert.False(t, alt.Date == "2025-06-02" && alt.Time == "10:00")
	}
	assert.Equal(t, []string{outcomeConflict}, f.metrics.outcomes)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_DuplicateReturnsExisting(t *testing.T) {
	f := newFixture(t)

	existing := occupant("JANE@example.com")
	f.repo.On("FindActiveBySlot", mock.Anything, testAdmin, slotDate, types.TimeString("10:00")).
		Return([]*domain.Booking{existing}, nil)
	f.repo.On("FindDuplicate", mock.Anything, testAdmin, "jane@example.com", slotDate, types.TimeString("10:00")).
		Return(existing, nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Duplicate)
	assert.Equal(t, "existing-1", resp.BookingID)
	assert.Equal(t, "BK-EXIST001", resp.ConfirmationNumber)
	assert.Equal(t, []string{outcomeDuplicate}, f.metrics.outcomes)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.sender.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything)
}

func TestExecute_DuplicateGuardErrorIsCountedAndSwallowed(t *testing.T) {
	f := newFixture(t)

	f.repo.On("FindActiveBySlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)
	f.repo.On("FindDuplicate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))
	f.repo.On("Create", mock.Anything, mock.Anything).Return(occupant("jane@example.com"), nil)
	f.sender.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.Duplicate)
	assert.Equal(t, []string{"find_duplicate"}, f.metrics.guardErrors)
	assert.Equal(t, []string{outcomeCreated}, f.metrics.outcomes)
}

func TestExecute_SlotTakenOnInsertIsConflict(t *testing.T) {
	f := newFixture(t)

	f.repo.On("FindActiveBySlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)
	f.repo.On("FindDuplicate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, bookingRepo.ErrBookingNotFound)
	f.repo.On("Create", mock.Anything, mock.Anything).
		Return(nil, bookingRepo.ErrSlotTaken)
	f.repo.On("FindActiveInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))

	_, err := f.uc.Execute(context.Background(), validRequest())

	var cerr *ConflictError
	require.True(t, errors.As(err, &cerr))
	assert.Empty(t, cerr.Alternatives)
	assert.Equal(t, []string{outcomeConflict}, f.metrics.outcomes)
}

func TestExecute_RetriesConfirmationNumberCollision(t *testing.T) {
	f := newFixture(t, "BK-AAAAAAAA", "BK-BBBBBBBB")

	f.repo.On("FindActiveBySlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)
	f.repo.On("FindDuplicate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, bookingRepo.ErrBookingNotFound)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ConfirmationNumber == "BK-AAAAAAAA"
	})).Return(nil, bookingRepo.ErrConfirmationNumberTaken).Once()
	created := occupant("jane@example.com")
	created.ConfirmationNumber = "BK-BBBBBBBB"
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ConfirmationNumber == "BK-BBBBBBBB"
	})).Return(created, nil).Once()
	f.sender.On("SendConfirmation", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "BK-BBBBBBBB", resp.ConfirmationNumber)
	f.repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestExecute_ConfirmationFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)

	f.repo.On("FindActiveBySlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)
	f.repo.On("FindDuplicate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, bookingRepo.ErrBookingNotFound)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(occupant("jane@example.com"), nil)
	f.sender.On("SendConfirmation", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.BookingID)
}

func TestExecute_StoreFailureIsInternal(t *testing.T) {
	f := newFixture(t)

	f.repo.On("FindActiveBySlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.True(t, errors.Is(err, ErrInternal))
	assert.Equal(t, []string{outcomeError}, f.metrics.outcomes)
}
