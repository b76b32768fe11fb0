package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/calendar"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/settings/models"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/logger"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/ptr"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	holder, err := calendar.NewConfigHolder(domain.DefaultCalendarConfig())
	require.NoError(t, err)
	return NewService(holder, logger.NewNop())
}

func TestService_Get(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "09:00", got.BusinessHours.Start)
	assert.Equal(t, "17:00", got.BusinessHours.End)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.WorkingDays)
	assert.Equal(t, 30, got.SlotDuration)
}

func TestService_Update_Partial(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		AdminID:          "admin-1",
		BusinessHoursEnd: ptr.Ptr("18:30"),
		WorkingDays:      []int{6, 1, 3},
		BufferTime:       ptr.Ptr(15),
	})
	require.NoError(t, err)

	assert.Equal(t, "09:00", got.BusinessHours.Start)
	assert.Equal(t, "18:30", got.BusinessHours.End)
	assert.Equal(t, []int{1, 3, 6}, got.WorkingDays)
	assert.Equal(t, 15, got.BufferTime)
	assert.Equal(t, 30, got.SlotDuration)

	snapshot := svc.Snapshot()
	assert.True(t, snapshot.IsWorkingDay(6))
}

func TestService_Update_NormalizesTime(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		BusinessHoursStart: ptr.Ptr("8:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "08:00", got.BusinessHours.Start)
}

func TestService_Update_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateSettingsRequest
		err  error
	}{
		{name: "empty", req: &models.UpdateSettingsRequest{}, err: ErrEmptyUpdate},
		{name: "start after end", req: &models.UpdateSettingsRequest{BusinessHoursStart: ptr.Ptr("18:00")}, err: ErrInvalidInput},
		{name: "bad time", req: &models.UpdateSettingsRequest{BusinessHoursEnd: ptr.Ptr("5pm")}, err: ErrInvalidInput},
		{name: "zero slot", req: &models.UpdateSettingsRequest{SlotDuration: ptr.Ptr(0)}, err: ErrInvalidInput},
		{name: "bad weekday", req: &models.UpdateSettingsRequest{WorkingDays: []int{1, 9}}, err: ErrInvalidInput},
		{name: "window inverted", req: &models.UpdateSettingsRequest{AdvanceBookingDays: ptr.Ptr(10), MaxBookingDays: ptr.Ptr(5)}, err: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)

			_, err := svc.Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.err)

			// конфигурация не изменилась
			assert.Equal(t, domain.DefaultCalendarConfig(), svc.Snapshot())
		})
	}
}
