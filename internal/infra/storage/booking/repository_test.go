package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/dbmetrics"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/ptr"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

const testBookingID = "6f1c1f8e-6a7e-4a53-9a55-2f1f3b0c8d11"

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock, db
}

func bookingRow() *sqlmock.Rows {
	created := time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookingColumns).AddRow(
		testBookingID,
		"admin-1",
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		"10:00",
		"America/New_York",
		"pending",
		"demo",
		"medium",
		"Jane Doe",
		"jane@example.com",
		"Acme",
		nil,
		nil,
		"BK-ABCD2345",
		nil,
		nil,
		created,
		created,
	)
}

func newTestBooking() *domain.Booking {
	return &domain.Booking{
		AdminID:            "admin-1",
		PreferredDate:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		PreferredTime:      types.TimeString("10:00"),
		Timezone:           "America/New_York",
		Status:             domain.StatusPending,
		BookingType:        domain.BookingTypeDemo,
		Priority:           domain.PriorityMedium,
		Name:               "Jane Doe",
		Email:              "jane@example.com",
		Company:            ptr.Ptr("Acme"),
		ConfirmationNumber: "BK-ABCD2345",
	}
}

func TestRepository_Create_Success(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	created := time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO bookings \(id,admin_id,preferred_date,preferred_time`).
		WithArgs(
			sqlmock.AnyArg(), "admin-1", "2025-06-02", "10:00", "America/New_York",
			"pending", "demo", "medium", "Jane Doe", "jane@example.com",
			"Acme", nil, nil, "BK-ABCD2345", nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	booking, err := repo.Create(context.Background(), newTestBooking())

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, created, booking.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SlotTaken(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Constraint: constraintActiveSlot})

	_, err := repo.Create(context.Background(), newTestBooking())

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ConfirmationNumberTaken(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Constraint: constraintConfirmation})

	_, err := repo.Create(context.Background(), newTestBooking())

	assert.ErrorIs(t, err, ErrConfirmationNumberTaken)
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), newTestBooking())

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, _ := newMockRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1 LIMIT 1`).
			WithArgs(testBookingID).
			WillReturnRows(bookingRow())

		booking, err := repo.GetByID(context.Background(), testBookingID)

		require.NoError(t, err)
		assert.Equal(t, "2025-06-02", booking.DateKey())
		assert.Equal(t, types.TimeString("10:00"), booking.PreferredTime)
		assert.Equal(t, domain.StatusPending, booking.Status)
		require.NotNil(t, booking.Company)
		assert.Equal(t, "Acme", *booking.Company)
		assert.Nil(t, booking.Phone)
		assert.Nil(t, booking.CancelledAt)
	})

	t.Run("no rows", func(t *testing.T) {
		repo, mock, _ := newMockRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM bookings`).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := repo.GetByID(context.Background(), testBookingID)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("malformed id does not hit the database", func(t *testing.T) {
		repo, mock, _ := newMockRepo(t)

		_, err := repo.GetByID(context.Background(), "not-a-uuid")

		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByConfirmationNumber_Uppercases(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE confirmation_number = \$1`).
		WithArgs("BK-ABCD2345").
		WillReturnRows(bookingRow())

	booking, err := repo.GetByConfirmationNumber(context.Background(), "bk-abcd2345")

	require.NoError(t, err)
	assert.Equal(t, "BK-ABCD2345", booking.ConfirmationNumber)
}

func TestRepository_List_WithSearch(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE \(admin_id = \$1 AND \(name ILIKE \$2 OR email ILIKE \$3`).
		WithArgs("admin-1", "%jane%", "%jane%", "%jane%", "%jane%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE (.+) ORDER BY preferred_date DESC, preferred_time DESC, created_at DESC LIMIT 20 OFFSET 0`).
		WillReturnRows(bookingRow())

	page, err := repo.List(context.Background(), domain.BookingFilter{
		AdminID:    ptr.Ptr("admin-1"),
		SearchTerm: ptr.Ptr(" jane "),
	}, 1, 20)

	require.NoError(t, err)
	assert.Len(t, page.Bookings, 1)
	assert.Equal(t, int64(21), page.Total)
	assert.True(t, page.HasMore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_CountError(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectQuery(`SELECT COUNT`).WillReturnError(errors.New("timeout"))

	_, err := repo.List(context.Background(), domain.BookingFilter{}, 1, 20)

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_FindActiveBySlot_LocksInsideTransaction(t *testing.T) {
	repo, mock, db := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE (.+) FOR UPDATE`).
		WillReturnRows(bookingRow())
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), &dbmetrics.SqlTxWrapper{Tx: tx})

	bookings, err := repo.FindActiveBySlot(ctx, "admin-1",
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), types.TimeString("10:00"))

	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActiveInRange(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE admin_id = \$1 AND status IN \(\$2,\$3\) AND preferred_date >= \$4 AND preferred_date <= \$5`).
		WithArgs("admin-1", "pending", "confirmed", "2025-06-01", "2025-06-30").
		WillReturnRows(bookingRow())

	bookings, err := repo.FindActiveInRange(context.Background(), "admin-1",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestRepository_FindDuplicate_IgnoresEmailCase(t *testing.T) {
	repo, mock, _ := newMockRepo(t)

	mock.ExpectQuery(`LOWER\(email\) = LOWER\(\$\d\)`).
		WillReturnRows(bookingRow())

	booking, err := repo.FindDuplicate(context.Background(), "admin-1", " JANE@example.com ",
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), types.TimeString("10:00"))

	require.NoError(t, err)
	assert.Equal(t, testBookingID, booking.ID)
}

func TestRepository_UpdateWithAdminNotes(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	status := domain.StatusConfirmed

	mock.ExpectQuery(`UPDATE bookings SET updated_at = NOW\(\), admin_notes = \$1, status = \$2 WHERE id = \$3 RETURNING`).
		WithArgs("call back", "confirmed", testBookingID).
		WillReturnRows(bookingRow())

	_, err := repo.UpdateWithAdminNotes(context.Background(), testBookingID, domain.BookingUpdate{
		AdminNotes: ptr.Ptr("call back"),
		Status:     &status,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Reschedule(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, mock, _ := newMockRepo(t)
		mock.ExpectQuery(`UPDATE bookings SET preferred_date`).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := repo.Reschedule(context.Background(), testBookingID, "admin-1",
			time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), types.TimeString("11:00"), "")

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("slot taken", func(t *testing.T) {
		repo, mock, _ := newMockRepo(t)
		mock.ExpectQuery(`UPDATE bookings SET preferred_date`).
			WillReturnError(&pq.Error{Code: pqUniqueViolation, Constraint: constraintActiveSlot})

		_, err := repo.Reschedule(context.Background(), testBookingID, "admin-1",
			time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), types.TimeString("11:00"), "UTC")

		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}

func TestRepository_Cancel(t *testing.T) {
	t.Run("cancels active booking", func(t *testing.T) {
		repo, mock, _ := newMockRepo(t)
		mock.ExpectExec(`UPDATE bookings SET status = \$1, cancelled_at = NOW\(\)`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		cancelled, err := repo.Cancel(context.Background(), testBookingID)

		require.NoError(t, err)
		assert.True(t, cancelled)
	})

	t.Run("already cancelled", func(t *testing.T) {
		repo, mock, _ := newMockRepo(t)
		mock.ExpectExec(`UPDATE bookings`).WillReturnResult(sqlmock.NewResult(0, 0))

		cancelled, err := repo.Cancel(context.Background(), testBookingID)

		require.NoError(t, err)
		assert.False(t, cancelled)
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, _ := newMockRepo(t)
		mock.ExpectExec(`UPDATE bookings`).WillReturnError(errors.New("boom"))

		_, err := repo.Cancel(context.Background(), testBookingID)

		assert.ErrorIs(t, err, ErrExecQuery)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := newMockRepo(t)
	mock.ExpectExec(`DELETE FROM bookings WHERE id = \$1`).
		WithArgs(testBookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), testBookingID)

	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, deleted)
}
