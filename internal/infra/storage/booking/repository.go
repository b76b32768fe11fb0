package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/dbmetrics"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/psqlbuilder"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

const (
	tableBookings = "bookings"

	// Имена ограничений из migrations/000001_create_bookings.up.sql
	constraintActiveSlot   = "bookings_active_slot_uniq"
	constraintConfirmation = "bookings_confirmation_number_key"

	pqUniqueViolation = "23505"
)

var bookingColumns = []string{
	"id",
	"admin_id",
	"preferred_date",
	"preferred_time",
	"timezone",
	"status",
	"booking_type",
	"priority",
	"name",
	"email",
	"company",
	"phone",
	"requirements",
	"confirmation_number",
	"admin_notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Уникальный индекс по (admin_id, preferred_date, preferred_time) для pending/confirmed
// окончательно решает гонку двух одновременных заявок: проигравшая получает ErrSlotTaken
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"id",
			"admin_id",
			"preferred_date",
			"preferred_time",
			"timezone",
			"status",
			"booking_type",
			"priority",
			"name",
			"email",
			"company",
			"phone",
			"requirements",
			"confirmation_number",
			"admin_notes",
		).
		Values(
			booking.ID,
			booking.AdminID,
			booking.DateKey(),
			booking.PreferredTime,
			booking.Timezone,
			booking.Status,
			booking.BookingType,
			booking.Priority,
			booking.Name,
			booking.Email,
			booking.Company,
			booking.Phone,
			booking.Requirements,
			booking.ConfirmationNumber,
			booking.AdminNotes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	// Не-UUID значение в колонке uuid дает ошибку приведения типа, для клиента это просто "не найдено"
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBookingNotFound
	}
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByConfirmationNumber получает бронирование по номеру подтверждения
func (r *Repository) GetByConfirmationNumber(ctx context.Context, number string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByConfirmationNumber", squirrel.Eq{"confirmation_number": strings.ToUpper(number)})
}

// List получает страницу бронирований с фильтрами
// Сортировка: сначала ближайшие по дате и времени, затем новые
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter, page, pageSize int) (*domain.BookingPage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := buildFilter(filter)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From(tableBookings).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("%w: List - count bookings: %v", ErrExecQuery, err)
	}

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(where).
		OrderBy("preferred_date DESC", "preferred_time DESC", "created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}

	return domain.NewBookingPage(bookings, total, page, pageSize), nil
}

// FindActiveBySlot возвращает pending/confirmed бронирования администратора на дату и время
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) FindActiveBySlot(ctx context.Context, adminID string, date time.Time, slotTime types.TimeString) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{
			"admin_id":       adminID,
			"preferred_date": date.Format(domain.DateFormat),
			"preferred_time": slotTime,
			"status":         activeStatuses(),
		}).
		OrderBy("created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// FindActiveInRange возвращает pending/confirmed бронирования администратора за период (включительно)
func (r *Repository) FindActiveInRange(ctx context.Context, adminID string, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"admin_id": adminID, "status": activeStatuses()}).
		Where(squirrel.GtOrEq{"preferred_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"preferred_date": to.Format(domain.DateFormat)}).
		OrderBy("preferred_date ASC", "preferred_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// FindDuplicate ищет активное бронирование с тем же e-mail (без учета регистра), датой и временем
func (r *Repository) FindDuplicate(ctx context.Context, adminID, email string, date time.Time, slotTime types.TimeString) (*domain.Booking, error) {
	return r.getOne(ctx, "FindDuplicate", squirrel.And{
		squirrel.Eq{
			"admin_id":       adminID,
			"preferred_date": date.Format(domain.DateFormat),
			"preferred_time": slotTime,
			"status":         activeStatuses(),
		},
		squirrel.Expr("LOWER(email) = LOWER(?)", strings.TrimSpace(email)),
	})
}

// UpdateWithAdminNotes обновляет заметки, статус и приоритет
func (r *Repository) UpdateWithAdminNotes(ctx context.Context, id string, update domain.BookingUpdate) (*domain.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBookingNotFound
	}

	updateBuilder := psqlbuilder.Update(tableBookings).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.AdminNotes != nil {
		updateBuilder = updateBuilder.Set("admin_notes", *update.AdminNotes)
	}
	if update.Priority != nil {
		updateBuilder = updateBuilder.Set("priority", *update.Priority)
	}
	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
		if *update.Status == domain.StatusCancelled {
			updateBuilder = updateBuilder.Set("cancelled_at", squirrel.Expr("NOW()"))
		}
	}

	return r.updateReturning(ctx, "UpdateWithAdminNotes", updateBuilder)
}

// Reschedule переносит активное бронирование на новые дату и время
func (r *Repository) Reschedule(
	ctx context.Context,
	id string,
	adminID string,
	date time.Time,
	slotTime types.TimeString,
	timezone string,
) (*domain.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBookingNotFound
	}

	updateBuilder := psqlbuilder.Update(tableBookings).
		Set("preferred_date", date.Format(domain.DateFormat)).
		Set("preferred_time", slotTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":       id,
			"admin_id": adminID,
			"status":   activeStatuses(),
		})

	if timezone != "" {
		updateBuilder = updateBuilder.Set("timezone", timezone)
	}

	return r.updateReturning(ctx, "Reschedule", updateBuilder)
}

// Cancel переводит бронирование в cancelled
// Возвращает false, если бронирование не найдено или уже не активно
func (r *Repository) Cancel(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": activeStatuses()}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// Delete удаляет бронирование (физическое удаление, только для администраторов)
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return booking, nil
}

func (r *Repository) updateReturning(ctx context.Context, op string, updateBuilder squirrel.UpdateBuilder) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	return booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.AdminID,
		&booking.PreferredDate,
		&booking.PreferredTime,
		&booking.Timezone,
		&booking.Status,
		&booking.BookingType,
		&booking.Priority,
		&booking.Name,
		&booking.Email,
		&booking.Company,
		&booking.Phone,
		&booking.Requirements,
		&booking.ConfirmationNumber,
		&booking.AdminNotes,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func buildFilter(filter domain.BookingFilter) squirrel.And {
	where := squirrel.And{}

	if filter.AdminID != nil {
		where = append(where, squirrel.Eq{"admin_id": *filter.AdminID})
	}
	if filter.StartDate != nil {
		where = append(where, squirrel.GtOrEq{"preferred_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		where = append(where, squirrel.LtOrEq{"preferred_date": filter.EndDate.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": *filter.Status})
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		pattern := "%" + escapeLike(strings.TrimSpace(*filter.SearchTerm)) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"company": pattern},
			squirrel.ILike{"confirmation_number": pattern},
		})
	}

	return where
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func activeStatuses() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pqUniqueViolation {
		return nil
	}
	switch pqErr.Constraint {
	case constraintConfirmation:
		return fmt.Errorf("%w: %s", ErrConfirmationNumberTaken, pqErr.Message)
	default:
		// constraintActiveSlot и любые другие уникальные ограничения на слот
		return fmt.Errorf("%w: %s", ErrSlotTaken, pqErr.Message)
	}
}
