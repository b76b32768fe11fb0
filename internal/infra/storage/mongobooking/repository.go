// Package mongobooking хранилище бронирований в MongoDB
package mongobooking

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	bookingRepo "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/infra/storage/booking"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

const defaultTimeout = 5 * time.Second

// Repository репозиторий бронирований в MongoDB
type Repository struct {
	coll    *mongo.Collection
	timeout time.Duration
	now     func() time.Time
}

// NewRepository создает репозиторий поверх коллекции
// timeout ограничивает каждую операцию; 0 означает 5 секунд
func NewRepository(coll *mongo.Collection, timeout time.Duration) *Repository {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Repository{
		coll:    coll,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	now := r.now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, fromDomain(booking)); err != nil {
		if mapped := mapDuplicateKey(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - insert: %v", bookingRepo.ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.findOne(ctx, "GetByID", bson.M{"_id": id})
}

// GetByConfirmationNumber получает бронирование по номеру подтверждения
func (r *Repository) GetByConfirmationNumber(ctx context.Context, number string) (*domain.Booking, error) {
	return r.findOne(ctx, "GetByConfirmationNumber", bson.M{"confirmationNumber": strings.ToUpper(number)})
}

// List получает страницу бронирований с фильтрами
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter, page, pageSize int) (*domain.BookingPage, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := buildFilter(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: List - count: %v", bookingRepo.ErrExecQuery, err)
	}

	opts := options.Find().
		SetSort(bson.D{
			{Key: "preferredDate", Value: -1},
			{Key: "preferredTime", Value: -1},
			{Key: "createdAt", Value: -1},
		}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	bookings, err := r.find(ctx, "List", query, opts)
	if err != nil {
		return nil, err
	}

	return domain.NewBookingPage(bookings, total, page, pageSize), nil
}

// FindActiveBySlot возвращает активные бронирования администратора на дату и время
func (r *Repository) FindActiveBySlot(ctx context.Context, adminID string, date time.Time, slotTime types.TimeString) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := bson.M{
		"adminId":       adminID,
		"preferredDate": date.Format(domain.DateFormat),
		"preferredTime": slotTime.String(),
		"occupiesSlot":  true,
	}

	return r.find(ctx, "FindActiveBySlot", query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
}

// FindActiveInRange возвращает активные бронирования администратора за период (включительно)
func (r *Repository) FindActiveInRange(ctx context.Context, adminID string, from, to time.Time) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := bson.M{
		"adminId":      adminID,
		"occupiesSlot": true,
		"preferredDate": bson.M{
			"$gte": from.Format(domain.DateFormat),
			"$lte": to.Format(domain.DateFormat),
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "preferredDate", Value: 1}, {Key: "preferredTime", Value: 1}})

	return r.find(ctx, "FindActiveInRange", query, opts)
}

// FindDuplicate ищет активное бронирование с тем же e-mail, датой и временем
func (r *Repository) FindDuplicate(ctx context.Context, adminID, email string, date time.Time, slotTime types.TimeString) (*domain.Booking, error) {
	query := bson.M{
		"adminId":       adminID,
		"emailLower":    normalizeEmail(email),
		"preferredDate": date.Format(domain.DateFormat),
		"preferredTime": slotTime.String(),
		"occupiesSlot":  true,
	}
	return r.findOne(ctx, "FindDuplicate", query)
}

// UpdateWithAdminNotes обновляет заметки, статус и приоритет
func (r *Repository) UpdateWithAdminNotes(ctx context.Context, id string, update domain.BookingUpdate) (*domain.Booking, error) {
	now := r.now()
	set := bson.M{"updatedAt": now}

	if update.AdminNotes != nil {
		set["adminNotes"] = *update.AdminNotes
	}
	if update.Priority != nil {
		set["priority"] = string(*update.Priority)
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
		set["occupiesSlot"] = update.Status.OccupiesSlot()
		if *update.Status == domain.StatusCancelled {
			set["cancelledAt"] = now
		}
	}

	return r.findOneAndUpdate(ctx, "UpdateWithAdminNotes", bson.M{"_id": id}, bson.M{"$set": set})
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
	set := bson.M{
		"preferredDate": date.Format(domain.DateFormat),
		"preferredTime": slotTime.String(),
		"updatedAt":     r.now(),
	}
	if timezone != "" {
		set["timezone"] = timezone
	}

	filter := bson.M{"_id": id, "adminId": adminID, "occupiesSlot": true}
	return r.findOneAndUpdate(ctx, "Reschedule", filter, bson.M{"$set": set})
}

// Cancel переводит активное бронирование в cancelled
// Возвращает false, если бронирование не найдено или уже не активно
func (r *Repository) Cancel(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := r.now()
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "occupiesSlot": true},
		bson.M{"$set": bson.M{
			"status":       string(domain.StatusCancelled),
			"occupiesSlot": false,
			"cancelledAt":  now,
			"updatedAt":    now,
		}},
	)
	if err != nil {
		return false, fmt.Errorf("%w: Cancel - update: %v", bookingRepo.ErrExecQuery, err)
	}

	return result.MatchedCount > 0, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("%w: Delete - delete: %v", bookingRepo.ErrExecQuery, err)
	}

	return result.DeletedCount > 0, nil
}

func (r *Repository) findOne(ctx context.Context, op string, filter bson.M) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc bookingDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, bookingRepo.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - find: %v", bookingRepo.ErrExecQuery, op, err)
	}

	booking, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, op, err)
	}
	return booking, nil
}

func (r *Repository) find(ctx context.Context, op string, filter bson.M, opts *options.FindOptions) ([]*domain.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - find: %v", bookingRepo.ErrExecQuery, op, err)
	}
	defer cursor.Close(ctx)

	bookings := make([]*domain.Booking, 0)
	for cursor.Next(ctx) {
		var doc bookingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, op, err)
		}
		booking, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, op, err)
		}
		bookings = append(bookings, booking)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - cursor: %v", bookingRepo.ErrExecQuery, op, err)
	}

	return bookings, nil
}

func (r *Repository) findOneAndUpdate(ctx context.Context, op string, filter, update bson.M) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bookingDocument
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, bookingRepo.ErrBookingNotFound
	}
	if err != nil {
		if mapped := mapDuplicateKey(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: %s - update: %v", bookingRepo.ErrExecQuery, op, err)
	}

	booking, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, op, err)
	}
	return booking, nil
}

func buildFilter(filter domain.BookingFilter) bson.M {
	query := bson.M{}

	if filter.AdminID != nil {
		query["adminId"] = *filter.AdminID
	}

	dateRange := bson.M{}
	if filter.StartDate != nil {
		dateRange["$gte"] = filter.StartDate.Format(domain.DateFormat)
	}
	if filter.EndDate != nil {
		dateRange["$lte"] = filter.EndDate.Format(domain.DateFormat)
	}
	if len(dateRange) > 0 {
		query["preferredDate"] = dateRange
	}

	if filter.Status != nil {
		query["status"] = string(*filter.Status)
	}

	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(*filter.SearchTerm)), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
			bson.M{"company": pattern},
			bson.M{"confirmationNumber": pattern},
		}
	}

	return query
}

func mapDuplicateKey(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	if strings.Contains(err.Error(), indexConfirmation) {
		return fmt.Errorf("%w: %v", bookingRepo.ErrConfirmationNumberTaken, err)
	}
	return fmt.Errorf("%w: %v", bookingRepo.ErrSlotTaken, err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
