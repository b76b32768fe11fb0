package mongobooking

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	indexActiveSlot   = "bookings_active_slot_uniq"
	indexConfirmation = "bookings_confirmation_number_uniq"
)

// EnsureIndexes создает индексы коллекции бронирований
// Частичный уникальный индекс по слоту гарантирует не более одного активного бронирования
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "adminId", Value: 1},
				{Key: "preferredDate", Value: 1},
				{Key: "preferredTime", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName(indexActiveSlot).
				SetPartialFilterExpression(bson.M{"occupiesSlot": true}),
		},
		{
			Keys:    bson.D{{Key: "confirmationNumber", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(indexConfirmation),
		},
		{
			Keys:    bson.D{{Key: "adminId", Value: 1}, {Key: "emailLower", Value: 1}},
			Options: options.Index().SetName("admin_email_idx"),
		},
		{
			Keys:    bson.D{{Key: "adminId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("admin_created_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("%w: EnsureIndexes: %v", ErrIndexes, err)
	}
	return nil
}
