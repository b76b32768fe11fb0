package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/config"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	bookingRepo "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/infra/storage/booking"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/infra/storage/mongobooking"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/dbmetrics"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/logger"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/metrics"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/txmanager"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// BookingStore общий набор операций обоих хранилищ
type BookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByConfirmationNumber(ctx context.Context, number string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter, page, pageSize int) (*domain.BookingPage, error)
	FindActiveBySlot(ctx context.Context, adminID string, date time.Time, slotTime types.TimeString) ([]*domain.Booking, error)
	FindActiveInRange(ctx context.Context, adminID string, from, to time.Time) ([]*domain.Booking, error)
	FindDuplicate(ctx context.Context, adminID, email string, date time.Time, slotTime types.TimeString) (*domain.Booking, error)
	UpdateWithAdminNotes(ctx context.Context, id string, update domain.BookingUpdate) (*domain.Booking, error)
	Reschedule(ctx context.Context, id, adminID string, date time.Time, slotTime types.TimeString, timezone string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// TxManager транзакции для сценариев записи
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type storage struct {
	bookings BookingStore
	tx       TxManager
	close    func()
}

// openStorage подключает выбранное хранилище
// В MongoDB уникальность слота обеспечивает частичный уникальный индекс, транзакции не используются
func openStorage(cfg *config.Config, m *metrics.Metrics, log *logger.Logger, stopCh <-chan struct{}) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMongo:
		return openMongo(cfg.Mongo, log)
	default:
		return openPostgres(cfg, m, log, stopCh)
	}
}

func openPostgres(cfg *config.Config, m *metrics.Metrics, log *logger.Logger, stopCh <-chan struct{}) (*storage, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		wrapped := dbmetrics.WrapWithDefault(db, m, cfg.Metrics.ServiceName, stopCh)
		log.Info("Database metrics collection started")
		return &storage{
			bookings: bookingRepo.NewRepository(wrapped),
			tx:       txmanager.NewTransactionManager(wrapped),
			close:    func() { db.Close() },
		}, nil
	}

	return &storage{
		bookings: bookingRepo.NewRepository(db),
		tx:       txmanager.NewTransactionManager(txmanager.SQLBeginner{DB: db}),
		close:    func() { db.Close() },
	}, nil
}

func openMongo(cfg config.MongoConfig, log *logger.Logger) (*storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	repo := mongobooking.NewRepository(
		client.Database(cfg.Database).Collection(cfg.Collection),
		time.Duration(cfg.QueryTimeout)*time.Second,
	)
	if err := repo.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure mongo indexes: %w", err)
	}
	log.Info("Successfully connected to MongoDB (db=%s, collection=%s)", cfg.Database, cfg.Collection)

	return &storage{
		bookings: repo,
		tx:       txmanager.Noop{},
		close: func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("Failed to disconnect from MongoDB: %v", err)
			}
		},
	}, nil
}
