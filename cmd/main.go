package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	cancelBookingHandler "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers/check_availability"
	createBookingHandler "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers/get_calendar"
	getCalendarConfigHandler "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers/get_calendar_config"
	listBookingsHandler "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers/list_bookings"
	listSlotsHandler "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers/list_slots"
	rescheduleBookingHandler "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers/reschedule_booking"
	updateBookingHandler "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers/update_booking"
	updateCalendarConfigHandler "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers/update_calendar_config"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/middleware"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/config"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/integrations/confirmation"
	bookingsService "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings"
	calendarService "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/calendar"
	settingsService "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/settings"
	checkAvailabilityUC "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/check_availability"
	createBookingUC "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/create_booking"
	getCalendarUC "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/get_calendar"
	listSlotsUC "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/list_slots"
	rescheduleBookingUC "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/reschedule_booking"
	confirmationNumber "github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/confirmation"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/logger"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking service (env=%s, storage=%s)...", cfg.App.Env, cfg.Storage.Driver)

	handlers.SetExposeInternalErrors(!cfg.App.IsProduction())

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Конфигурация календаря общая для всего процесса и меняется атомарно
	holder, err := calendarService.NewConfigHolder(cfg.Calendar.ToDomain())
	if err != nil {
		log.Fatal("Invalid calendar configuration: %v", err)
	}
	calendarSvc := calendarService.NewService(holder, &calendarService.RealTimeProvider{})

	// Подключаем хранилище
	store, err := openStorage(cfg, metricsCollector, log, stopMetricsCh)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.close()

	// Очередь подтверждений; без нее бронирования создаются без писем
	var confirmations createBookingUC.ConfirmationSender
	if cfg.Notifications.Enabled {
		queueClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer queueClient.Close()

		confirmations = confirmation.NewClient(
			queueClient,
			cfg.Notifications.Queue,
			cfg.Notifications.MaxRetry,
			metricsCollector,
			log,
		)
		log.Info("Confirmation queue enabled (redis=%s, queue=%s)", cfg.Redis.Addr, cfg.Notifications.Queue)
	} else {
		log.Warn("Notifications disabled, confirmation emails will not be sent")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(store.bookings, log)
	settingsSvc := settingsService.NewService(holder, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		store.bookings,
		calendarSvc,
		confirmations,
		store.tx,
		confirmationNumber.Generate,
		metricsCollector,
		cfg.App.DefaultAdminID,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(store.bookings, calendarSvc, cfg.App.DefaultAdminID, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(store.bookings, calendarSvc, cfg.App.DefaultAdminID, log)
	listSlotsUseCase := listSlotsUC.NewUseCase(store.bookings, calendarSvc, cfg.App.DefaultAdminID, log)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(store.bookings, calendarSvc, store.tx, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	listSlots := listSlotsHandler.NewHandler(listSlotsUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getCalendarConfig := getCalendarConfigHandler.NewHandler(settingsSvc, log)
	updateCalendarConfig := updateCalendarConfigHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", rescheduleBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Доступность ---
	api.HandleFunc("/availability", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability/slots", listSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminScope)

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/calendar/config", getCalendarConfig.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/calendar/config", updateCalendarConfig.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
