package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/config"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/integrations/confirmation"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/integrations/email"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/logger"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName + "-worker")

		metricsMux := http.NewServeMux()
		metricsMux.Handle(cfg.Metrics.Path, promhttp.Handler())
		metricsAddr := fmt.Sprintf(":%d", cfg.Notifications.WorkerMetricsPort)
		go func() {
			log.Info("Worker metrics exposed at %s%s", metricsAddr, cfg.Metrics.Path)
			if err := http.ListenAndServe(metricsAddr, metricsMux); err != nil {
				log.Error("Worker metrics server stopped: %v", err)
			}
		}()
	}

	// Без ключа SendGrid письма только пишутся в лог
	var sender confirmation.Sender
	if cfg.Notifications.SendGridAPIKey != "" {
		sg, err := email.NewSendGridSender(
			cfg.Notifications.SendGridAPIKey,
			cfg.Notifications.FromEmail,
			cfg.Notifications.FromName,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize SendGrid sender: %v", err)
		}
		sender = sg
	} else {
		log.Warn("SENDGRID_API_KEY is not set, confirmation emails will only be logged")
		sender = email.NewStubSender(log)
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: cfg.Notifications.WorkerConcurrency,
			Logger:      log.Zap().Sugar(),
			Queues: map[string]int{
				cfg.Notifications.Queue: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	confirmation.NewHandler(sender, metricsCollector, log).Register(mux)

	log.Info("Starting notification worker (redis=%s, queue=%s, concurrency=%d)",
		cfg.Redis.Addr, cfg.Notifications.Queue, cfg.Notifications.WorkerConcurrency)
	if err := srv.Start(mux); err != nil {
		log.Fatal("Failed to start notification worker: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down notification worker...")
	srv.Shutdown()
	log.Info("Notification worker stopped")
}
