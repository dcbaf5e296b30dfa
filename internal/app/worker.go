package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ph-payroll/internal/messaging/kafka"
	"ph-payroll/internal/messaging/kafka/producer"
	"ph-payroll/internal/shared/connection"

	"go.uber.org/zap"
)

const defaultOutboxPollInterval = 3 * time.Second

// RunWorker drains the transactional outbox into Kafka until terminated.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	_, sqlDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	writer, err := connection.ConnectKafkaWithRetry(broker, connectRetries)
	if err != nil {
		return err
	}
	defer writer.Close()

	pollInterval := defaultOutboxPollInterval
	if raw := os.Getenv("OUTBOX_POLL_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			pollInterval = parsed
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(sqlDB), writer, logger, pollInterval)

	logger.Info("outbox worker shut down")
	return nil
}
