package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ph-payroll/internal/deduction"
	"ph-payroll/internal/events"
	"ph-payroll/internal/messaging/kafka/consumer"
	"ph-payroll/internal/salaryprofile"
	"ph-payroll/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer listens for employee_created events and provisions default
// payroll configuration for new employees.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, sqlDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	profileRepo := salaryprofile.NewRepository(gormDB)
	profileService := salaryprofile.NewService(sqlDB, profileRepo)

	deductionRepo := deduction.NewRepository(gormDB)
	deductionService := deduction.NewService(sqlDB, deductionRepo, &profileSource{repo: profileRepo})

	reader := connection.NewKafkaReader(broker, events.EmployeeCreatedTopic, "ph-payroll-onboarding")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeEmployeeOnboarding(ctx, reader, profileService, deductionService, logger)

	logger.Info("onboarding consumer shut down")
	return nil
}
