package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ph-payroll/internal/deduction"
	deductionerrors "ph-payroll/internal/deduction/errors"
	"ph-payroll/internal/events"
	"ph-payroll/internal/salaryprofile"
	salaryprofileerrors "ph-payroll/internal/salaryprofile/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeOnboarding provisions a zero-rate salary profile and an
// empty deduction setting for every freshly created employee, so payroll
// runs never fail on a missing record. Redelivered events are detected by
// the employee already having an active profile.
func ConsumeEmployeeOnboarding(
	ctx context.Context,
	reader *kafkago.Reader,
	profileService salaryprofile.Service,
	deductionService deduction.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_onboarding")
	log.Info("employee onboarding consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee onboarding consumer stopped")
				return
			}
			log.Error("fetch employee onboarding message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := provisionDefaults(ctx, profileService, deductionService, event, log); err != nil {
			log.Error("provision payroll defaults failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee onboarding message failed", zap.Error(err))
			continue
		}

		log.Info("payroll defaults provisioned",
			zap.String("employee_id", event.EmployeeID),
		)
	}
}

func provisionDefaults(
	ctx context.Context,
	profileService salaryprofile.Service,
	deductionService deduction.Service,
	event events.EmployeeCreatedEvent,
	log *zap.Logger,
) error {
	effectiveDate := event.HireDate
	if effectiveDate == "" {
		effectiveDate = time.Now().UTC().Format("2006-01-02")
	}

	_, err := profileService.GetActiveByEmployee(ctx, event.EmployeeID)
	switch {
	case err == nil:
		log.Warn("employee already has an active salary profile, skipping",
			zap.String("employee_id", event.EmployeeID),
		)
	case errors.Is(err, salaryprofileerrors.ErrProfileNotFound):
		if _, err := profileService.Create(ctx, salaryprofile.CreateSalaryProfileRequest{
			EmployeeID:    event.EmployeeID,
			MonthlyRate:   "0",
			EffectiveDate: effectiveDate,
			Activate:      true,
		}); err != nil {
			return err
		}
	default:
		return err
	}

	_, err = deductionService.GetActiveByEmployee(ctx, event.EmployeeID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, deductionerrors.ErrNoActiveSetting):
		_, err := deductionService.Create(ctx, deduction.CreateDeductionSettingRequest{
			EmployeeID:    event.EmployeeID,
			EffectiveDate: effectiveDate,
			Activate:      true,
		})
		return err
	default:
		return err
	}
}
