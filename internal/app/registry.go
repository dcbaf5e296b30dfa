package app

import (
	"context"
	"database/sql"
	"errors"
	"os"

	"ph-payroll/internal/attendance"
	"ph-payroll/internal/bootstrap"
	"ph-payroll/internal/deduction"
	"ph-payroll/internal/employee"
	"ph-payroll/internal/messaging/kafka"
	"ph-payroll/internal/middleware"
	"ph-payroll/internal/overtime"
	"ph-payroll/internal/payroll"
	"ph-payroll/internal/salaryprofile"
	"ph-payroll/internal/shared/counter"
	"ph-payroll/internal/statutory"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	profileRepo := salaryprofile.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	overtimeRepo := overtime.NewRepository(gormDB)
	deductionRepo := deduction.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Aggregation core ---
	attendanceAgg := attendance.NewAggregator(attendanceRepo)
	overtimeAgg := overtime.NewAggregator(overtimeRepo)
	resolver := deduction.NewResolver(deductionRepo)

	profiles := &profileSource{repo: profileRepo}
	processor := payroll.NewProcessor(
		&employeeSource{repo: employeeRepo},
		profiles,
		attendanceAgg,
		overtimeAgg,
		resolver,
		aggregationPolicy(),
		nil,
	)

	auditLogger := bootstrap.NewStdoutAuditLogger()

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	profileService := salaryprofile.NewService(db, profileRepo)
	attendanceService := attendance.NewService(db, attendanceRepo)
	overtimeService := overtime.NewService(db, overtimeRepo)
	deductionService := deduction.NewService(db, deductionRepo, profiles)
	payrollService := payroll.NewService(db, payrollRepo, processor, outboxRepo, auditLogger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	profileHandler := salaryprofile.NewHandler(profileService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	overtimeHandler := overtime.NewHandler(overtimeService)
	deductionHandler := deduction.NewHandler(deductionService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	statutoryHandler := statutory.NewHandler()

	// --- Routes ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(50), 100))
	{
		employee.RegisterRoutes(api, employeeHandler)
		salaryprofile.RegisterRoutes(api, profileHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		overtime.RegisterRoutes(api, overtimeHandler)
		deduction.RegisterRoutes(api, deductionHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		statutory.RegisterRoutes(api, statutoryHandler)
	}

	return nil
}

// aggregationPolicy reads PAYROLL_INCLUDE_PENDING. The default keeps the
// historical behavior: pending and rejected rows count toward pay.
func aggregationPolicy() payroll.Policy {
	if os.Getenv("PAYROLL_INCLUDE_PENDING") == "false" {
		return payroll.Policy{ApprovedOnly: true}
	}
	return payroll.Policy{ApprovedOnly: false}
}

type employeeSource struct {
	repo employee.Repository
}

func (s *employeeSource) Exists(ctx context.Context, employeeID string) (bool, error) {
	_, err := s.repo.FindByID(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type profileSource struct {
	repo salaryprofile.Repository
}

func (s *profileSource) ActiveRates(ctx context.Context, employeeID string) (payroll.ProfileRates, bool, error) {
	profile, err := s.repo.FindActiveByEmployee(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payroll.ProfileRates{}, false, nil
	}
	if err != nil {
		return payroll.ProfileRates{}, false, err
	}
	return payroll.ProfileRates{
		Monthly: profile.MonthlyRate,
		Daily:   profile.DailyRate,
		Hourly:  profile.HourlyRate,
	}, true, nil
}

func (s *profileSource) ActiveMonthlyRate(ctx context.Context, employeeID string) (decimal.Decimal, bool, error) {
	rates, ok, err := s.ActiveRates(ctx, employeeID)
	return rates.Monthly, ok, err
}
