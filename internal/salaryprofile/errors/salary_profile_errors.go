package salaryprofileerrors

import (
	"net/http"

	"ph-payroll/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary profile not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid effective_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid end_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonthlyRate = apperror.New(
		apperror.CodeInvalidInput,
		"monthly_rate must be a valid decimal amount",
		http.StatusBadRequest,
	)
)
