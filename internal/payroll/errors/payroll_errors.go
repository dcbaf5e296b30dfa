package payrollerrors

import (
	"net/http"

	"ph-payroll/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"manual earnings must be non-negative decimal amounts",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrPayrollOverlap = apperror.New(
		apperror.CodeConflict,
		"payroll record already exists for an overlapping period",
		http.StatusConflict,
	)
	ErrProcessOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"only DRAFT payroll records can be processed",
		http.StatusUnprocessableEntity,
	)
	ErrApproveOnlyProcessing = apperror.New(
		apperror.CodeInvalidState,
		"only PROCESSING payroll records can be approved",
		http.StatusUnprocessableEntity,
	)
	ErrMarkPaidOnlyApproved = apperror.New(
		apperror.CodeInvalidState,
		"only APPROVED payroll records can be marked as paid",
		http.StatusUnprocessableEntity,
	)
	ErrUpdateOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"only DRAFT payroll records can be updated",
		http.StatusUnprocessableEntity,
	)
	ErrDeleteOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"only DRAFT payroll records can be deleted",
		http.StatusUnprocessableEntity,
	)
)
