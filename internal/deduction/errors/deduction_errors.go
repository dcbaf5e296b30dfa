package deductionerrors

import (
	"net/http"

	"ph-payroll/internal/shared/apperror"
)

var (
	ErrDeductionSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"deduction setting not found",
		http.StatusNotFound,
	)
	ErrNoActiveSetting = apperror.New(
		apperror.CodeNotFound,
		"employee has no active deduction setting",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid effective date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid end date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"deduction amounts must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidTaxRate = apperror.New(
		apperror.CodeInvalidInput,
		"tax rate must be between 0 and 1",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end date must not be before effective date",
		http.StatusBadRequest,
	)
)
