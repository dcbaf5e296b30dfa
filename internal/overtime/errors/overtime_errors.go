package overtimeerrors

import (
	"net/http"

	"ph-payroll/internal/shared/apperror"
)

var (
	ErrOvertimeNotFound = apperror.New(
		apperror.CodeNotFound,
		"overtime record not found",
		http.StatusNotFound,
	)
	ErrInvalidAttendanceID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid attendance id",
		http.StatusBadRequest,
	)
	ErrInvalidOvertimeType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown overtime type",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrHoursUnresolvable = apperror.New(
		apperror.CodeInvalidInput,
		"hours must be supplied or derivable from start_time and end_time",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be PENDING, APPROVED or REJECTED",
		http.StatusBadRequest,
	)
)
