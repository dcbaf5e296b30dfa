package attendanceerrors

import (
	"net/http"

	"ph-payroll/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
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
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrDuplicateAttendance = apperror.New(
		apperror.CodeConflict,
		"attendance record already exists for this employee and date",
		http.StatusConflict,
	)
	ErrAbsentWithTimes = apperror.New(
		apperror.CodeInvalidInput,
		"absent records cannot carry time_in or time_out",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be PENDING, APPROVED or REJECTED",
		http.StatusBadRequest,
	)
	ErrDaysWorkedOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"days_worked must be between 0 and 1",
		http.StatusBadRequest,
	)
)
