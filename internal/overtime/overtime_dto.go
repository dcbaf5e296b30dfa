package overtime

type CreateOvertimeRequest struct {
	AttendanceID   string  `json:"attendance_id" binding:"required,uuid"`
	Type           string  `json:"type" binding:"required"`
	Hours          *string `json:"hours"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	RateMultiplier *string `json:"rate_multiplier"`
	Reason         *string `json:"reason"`
}

type UpdateOvertimeRequest struct {
	Type           string  `json:"type" binding:"required"`
	Hours          *string `json:"hours"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	RateMultiplier *string `json:"rate_multiplier"`
	Reason         *string `json:"reason"`
}

type OvertimeResponse struct {
	ID             string  `json:"id"`
	AttendanceID   string  `json:"attendance_id"`
	Type           string  `json:"type"`
	Hours          string  `json:"hours"`
	StartTime      *string `json:"start_time,omitempty"`
	EndTime        *string `json:"end_time,omitempty"`
	RateMultiplier string  `json:"rate_multiplier"`
	Status         string  `json:"status"`
	Reason         *string `json:"reason,omitempty"`
}
