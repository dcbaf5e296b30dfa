package salaryprofile

type CreateSalaryProfileRequest struct {
	EmployeeID    string  `json:"employee_id" binding:"required,uuid"`
	MonthlyRate   string  `json:"monthly_rate" binding:"required"`
	EffectiveDate string  `json:"effective_date" binding:"required"`
	EndDate       *string `json:"end_date"`
	Activate      bool    `json:"activate"`
}

type UpdateSalaryProfileRequest struct {
	MonthlyRate   string  `json:"monthly_rate" binding:"required"`
	EffectiveDate string  `json:"effective_date" binding:"required"`
	EndDate       *string `json:"end_date"`
}

type SalaryProfileResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	MonthlyRate     string  `json:"monthly_rate"`
	SemiMonthlyRate string  `json:"semi_monthly_rate"`
	DailyRate       string  `json:"daily_rate"`
	HourlyRate      string  `json:"hourly_rate"`
	MinuteRate      string  `json:"minute_rate"`
	EffectiveDate   string  `json:"effective_date"`
	EndDate         *string `json:"end_date,omitempty"`
	IsActive        bool    `json:"is_active"`
}
