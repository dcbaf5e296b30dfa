package payroll

import "ph-payroll/internal/shared/jsonb"

type CreatePayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`

	// Manual line items, editable while the record stays DRAFT.
	HolidayPay    *string `json:"holiday_pay"`
	OtherEarnings *string `json:"other_earnings"`
	Remarks       *string `json:"remarks"`
}

type UpdatePayrollRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`

	HolidayPay    *string `json:"holiday_pay"`
	OtherEarnings *string `json:"other_earnings"`
	Remarks       *string `json:"remarks"`
}

type MarkPaidRequest struct {
	Notes *string `json:"notes"`
}

type BatchItem struct {
	EmployeeID    string  `json:"employee_id" binding:"required,uuid"`
	HolidayPay    *string `json:"holiday_pay"`
	OtherEarnings *string `json:"other_earnings"`
}

type GenerateBatchRequest struct {
	StartDate string      `json:"start_date" binding:"required"`
	EndDate   string      `json:"end_date" binding:"required"`
	Items     []BatchItem `json:"items" binding:"required,min=1,dive"`
}

type BatchResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

type PayrollResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`

	DaysWorked       string `json:"days_worked"`
	RegularEarnings  string `json:"regular_earnings"`
	OvertimeHours    string `json:"overtime_hours"`
	OvertimeEarnings string `json:"overtime_earnings"`
	HolidayPay       string `json:"holiday_pay"`
	Allowances       string `json:"allowances"`
	OtherEarnings    string `json:"other_earnings"`
	GrossPay         string `json:"gross_pay"`

	SSSContribution        string `json:"sss_contribution"`
	PhilHealthContribution string `json:"philhealth_contribution"`
	PagIbigContribution    string `json:"pagibig_contribution"`
	TaxWithheld            string `json:"tax_withheld"`
	LoanDeductions         string `json:"loan_deductions"`
	OtherDeductions        string `json:"other_deductions"`
	TotalDeductions        string `json:"total_deductions"`

	NetPay string `json:"net_pay"`

	Status  string  `json:"status"`
	Remarks *string `json:"remarks,omitempty"`
	PaidAt  *string `json:"paid_at,omitempty"`
}

// BreakdownResponse returns the record plus the snapshots taken at
// processing time, decoded for the client.
type BreakdownResponse struct {
	Payroll           PayrollResponse `json:"payroll"`
	AttendanceDetails jsonb.JSONB     `json:"attendance_details"`
	OvertimeDetails   jsonb.JSONB     `json:"overtime_details"`
	DeductionDetails  jsonb.JSONB     `json:"deduction_details"`
}
