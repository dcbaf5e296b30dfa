package deduction

type LoanInput struct {
	Name    string  `json:"name" binding:"required"`
	Amount  string  `json:"amount" binding:"required"`
	Balance *string `json:"balance"`
}

type CreateDeductionSettingRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`

	// Contribution fields left empty are filled in from the statutory
	// tables using the employee's active monthly rate.
	SSSContribution        *string `json:"sss_contribution"`
	PhilHealthContribution *string `json:"philhealth_contribution"`
	PagIbigContribution    *string `json:"pagibig_contribution"`

	TaxRate      *string `json:"tax_rate"`
	TaxExemption *string `json:"tax_exemption"`
	TaxStatus    string  `json:"tax_status"`

	Loans           []LoanInput `json:"loans"`
	OtherDeductions *string     `json:"other_deductions"`
	Allowances      *string     `json:"allowances"`
	OtherAdditions  *string     `json:"other_additions"`

	EffectiveDate string  `json:"effective_date" binding:"required"`
	EndDate       *string `json:"end_date"`
	Activate      bool    `json:"activate"`
}

type UpdateDeductionSettingRequest struct {
	SSSContribution        *string `json:"sss_contribution"`
	PhilHealthContribution *string `json:"philhealth_contribution"`
	PagIbigContribution    *string `json:"pagibig_contribution"`

	TaxRate      *string `json:"tax_rate"`
	TaxExemption *string `json:"tax_exemption"`
	TaxStatus    *string `json:"tax_status"`

	Loans           []LoanInput `json:"loans"`
	OtherDeductions *string     `json:"other_deductions"`
	Allowances      *string     `json:"allowances"`
	OtherAdditions  *string     `json:"other_additions"`

	EffectiveDate *string `json:"effective_date"`
	EndDate       *string `json:"end_date"`
}

type LoanResponse struct {
	Name    string  `json:"name"`
	Amount  string  `json:"amount"`
	Balance *string `json:"balance,omitempty"`
}

type DeductionSettingResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`

	SSSContribution        string `json:"sss_contribution"`
	PhilHealthContribution string `json:"philhealth_contribution"`
	PagIbigContribution    string `json:"pagibig_contribution"`

	TaxRate      string `json:"tax_rate"`
	TaxExemption string `json:"tax_exemption"`
	TaxStatus    string `json:"tax_status"`

	Loans           []LoanResponse `json:"loans"`
	OtherDeductions string         `json:"other_deductions"`
	Allowances      string         `json:"allowances"`
	OtherAdditions  string         `json:"other_additions"`

	EffectiveDate string  `json:"effective_date"`
	EndDate       *string `json:"end_date,omitempty"`
	IsActive      bool    `json:"is_active"`
}
