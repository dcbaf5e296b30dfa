package employee

type CreateEmployeeRequest struct {
	EmployeeNumber   string  `json:"employee_number"`
	FullName         string  `json:"full_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            *string `json:"phone"`
	Position         *string `json:"position"`
	Department       *string `json:"department"`
	HireDate         string  `json:"hire_date" binding:"required"`
	EmploymentStatus string  `json:"employment_status"`
}

type UpdateEmployeeRequest struct {
	FullName         string  `json:"full_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            *string `json:"phone"`
	Position         *string `json:"position"`
	Department       *string `json:"department"`
	HireDate         string  `json:"hire_date" binding:"required"`
	EmploymentStatus string  `json:"employment_status"`
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeNumber   string  `json:"employee_number"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone,omitempty"`
	Position         *string `json:"position,omitempty"`
	Department       *string `json:"department,omitempty"`
	HireDate         string  `json:"hire_date"`
	EmploymentStatus string  `json:"employment_status"`
}
