package attendance

type CreateAttendanceRequest struct {
	EmployeeID     string  `json:"employee_id" binding:"required,uuid"`
	AttendanceDate string  `json:"attendance_date" binding:"required"`
	TimeIn         *string `json:"time_in"`
	TimeOut        *string `json:"time_out"`
	DaysWorked     *string `json:"days_worked"`
	LateMinutes    int     `json:"late_minutes"`
	IsAbsent       bool    `json:"is_absent"`
	Notes          *string `json:"notes"`
}

type UpdateAttendanceRequest struct {
	TimeIn      *string `json:"time_in"`
	TimeOut     *string `json:"time_out"`
	DaysWorked  *string `json:"days_worked"`
	LateMinutes int     `json:"late_minutes"`
	IsAbsent    bool    `json:"is_absent"`
	Notes       *string `json:"notes"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	AttendanceDate string  `json:"attendance_date"`
	TimeIn         *string `json:"time_in,omitempty"`
	TimeOut        *string `json:"time_out,omitempty"`
	DaysWorked     string  `json:"days_worked"`
	LateMinutes    int     `json:"late_minutes"`
	IsAbsent       bool    `json:"is_absent"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
}
