package events

import "time"

const PayrollStatusChangedTopic = "payroll.run.status.v1"

type PayrollStatusChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayrollID  string    `json:"payroll_id"`
	EmployeeID string    `json:"employee_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	NetPay     string    `json:"net_pay"`
	OccurredAt time.Time `json:"occurred_at"`
}
