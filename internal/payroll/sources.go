package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// EmployeeSource answers step-1 resolution: the employee must exist for a
// processing pass to run at all.
type EmployeeSource interface {
	Exists(ctx context.Context, employeeID string) (bool, error)
}

// ProfileRates is the slice of the active salary profile a processing
// pass needs. Zero rates with ok=false mean no active profile, the pass
// degrades instead of failing.
type ProfileRates struct {
	Monthly decimal.Decimal
	Daily   decimal.Decimal
	Hourly  decimal.Decimal
}

type ProfileSource interface {
	ActiveRates(ctx context.Context, employeeID string) (ProfileRates, bool, error)
}

// Policy governs which attendance and overtime rows count toward pay.
// The default counts every row regardless of approval status; flipping
// ApprovedOnly narrows aggregation to APPROVED rows.
type Policy struct {
	ApprovedOnly bool
}
