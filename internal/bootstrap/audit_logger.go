package bootstrap

import "context"

// AuditLog is one trail entry. Meta carries free-form context such as the
// signal name on shutdown or the actor on payroll actions.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
