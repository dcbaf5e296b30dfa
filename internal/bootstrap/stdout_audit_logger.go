package bootstrap

import (
	"context"
	"time"

	"ph-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}

// Record satisfies the payroll service's auditor with the request context
// folded into the trail entry.
func (l *StdoutAuditLogger) Record(ctx context.Context, action, entityID string) {
	l.Log(ctx, AuditLog{
		Action:  action,
		Message: "payroll action recorded",
		Meta: map[string]any{
			"entity_id":  entityID,
			"request_id": contextutil.GetRequestID(ctx),
			"actor_id":   contextutil.GetActorID(ctx),
		},
	})
}
