package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

const (
	outboxErrorMessageLimit = 500
	outboxRetryCap          = 10
	outboxRetryStep         = 15 * time.Second
)

// OutboxEvent is a row in outbox_events. Rows are written inside the same
// transaction as the domain change and drained by the producer worker.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type sqlExecer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

// WithTx returns a repository whose writes ride the caller's transaction,
// so the outbox row commits or rolls back with the domain row.
func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) conn() sqlExecer {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	const query = `INSERT INTO outbox_events
		(id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.conn().ExecContext(ctx, query,
		event.ID,
		event.RequestID,
		event.AggregateType,
		event.AggregateID,
		event.EventType,
		event.Topic,
		event.Payload,
		event.Status,
	)
	if err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	return nil
}

// ListPending returns pending and retryable failed events in insertion
// order, skipping rows whose backoff window has not elapsed.
func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	const query = `SELECT
		id::text,
		COALESCE(request_id, ''),
		aggregate_type,
		aggregate_id::text,
		event_type,
		topic,
		payload,
		status,
		retry_count,
		COALESCE(next_retry_at, created_at)
	FROM outbox_events
	WHERE status IN ($1, $2)
		AND (next_retry_at IS NULL OR next_retry_at <= NOW())
	ORDER BY created_at ASC
	LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, OutboxStatusPending, OutboxStatusFailed, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending outbox events: %w", err)
	}
	defer rows.Close()

	events := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(
			&e.ID,
			&e.RequestID,
			&e.AggregateType,
			&e.AggregateID,
			&e.EventType,
			&e.Topic,
			&e.Payload,
			&e.Status,
			&e.RetryCount,
			&e.NextRetryAt,
		); err != nil {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	const query = `UPDATE outbox_events
	SET status = $2,
		processed_at = NOW(),
		error_message = NULL,
		updated_at = NOW()
	WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusSent)
	return err
}

// MarkFailed records the delivery error and pushes the next attempt out
// by a linearly growing backoff, capped so a poison event keeps retrying
// at a bounded interval instead of stalling forever.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	query := fmt.Sprintf(`UPDATE outbox_events
	SET status = $2,
		retry_count = retry_count + 1,
		error_message = LEFT($3, %d),
		next_retry_at = NOW() + (LEAST(retry_count + 1, %d) * INTERVAL '%d seconds'),
		updated_at = NOW()
	WHERE id = $1`, outboxErrorMessageLimit, outboxRetryCap, int(outboxRetryStep.Seconds()))

	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusFailed, reason)
	return err
}

// ValidateOutboxEvent rejects events that could never be delivered,
// before they are committed alongside the domain change.
func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox event id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox event topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox event payload is empty")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("unknown outbox status %q", event.Status)
	}
}
