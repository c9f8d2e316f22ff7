package logevents

import (
	"context"
	"log/slog"

	"github.com/SscSPs/pto_ledger_service/internal/core/ports/events"
)

// Publisher logs events instead of shipping them. Used when no broker is configured.
type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{logger: logger}
}

var _ events.Publisher = (*Publisher)(nil)

func (p *Publisher) Publish(ctx context.Context, event events.LedgerEvent) error {
	level := slog.LevelDebug
	if event.Type == events.AuditWriteFailed {
		level = slog.LevelWarn
	}
	p.logger.Log(ctx, level, "Ledger event",
		slog.String("event_type", string(event.Type)),
		slog.String("employee_id", event.EmployeeID),
		slog.Time("occurred_at", event.OccurredAt),
		slog.Any("payload", event.Payload))
	return nil
}

func (p *Publisher) Close() error { return nil }
