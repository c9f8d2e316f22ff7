package events

import (
	"context"
	"time"
)

// EventType names a ledger event on the wire.
type EventType string

const (
	BalanceUpdated   EventType = "ledger.balance_updated"
	AuditWriteFailed EventType = "ledger.audit_write_failed"
)

// LedgerEvent is published after every balance mutation attempt that reached the store.
type LedgerEvent struct {
	Type       EventType `json:"type"`
	EmployeeID string    `json:"employeeId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
	Error      string    `json:"error,omitempty"`
}

// Publisher delivers ledger events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event LedgerEvent) error
	Close() error
}
