package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MutationStatus describes how far a ledger update got.
type MutationStatus string

const (
	// StatusApplied means both the balance write and the audit write succeeded.
	StatusApplied MutationStatus = "applied"
	// StatusPartial means the balance was written but the audit transaction was not.
	StatusPartial MutationStatus = "partial"
)

// LedgerUpdateResult is the outcome of one orchestrated balance mutation.
type LedgerUpdateResult struct {
	EmployeeID      string
	BalanceRecordID string
	TransactionID   string
	TransactionType TransactionType
	PreviousBalance decimal.Decimal
	DaysChanged     decimal.Decimal // Signed
	NewBalance      decimal.Decimal
	RequestID       *string
	UpdateDate      time.Time
	Status          MutationStatus
}

// Success reports whether the update fully completed.
func (r LedgerUpdateResult) Success() bool {
	return r.Status == StatusApplied
}

// AuditRecorded reports whether a transaction record exists for this update.
func (r LedgerUpdateResult) AuditRecorded() bool {
	return r.TransactionID != ""
}
