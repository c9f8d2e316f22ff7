package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a balance mutation.
type TransactionType string

const (
	Deduction  TransactionType = "Deduction"
	Credit     TransactionType = "Credit"
	Adjustment TransactionType = "Adjustment"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case Deduction, Credit, Adjustment:
		return true
	}
	return false
}

// Transaction is an immutable audit entry describing one balance mutation.
type Transaction struct {
	TransactionID    string          `json:"transactionID"` // Store-assigned ID, empty until recorded
	EmployeeID       string          `json:"employeeID"`
	TransactionType  TransactionType `json:"transactionType"`
	DaysChanged      decimal.Decimal `json:"daysChanged"` // Signed delta as requested
	BalanceBefore    decimal.Decimal `json:"balanceBefore"`
	BalanceAfter     decimal.Decimal `json:"balanceAfter"`
	TransactionDate  time.Time       `json:"transactionDate"` // Calendar date (UTC)
	RelatedRequestID *string         `json:"relatedRequestID,omitempty"`
	Reason           string          `json:"reason"`
	AuditFields
}

// IsConsistent reports whether BalanceAfter equals max(0, BalanceBefore + DaysChanged).
func (t Transaction) IsConsistent() bool {
	expected := t.BalanceBefore.Add(t.DaysChanged)
	if expected.IsNegative() {
		expected = decimal.Zero
	}
	return expected.Equal(t.BalanceAfter)
}
