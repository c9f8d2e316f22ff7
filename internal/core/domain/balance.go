package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceRecord is the single authoritative current leave balance for one employee.
type BalanceRecord struct {
	RecordID       string          `json:"recordID"`       // Store-assigned ID
	EmployeeID     string          `json:"employeeID"`     // Link -> Employee
	CurrentBalance decimal.Decimal `json:"currentBalance"` // Days, never negative
	IsCurrent      bool            `json:"isCurrent"`
	CreatedTime    time.Time       `json:"createdTime"`
}
