package dto

import (
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyDeductionRequest deducts approved PTO days from an employee's balance.
type ApplyDeductionRequest struct {
	EmployeeID   string          `json:"employeeId" binding:"required"`
	DaysToDeduct decimal.Decimal `json:"daysToDeduct" binding:"required,gt=0"`
	RequestID    *string         `json:"requestId"` // Optional related PTO request
	Reason       string          `json:"reason"`    // Optional, defaults to "PTO request deduction - N days"
	Actor        string          `json:"actor"`     // Optional, defaults to the configured automation actor
}

// ApplyCreditRequest adds days to an employee's balance.
type ApplyCreditRequest struct {
	EmployeeID   string          `json:"employeeId" binding:"required"`
	DaysToCredit decimal.Decimal `json:"daysToCredit" binding:"required,gt=0"`
	RequestID    *string         `json:"requestId"`
	Reason       string          `json:"reason"`
	Actor        string          `json:"actor"`
}

// ApplyAdjustmentRequest applies a signed correction to an employee's balance.
type ApplyAdjustmentRequest struct {
	EmployeeID  string          `json:"employeeId" binding:"required"`
	DaysChanged decimal.Decimal `json:"daysChanged" binding:"required"` // Signed, non-zero
	RequestID   *string         `json:"requestId"`
	Reason      string          `json:"reason"`
	Actor       string          `json:"actor"`
}

// LedgerMutation is the type-agnostic form every ledger request is reduced to.
type LedgerMutation struct {
	EmployeeID      string
	TransactionType domain.TransactionType
	Days            decimal.Decimal // As given by the caller; the sign convention is applied later
	RequestID       *string
	Reason          string
	Actor           string
}

// ToMutation converts the request into a LedgerMutation.
func (r ApplyDeductionRequest) ToMutation() LedgerMutation {
	return LedgerMutation{EmployeeID: r.EmployeeID, TransactionType: domain.Deduction, Days: r.DaysToDeduct, RequestID: r.RequestID, Reason: r.Reason, Actor: r.Actor}
}

// ToMutation converts the request into a LedgerMutation.
func (r ApplyCreditRequest) ToMutation() LedgerMutation {
	return LedgerMutation{EmployeeID: r.EmployeeID, TransactionType: domain.Credit, Days: r.DaysToCredit, RequestID: r.RequestID, Reason: r.Reason, Actor: r.Actor}
}

// ToMutation converts the request into a LedgerMutation.
func (r ApplyAdjustmentRequest) ToMutation() LedgerMutation {
	return LedgerMutation{EmployeeID: r.EmployeeID, TransactionType: domain.Adjustment, Days: r.DaysChanged, RequestID: r.RequestID, Reason: r.Reason, Actor: r.Actor}
}

// LedgerUpdateResponse is returned by every ledger mutation endpoint.
type LedgerUpdateResponse struct {
	EmployeeID      string                 `json:"employeeId"`
	BalanceRecordID string                 `json:"balanceRecordId"`
	TransactionID   string                 `json:"transactionId"`
	TransactionType domain.TransactionType `json:"transactionType"`
	PreviousBalance decimal.Decimal        `json:"previousBalance"`
	DaysDeducted    *decimal.Decimal       `json:"daysDeducted,omitempty"` // Deductions only
	DaysChanged     decimal.Decimal        `json:"daysChanged"`            // Signed
	NewBalance      decimal.Decimal        `json:"newBalance"`
	RequestID       *string                `json:"requestId"`
	UpdateDate      string                 `json:"updateDate"`
	Status          domain.MutationStatus  `json:"status"`
	Success         bool                   `json:"success"`
	AuditRecorded   bool                   `json:"auditRecorded"`
	Error           string                 `json:"error,omitempty"` // Set on partial writes
}

// UpdateDateLayout renders timestamps with millisecond precision in UTC.
const UpdateDateLayout = "2006-01-02T15:04:05.000Z"

// ToLedgerUpdateResponse converts a domain.LedgerUpdateResult to its response DTO.
func ToLedgerUpdateResponse(r *domain.LedgerUpdateResult) LedgerUpdateResponse {
	resp := LedgerUpdateResponse{
		EmployeeID:      r.EmployeeID,
		BalanceRecordID: r.BalanceRecordID,
		TransactionID:   r.TransactionID,
		TransactionType: r.TransactionType,
		PreviousBalance: r.PreviousBalance,
		DaysChanged:     r.DaysChanged,
		NewBalance:      r.NewBalance,
		RequestID:       r.RequestID,
		UpdateDate:      r.UpdateDate.UTC().Format(UpdateDateLayout),
		Status:          r.Status,
		Success:         r.Success(),
		AuditRecorded:   r.AuditRecorded(),
	}
	if r.TransactionType == domain.Deduction {
		deducted := r.DaysChanged.Abs()
		resp.DaysDeducted = &deducted
	}
	return resp
}

// BalanceResponse is the current balance of one employee.
type BalanceResponse struct {
	EmployeeID      string          `json:"employeeId"`
	BalanceRecordID string          `json:"balanceRecordId"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	CreatedTime     time.Time       `json:"createdTime"`
}

// ToBalanceResponse converts a domain.BalanceRecord to BalanceResponse DTO.
func ToBalanceResponse(b *domain.BalanceRecord) BalanceResponse {
	return BalanceResponse{
		EmployeeID:      b.EmployeeID,
		BalanceRecordID: b.RecordID,
		CurrentBalance:  b.CurrentBalance,
		CreatedTime:     b.CreatedTime,
	}
}
