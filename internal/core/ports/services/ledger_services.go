package services

import (
	"context"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
)

// LedgerReaderSvc defines read operations for balances and their audit trail
type LedgerReaderSvc interface {
	// GetCurrentBalance returns the employee's single current balance record.
	GetCurrentBalance(ctx context.Context, employeeID string) (*domain.BalanceRecord, error)

	// ListTransactions retrieves a page of the employee's audit trail, newest first.
	ListTransactions(ctx context.Context, employeeID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ExportTransactions reads the employee's whole audit trail, newest first.
	ExportTransactions(ctx context.Context, employeeID string) ([]domain.Transaction, error)
}

// LedgerWriterSvc defines the balance mutations. Each one reads the current balance,
// writes the floored new balance and appends one audit transaction.
//
// When the balance write succeeds but the audit write fails, the returned result has
// Status == domain.StatusPartial and the error wraps apperrors.ErrPartialWrite.
type LedgerWriterSvc interface {
	ApplyDeduction(ctx context.Context, req dto.ApplyDeductionRequest) (*domain.LedgerUpdateResult, error)
	ApplyCredit(ctx context.Context, req dto.ApplyCreditRequest) (*domain.LedgerUpdateResult, error)
	ApplyAdjustment(ctx context.Context, req dto.ApplyAdjustmentRequest) (*domain.LedgerUpdateResult, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
