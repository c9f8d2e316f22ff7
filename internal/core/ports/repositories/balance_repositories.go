package repositories

import (
	"context"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceReader defines read operations for employee balance records
type BalanceReader interface {
	// FindCurrentBalance returns the employee's single current balance record.
	// It returns apperrors.ErrNotFound when none exists and apperrors.ErrDataIntegrity when more than one does.
	FindCurrentBalance(ctx context.Context, employeeID string) (*domain.BalanceRecord, error)
}

// BalanceWriter defines write operations for employee balance records
type BalanceWriter interface {
	// UpdateBalance sets the record's balance to newBalance only if it still holds expected.
	UpdateBalance(ctx context.Context, recordID string, expected, newBalance decimal.Decimal) (*domain.BalanceRecord, error)
}

// BalanceRepositoryFacade combines all balance-related repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
