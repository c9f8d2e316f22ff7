package repositories

import (
	"context"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
)

// TransactionReader defines read operations for the balance audit trail
type TransactionReader interface {
	// ListTransactionsByEmployee retrieves a page of an employee's transactions, newest first.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactionsByEmployee(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for the balance audit trail.
// Transactions are append-only: there is no update or delete.
type TransactionWriter interface {
	// RecordTransaction appends one audit entry and returns it with its store-assigned identity.
	RecordTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
