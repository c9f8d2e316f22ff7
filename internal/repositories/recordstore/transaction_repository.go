package recordstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/SscSPs/pto_ledger_service/internal/utils/mapping"
)

type TransactionRepository struct {
	BaseRepository
}

// newTransactionRepository creates a new repository for the balance audit trail.
func newTransactionRepository(store portsrepo.RecordStore) portsrepo.TransactionRepositoryFacade {
	return &TransactionRepository{BaseRepository: BaseRepository{Store: store}}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// RecordTransaction appends one Balance Transactions record. Any store failure is a persistence error.
func (r *TransactionRepository) RecordTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	rec, err := r.Store.Create(ctx, models.TableBalanceTransactions, mapping.ToTransactionFields(txn))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to record %s transaction for employee %s: %w",
			apperrors.ErrPersistence, txn.TransactionType, txn.EmployeeID, err)
	}

	recorded := txn
	recorded.TransactionID = rec.ID
	recorded.CreatedAt = rec.CreatedTime
	return &recorded, nil
}

// ListTransactionsByEmployee reads the employee's audit chain, newest first. Transaction Date
// only has day precision, so entries of one day are ordered by creation time.
func (r *TransactionRepository) ListTransactionsByEmployee(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if employeeID == "" {
		return nil, nil, fmt.Errorf("%w: employee ID is required", apperrors.ErrValidation)
	}
	q := models.Query{
		Filter: models.Filter{}.And(models.Eq(models.FieldEmployee, employeeID)),
		Sort: []models.SortField{
			{Field: models.FieldTransactionDate, Direction: models.Desc},
			{Field: models.FieldCreated, Direction: models.Desc},
		},
		PageSize: limit,
	}
	if nextToken != nil {
		q.Offset = *nextToken
	}

	page, err := r.Store.QueryPage(ctx, models.TableBalanceTransactions, q)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for employee %s: %w", employeeID, err)
	}

	txns := make([]domain.Transaction, 0, len(page.Records))
	for _, rec := range page.Records {
		txn, err := mapping.ToDomainTransaction(rec)
		if err != nil {
			return nil, nil, err
		}
		txns = append(txns, txn)
	}

	var next *string
	if page.Offset != "" {
		offset := page.Offset
		next = &offset
	}
	return txns, next, nil
}
