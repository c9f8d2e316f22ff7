package recordstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/SscSPs/pto_ledger_service/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type BalanceRepository struct {
	BaseRepository
}

// newBalanceRepository creates a new repository for PTO balance records.
func newBalanceRepository(store portsrepo.RecordStore) portsrepo.BalanceRepositoryFacade {
	return &BalanceRepository{BaseRepository: BaseRepository{Store: store}}
}

// Ensure BalanceRepository implements portsrepo.BalanceRepositoryFacade
var _ portsrepo.BalanceRepositoryFacade = (*BalanceRepository)(nil)

// FindCurrentBalance fetches at most two current records so duplicates are detected, not hidden.
func (r *BalanceRepository) FindCurrentBalance(ctx context.Context, employeeID string) (*domain.BalanceRecord, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employee ID is required", apperrors.ErrValidation)
	}

	recs, err := r.Store.Query(ctx, models.TablePTOBalances, models.Query{
		Filter: models.Filter{}.And(
			models.Eq(models.FieldEmployee, employeeID),
			models.Eq(models.FieldIsCurrentBalance, true),
		),
		Limit: 2,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up current balance for employee %s: %w", employeeID, err)
	}

	switch len(recs) {
	case 0:
		return nil, fmt.Errorf("%w: no current PTO balance found for employee %s", apperrors.ErrNotFound, employeeID)
	case 1:
	default:
		return nil, fmt.Errorf("%w: employee %s has more than one current balance record (%s, %s)",
			apperrors.ErrDataIntegrity, employeeID, recs[0].ID, recs[1].ID)
	}

	balance, err := mapping.ToDomainBalance(recs[0])
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// UpdateBalance writes newBalance only if the record still holds expected.
func (r *BalanceRepository) UpdateBalance(ctx context.Context, recordID string, expected, newBalance decimal.Decimal) (*domain.BalanceRecord, error) {
	rec, err := r.Store.Update(ctx, models.TablePTOBalances, recordID,
		mapping.ToBalanceFields(newBalance),
		models.Precondition{
			Field:   models.FieldCurrentBalance,
			Equals:  models.Number(expected),
			OrBlank: expected.IsZero(),
		})
	if err != nil {
		return nil, fmt.Errorf("failed to update balance record %s: %w", recordID, err)
	}
	balance, err := mapping.ToDomainBalance(*rec)
	if err != nil {
		return nil, err
	}
	return &balance, nil
}
