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

type ApprovalRepository struct {
	BaseRepository
}

func newApprovalRepository(store portsrepo.RecordStore) portsrepo.ApprovalRepositoryFacade {
	return &ApprovalRepository{BaseRepository: BaseRepository{Store: store}}
}

var _ portsrepo.ApprovalRepositoryFacade = (*ApprovalRepository)(nil)

// FindDecidedApprovals lists approvals that left Pending and have a decision date, newest decision first.
func (r *ApprovalRepository) FindDecidedApprovals(ctx context.Context, status *domain.ApprovalStatus, limit int) ([]domain.ApprovalDecision, error) {
	filter := models.Filter{}.And(
		models.NotEq(models.FieldApprovalStatus, string(domain.ApprovalPending)),
		models.NotBlank(models.FieldDecisionDate),
	)
	if status != nil && *status != "" {
		filter = filter.And(models.Eq(models.FieldApprovalStatus, string(*status)))
	}

	recs, err := r.Store.Query(ctx, models.TableApprovals, models.Query{
		Filter: filter,
		Sort:   []models.SortField{{Field: models.FieldDecisionDate, Direction: models.Desc}},
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list approval decisions: %w", err)
	}

	out := make([]domain.ApprovalDecision, 0, len(recs))
	for _, rec := range recs {
		out = append(out, mapping.ToDomainApprovalDecision(rec))
	}
	return out, nil
}

// SaveApproval creates one Approvals record.
func (r *ApprovalRepository) SaveApproval(ctx context.Context, approval domain.Approval) (*domain.Approval, error) {
	rec, err := r.Store.Create(ctx, models.TableApprovals, mapping.ToApprovalFields(approval))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create approval for request %s: %w", apperrors.ErrPersistence, approval.PTORequestID, err)
	}
	created := mapping.ToDomainApproval(*rec)
	return &created, nil
}
