package recordstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/SscSPs/pto_ledger_service/internal/utils/mapping"
)

type PTORequestRepository struct {
	BaseRepository
}

func newPTORequestRepository(store portsrepo.RecordStore) portsrepo.PTORequestReader {
	return &PTORequestRepository{BaseRepository: BaseRepository{Store: store}}
}

var _ portsrepo.PTORequestReader = (*PTORequestRepository)(nil)

// FindSubmittedRequests lists Submitted requests, newest submission first.
func (r *PTORequestRepository) FindSubmittedRequests(ctx context.Context, requestType *domain.RequestType, limit int) ([]domain.PTORequest, error) {
	filter := models.Filter{}.And(models.Eq(models.FieldRequestStatus, domain.RequestStatusSubmitted))
	if requestType != nil && *requestType != "" {
		filter = filter.And(models.Eq(models.FieldRequestType, string(*requestType)))
	}

	recs, err := r.Store.Query(ctx, models.TablePTORequests, models.Query{
		Filter: filter,
		Sort:   []models.SortField{{Field: models.FieldSubmittedDate, Direction: models.Desc}},
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list submitted PTO requests: %w", err)
	}

	out := make([]domain.PTORequest, 0, len(recs))
	for _, rec := range recs {
		out = append(out, mapping.ToDomainPTORequest(rec))
	}
	return out, nil
}
