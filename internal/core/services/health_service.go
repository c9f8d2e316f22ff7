package services

import (
	"context"

	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
)

type healthService struct {
	BaseService
	store portsrepo.RecordStore
}

func NewHealthService(store portsrepo.RecordStore) portssvc.HealthSvc {
	return &healthService{store: store}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Record store health check failed")
		return err
	}
	return nil
}
