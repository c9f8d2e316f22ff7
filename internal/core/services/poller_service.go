package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
)

const (
	// SubmittedRequestsLimit caps one poll of the new request trigger.
	SubmittedRequestsLimit = 100
	// DecidedApprovalsLimit caps one poll of the approval decision trigger.
	DecidedApprovalsLimit = 50
)

type pollerService struct {
	BaseService
	requestRepo  portsrepo.PTORequestReader
	approvalRepo portsrepo.ApprovalReader
}

// NewPollerService creates the change poller behind the two triggers.
func NewPollerService(requestRepo portsrepo.PTORequestReader, approvalRepo portsrepo.ApprovalReader) portssvc.ChangePollerSvc {
	return &pollerService{
		BaseService:  newBaseService(),
		requestRepo:  requestRepo,
		approvalRepo: approvalRepo,
	}
}

func (s *pollerService) ListSubmittedRequests(ctx context.Context, params dto.PollRequestsParams) ([]domain.PTORequest, error) {
	if err := s.Validate(params); err != nil {
		return nil, err
	}
	var requestType *domain.RequestType
	if params.RequestType != "" {
		rt := domain.RequestType(params.RequestType)
		requestType = &rt
	}

	reqs, err := s.requestRepo.FindSubmittedRequests(ctx, requestType, SubmittedRequestsLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to poll submitted PTO requests")
		return nil, err
	}
	s.LogDebug(ctx, "Polled submitted PTO requests", slog.Int("count", len(reqs)), slog.String("request_type", params.RequestType))
	return reqs, nil
}

func (s *pollerService) ListApprovalDecisions(ctx context.Context, params dto.PollApprovalsParams) ([]domain.ApprovalDecision, error) {
	if err := s.Validate(params); err != nil {
		return nil, err
	}
	var status *domain.ApprovalStatus
	if params.StatusFilter != "" {
		st := domain.ApprovalStatus(params.StatusFilter)
		status = &st
	}

	decisions, err := s.approvalRepo.FindDecidedApprovals(ctx, status, DecidedApprovalsLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to poll approval decisions")
		return nil, err
	}
	s.LogDebug(ctx, "Polled approval decisions", slog.Int("count", len(decisions)), slog.String("status_filter", params.StatusFilter))
	return decisions, nil
}
