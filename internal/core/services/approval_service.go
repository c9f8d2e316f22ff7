package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
)

type approvalService struct {
	BaseService
	approvalRepo portsrepo.ApprovalWriter
}

func NewApprovalService(approvalRepo portsrepo.ApprovalWriter) portssvc.ApprovalWriterSvc {
	return &approvalService{BaseService: newBaseService(), approvalRepo: approvalRepo}
}

func (s *approvalService) CreateApproval(ctx context.Context, req dto.CreateApprovalRequest) (*domain.Approval, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}
	status := req.ApprovalStatus
	if status == "" {
		status = domain.ApprovalPending
	}

	created, err := s.approvalRepo.SaveApproval(ctx, domain.Approval{
		PTORequestID:   req.PTORequestID,
		ApproverID:     req.ApproverID,
		ApprovalStatus: status,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create approval", slog.String("pto_request_id", req.PTORequestID))
		return nil, err
	}
	s.LogInfo(ctx, "Approval created", slog.String("approval_record_id", created.ID), slog.String("pto_request_id", req.PTORequestID))
	return created, nil
}
