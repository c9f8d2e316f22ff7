package services

import (
	"context"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
)

// ChangePollerSvc lists recent items for the polling triggers. It does not remember
// what it returned before; deduplication belongs to the caller.
type ChangePollerSvc interface {
	ListSubmittedRequests(ctx context.Context, params dto.PollRequestsParams) ([]domain.PTORequest, error)
	ListApprovalDecisions(ctx context.Context, params dto.PollApprovalsParams) ([]domain.ApprovalDecision, error)
}
