package dto

import (
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
)

// CreateApprovalRequest creates an approval record linking a PTO request to its approver.
type CreateApprovalRequest struct {
	PTORequestID   string                `json:"ptoRequestId" binding:"required"`
	ApproverID     string                `json:"approverId" binding:"required"`
	ApprovalStatus domain.ApprovalStatus `json:"approvalStatus" binding:"omitempty,oneof=Pending Approved Rejected Delegated"` // Defaults to Pending
}

// ApprovalResponse mirrors a created approval record.
type ApprovalResponse struct {
	ID             string                `json:"id"`
	ApprovalID     *int64                `json:"approvalId"`
	PTORequestID   string                `json:"ptoRequestId"`
	ApproverID     string                `json:"approverId"`
	ApprovalStatus domain.ApprovalStatus `json:"approvalStatus"`
	CreatedTime    time.Time             `json:"createdTime"`
	Success        bool                  `json:"success"`
}

// ToApprovalResponse converts a domain.Approval to ApprovalResponse DTO.
func ToApprovalResponse(a *domain.Approval) ApprovalResponse {
	return ApprovalResponse{
		ID:             a.ID,
		ApprovalID:     a.ApprovalID,
		PTORequestID:   a.PTORequestID,
		ApproverID:     a.ApproverID,
		ApprovalStatus: a.ApprovalStatus,
		CreatedTime:    a.CreatedTime,
		Success:        true,
	}
}
