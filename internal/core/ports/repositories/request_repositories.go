package repositories

import (
	"context"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
)

// PTORequestReader defines read operations for PTO requests
type PTORequestReader interface {
	// FindSubmittedRequests lists requests in Submitted status, newest submission first.
	FindSubmittedRequests(ctx context.Context, requestType *domain.RequestType, limit int) ([]domain.PTORequest, error)
}

// ApprovalReader defines read operations for approvals
type ApprovalReader interface {
	// FindDecidedApprovals lists approvals that are no longer pending and carry a decision date.
	FindDecidedApprovals(ctx context.Context, status *domain.ApprovalStatus, limit int) ([]domain.ApprovalDecision, error)
}

// ApprovalWriter defines write operations for approvals
type ApprovalWriter interface {
	SaveApproval(ctx context.Context, approval domain.Approval) (*domain.Approval, error)
}

// ApprovalRepositoryFacade combines all approval-related repository interfaces
type ApprovalRepositoryFacade interface {
	ApprovalReader
	ApprovalWriter
}

// NotificationWriter defines write operations for notifications
type NotificationWriter interface {
	SaveNotification(ctx context.Context, notification domain.Notification) (*domain.Notification, error)
}
