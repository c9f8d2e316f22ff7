package services

import (
	"context"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
)

// ApprovalWriterSvc creates approval records
type ApprovalWriterSvc interface {
	CreateApproval(ctx context.Context, req dto.CreateApprovalRequest) (*domain.Approval, error)
}

// NotificationWriterSvc creates notification records for an external sender
type NotificationWriterSvc interface {
	CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*domain.Notification, error)
}

// HealthSvc reports whether the record store is reachable
type HealthSvc interface {
	Check(ctx context.Context) error
}
