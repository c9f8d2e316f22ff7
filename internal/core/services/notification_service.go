package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
)

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationWriter
	now              func() time.Time
}

// NewNotificationService creates the notification creator. now defaults to time.Now.
func NewNotificationService(notificationRepo portsrepo.NotificationWriter, now ...func() time.Time) portssvc.NotificationWriterSvc {
	svc := &notificationService{BaseService: newBaseService(), notificationRepo: notificationRepo, now: time.Now}
	if len(now) > 0 && now[0] != nil {
		svc.now = now[0]
	}
	return svc
}

func (s *notificationService) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*domain.Notification, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}
	today := s.now().UTC()

	created, err := s.notificationRepo.SaveNotification(ctx, domain.Notification{
		RecipientID:       req.RecipientID,
		NotificationType:  req.NotificationType,
		RelatedRequestID:  req.RelatedRequestID,
		RelatedApprovalID: req.RelatedApprovalID,
		Subject:           req.Subject,
		MessageContent:    req.MessageContent,
		SendStatus:        domain.SendStatusPending,
		ScheduledSendDate: time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
		Priority:          priority,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create notification", slog.String("recipient_id", req.RecipientID))
		return nil, err
	}
	s.LogInfo(ctx, "Notification queued",
		slog.String("notification_record_id", created.ID),
		slog.String("notification_type", string(created.NotificationType)))
	return created, nil
}
