package dto

import (
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
)

// CreateNotificationRequest queues a notification for an external sender.
type CreateNotificationRequest struct {
	RecipientID       string                  `json:"recipientId" binding:"required"`
	NotificationType  domain.NotificationType `json:"notificationType" binding:"required,oneof='Request Submitted' 'Approval Needed' 'Request Approved' 'Request Rejected' 'Balance Updated' Reminder"`
	RelatedRequestID  *string                 `json:"relatedRequestId"`
	RelatedApprovalID *string                 `json:"relatedApprovalId"`
	Subject           string                  `json:"subject" binding:"required"`
	MessageContent    string                  `json:"messageContent" binding:"required"`
	Priority          domain.Priority         `json:"priority" binding:"omitempty,oneof=Low Normal High Urgent"` // Defaults to Normal
}

// NotificationResponse mirrors a created notification record.
type NotificationResponse struct {
	ID                string                  `json:"id"`
	NotificationID    *int64                  `json:"notificationId"`
	RecipientID       string                  `json:"recipientId"`
	NotificationType  domain.NotificationType `json:"notificationType"`
	Subject           string                  `json:"subject"`
	SendStatus        string                  `json:"sendStatus"`
	ScheduledSendDate string                  `json:"scheduledSendDate"`
	Priority          domain.Priority         `json:"priority"`
	CreatedTime       time.Time               `json:"createdTime"`
	Success           bool                    `json:"success"`
}

// ToNotificationResponse converts a domain.Notification to NotificationResponse DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:                n.ID,
		NotificationID:    n.NotificationID,
		RecipientID:       n.RecipientID,
		NotificationType:  n.NotificationType,
		Subject:           n.Subject,
		SendStatus:        n.SendStatus,
		ScheduledSendDate: n.ScheduledSendDate.Format(domain.DateLayout),
		Priority:          n.Priority,
		CreatedTime:       n.CreatedTime,
		Success:           true,
	}
}
