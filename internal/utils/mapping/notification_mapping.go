package mapping

import (
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/SscSPs/pto_ledger_service/internal/models"
)

// ToNotificationFields converts a new notification into record fields.
func ToNotificationFields(d domain.Notification) models.Fields {
	fields := models.Fields{
		models.FieldRecipient:         models.Link(d.RecipientID),
		models.FieldNotificationType:  string(d.NotificationType),
		models.FieldSubject:           d.Subject,
		models.FieldMessageContent:    d.MessageContent,
		models.FieldSendStatus:        d.SendStatus,
		models.FieldScheduledSendDate: d.ScheduledSendDate.UTC().Format(domain.DateLayout),
		models.FieldPriority:          string(d.Priority),
	}
	if d.RelatedRequestID != nil && *d.RelatedRequestID != "" {
		fields[models.FieldRelatedRequest] = models.Link(*d.RelatedRequestID)
	}
	if d.RelatedApprovalID != nil && *d.RelatedApprovalID != "" {
		fields[models.FieldRelatedApproval] = models.Link(*d.RelatedApprovalID)
	}
	return fields
}

// ToDomainNotification converts a created Notifications record back to the domain type.
func ToDomainNotification(rec models.Record) domain.Notification {
	f := rec.Fields
	n := domain.Notification{
		ID:                rec.ID,
		NotificationID:    f.Int(models.FieldNotificationID),
		NotificationType:  domain.NotificationType(f.String(models.FieldNotificationType)),
		RelatedRequestID:  models.FirstOrNone(f.Links(models.FieldRelatedRequest)),
		RelatedApprovalID: models.FirstOrNone(f.Links(models.FieldRelatedApproval)),
		Subject:           f.String(models.FieldSubject),
		MessageContent:    f.String(models.FieldMessageContent),
		SendStatus:        f.String(models.FieldSendStatus),
		Priority:          domain.Priority(f.String(models.FieldPriority)),
		CreatedTime:       rec.CreatedTime,
	}
	if id := models.FirstOrNone(f.Links(models.FieldRecipient)); id != nil {
		n.RecipientID = *id
	}
	if date, err := time.Parse(domain.DateLayout, f.String(models.FieldScheduledSendDate)); err == nil {
		n.ScheduledSendDate = date
	}
	return n
}
