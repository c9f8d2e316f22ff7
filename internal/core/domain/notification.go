package domain

import "time"

// NotificationType is the purpose of a notification record.
type NotificationType string

const (
	NotifyRequestSubmitted NotificationType = "Request Submitted"
	NotifyApprovalNeeded   NotificationType = "Approval Needed"
	NotifyRequestApproved  NotificationType = "Request Approved"
	NotifyRequestRejected  NotificationType = "Request Rejected"
	NotifyBalanceUpdated   NotificationType = "Balance Updated"
	NotifyReminder         NotificationType = "Reminder"
)

// Priority of a notification.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// SendStatusPending is the send status of every newly created notification.
const SendStatusPending = "Pending"

// Notification is a notification record queued for delivery by an external sender.
type Notification struct {
	ID                string
	NotificationID    *int64
	RecipientID       string
	NotificationType  NotificationType
	RelatedRequestID  *string
	RelatedApprovalID *string
	Subject           string
	MessageContent    string
	SendStatus        string
	ScheduledSendDate time.Time
	Priority          Priority
	CreatedTime       time.Time
}
