package domain

import "time"

// AuditFields holds the store-assigned creation information for an immutable record.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // Actor attribution (automation name or user)
}

// DateLayout is the calendar-date layout used for date-only store fields.
const DateLayout = "2006-01-02"
