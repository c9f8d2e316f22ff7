package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalStatus is a manager's decision on a PTO request.
type ApprovalStatus string

const (
	ApprovalPending   ApprovalStatus = "Pending"
	ApprovalApproved  ApprovalStatus = "Approved"
	ApprovalRejected  ApprovalStatus = "Rejected"
	ApprovalDelegated ApprovalStatus = "Delegated"
)

// ApprovalDecision is the flattened view of a decided approval record.
type ApprovalDecision struct {
	ID                string
	ApprovalID        *int64
	PTORequestID      *string
	ApproverID        *string
	ApproverName      string
	ApproverEmail     string
	ApprovalStatus    ApprovalStatus
	ManagerComments   string
	DecisionDate      string
	ResponseTimeHours *decimal.Decimal
	EmployeeName      string
	RequestStartDate  string
	RequestEndDate    string
	RequestType       RequestType
	DaysRequested     *decimal.Decimal
	Raw               map[string]any
}

// Approval is a newly created approval record.
type Approval struct {
	ID             string
	ApprovalID     *int64
	PTORequestID   string
	ApproverID     string
	ApprovalStatus ApprovalStatus
	CreatedTime    time.Time
}
