package dto

import (
	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PollRequestsParams filters the new PTO request trigger.
type PollRequestsParams struct {
	RequestType string `form:"requestType" binding:"omitempty,oneof=Vacation Sick Personal Emergency Other"`
}

// PollApprovalsParams filters the approval decision trigger.
type PollApprovalsParams struct {
	StatusFilter string `form:"statusFilter" binding:"omitempty,oneof=Approved Rejected Delegated"`
}

// PTORequestItem is one submitted request as emitted by the trigger.
type PTORequestItem struct {
	ID                 string             `json:"id"`
	RequestID          *int64             `json:"requestId"`
	EmployeeID         *string            `json:"employeeId"`
	EmployeeName       string             `json:"employeeName"`
	StartDate          string             `json:"startDate"`
	EndDate            string             `json:"endDate"`
	DaysRequested      *decimal.Decimal   `json:"daysRequested"`
	RequestType        domain.RequestType `json:"requestType"`
	RequestStatus      string             `json:"requestStatus"`
	EmployeeNotes      string             `json:"employeeNotes"`
	SubmittedDate      string             `json:"submittedDate"`
	EmployeeEmail      string             `json:"employeeEmail"`
	EmployeeDepartment string             `json:"employeeDepartment"`
	ManagerID          *string            `json:"managerId"`
	Raw                map[string]any     `json:"_raw"`
}

// ApprovalDecisionItem is one decided approval as emitted by the trigger.
type ApprovalDecisionItem struct {
	ID                string                `json:"id"`
	ApprovalID        *int64                `json:"approvalId"`
	PTORequestID      *string               `json:"ptoRequestId"`
	ApproverID        *string               `json:"approverId"`
	ApproverName      string                `json:"approverName"`
	ApproverEmail     string                `json:"approverEmail"`
	ApprovalStatus    domain.ApprovalStatus `json:"approvalStatus"`
	ManagerComments   string                `json:"managerComments"`
	DecisionDate      string                `json:"decisionDate"`
	ResponseTimeHours *decimal.Decimal      `json:"responseTimeHours"`
	EmployeeName      string                `json:"employeeName"`
	RequestStartDate  string                `json:"requestStartDate"`
	RequestEndDate    string                `json:"requestEndDate"`
	RequestType       domain.RequestType    `json:"requestType"`
	DaysRequested     *decimal.Decimal      `json:"daysRequested"`
	Raw               map[string]any        `json:"_raw"`
}

// ToPTORequestItems converts domain requests to trigger items.
func ToPTORequestItems(reqs []domain.PTORequest) []PTORequestItem {
	items := make([]PTORequestItem, len(reqs))
	for i, r := range reqs {
		items[i] = PTORequestItem{
			ID:                 r.ID,
			RequestID:          r.RequestID,
			EmployeeID:         r.EmployeeID,
			EmployeeName:       r.EmployeeName,
			StartDate:          r.StartDate,
			EndDate:            r.EndDate,
			DaysRequested:      r.DaysRequested,
			RequestType:        r.RequestType,
			RequestStatus:      r.RequestStatus,
			EmployeeNotes:      r.EmployeeNotes,
			SubmittedDate:      r.SubmittedDate,
			EmployeeEmail:      r.EmployeeEmail,
			EmployeeDepartment: r.EmployeeDepartment,
			ManagerID:          r.ManagerID,
			Raw:                r.Raw,
		}
	}
	return items
}

// ToApprovalDecisionItems converts domain decisions to trigger items.
func ToApprovalDecisionItems(decisions []domain.ApprovalDecision) []ApprovalDecisionItem {
	items := make([]ApprovalDecisionItem, len(decisions))
	for i, d := range decisions {
		items[i] = ApprovalDecisionItem{
			ID:                d.ID,
			ApprovalID:        d.ApprovalID,
			PTORequestID:      d.PTORequestID,
			ApproverID:        d.ApproverID,
			ApproverName:      d.ApproverName,
			ApproverEmail:     d.ApproverEmail,
			ApprovalStatus:    d.ApprovalStatus,
			ManagerComments:   d.ManagerComments,
			DecisionDate:      d.DecisionDate,
			ResponseTimeHours: d.ResponseTimeHours,
			EmployeeName:      d.EmployeeName,
			RequestStartDate:  d.RequestStartDate,
			RequestEndDate:    d.RequestEndDate,
			RequestType:       d.RequestType,
			DaysRequested:     d.DaysRequested,
			Raw:               d.Raw,
		}
	}
	return items
}
