package domain

import (
	"github.com/shopspring/decimal"
)

// RequestType is the category of a PTO request.
type RequestType string

const (
	Vacation  RequestType = "Vacation"
	Sick      RequestType = "Sick"
	Personal  RequestType = "Personal"
	Emergency RequestType = "Emergency"
	Other     RequestType = "Other"
)

// RequestStatusSubmitted is the status of a request awaiting review.
const RequestStatusSubmitted = "Submitted"

// PTORequest is the flattened view of a PTO request record. It is read-only for this service.
// Dates are kept as the store's ISO strings.
type PTORequest struct {
	ID                 string
	RequestID          *int64
	EmployeeID         *string
	EmployeeName       string
	StartDate          string
	EndDate            string
	DaysRequested      *decimal.Decimal
	RequestType        RequestType
	RequestStatus      string
	EmployeeNotes      string
	SubmittedDate      string
	EmployeeEmail      string
	EmployeeDepartment string
	ManagerID          *string
	Raw                map[string]any
}
