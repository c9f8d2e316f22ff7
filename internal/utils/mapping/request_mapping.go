package mapping

import (
	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/SscSPs/pto_ledger_service/internal/models"
)

// UnknownEmployeeName is reported when a request carries no employee name.
const UnknownEmployeeName = "Unknown"

// ToDomainPTORequest flattens a PTO Requests record.
func ToDomainPTORequest(rec models.Record) domain.PTORequest {
	f := rec.Fields
	name := f.String(models.FieldEmployeeName)
	if name == "" {
		name = UnknownEmployeeName
	}
	return domain.PTORequest{
		ID:                 rec.ID,
		RequestID:          f.Int(models.FieldRequestID),
		EmployeeID:         models.FirstOrNone(f.Links(models.FieldEmployee)),
		EmployeeName:       name,
		StartDate:          f.String(models.FieldStartDate),
		EndDate:            f.String(models.FieldEndDate),
		DaysRequested:      f.OptionalDecimal(models.FieldDaysRequested),
		RequestType:        domain.RequestType(f.String(models.FieldRequestType)),
		RequestStatus:      f.String(models.FieldRequestStatus),
		EmployeeNotes:      f.String(models.FieldEmployeeNotes),
		SubmittedDate:      f.String(models.FieldSubmittedDate),
		EmployeeEmail:      f.String(models.FieldEmployeeEmail),
		EmployeeDepartment: f.String(models.FieldEmployeeDepartment),
		ManagerID:          models.FirstOrNone(f.Links(models.FieldManager)),
		Raw:                rec.AsMap(),
	}
}
