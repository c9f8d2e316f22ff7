package mapping

import (
	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/SscSPs/pto_ledger_service/internal/models"
)

// ToDomainApprovalDecision flattens an Approvals record for the decision trigger.
func ToDomainApprovalDecision(rec models.Record) domain.ApprovalDecision {
	f := rec.Fields
	return domain.ApprovalDecision{
		ID:                rec.ID,
		ApprovalID:        f.Int(models.FieldApprovalID),
		PTORequestID:      models.FirstOrNone(f.Links(models.FieldPTORequest)),
		ApproverID:        models.FirstOrNone(f.Links(models.FieldApprover)),
		ApproverName:      f.String(models.FieldApproverName),
		ApproverEmail:     f.String(models.FieldApproverEmail),
		ApprovalStatus:    domain.ApprovalStatus(f.String(models.FieldApprovalStatus)),
		ManagerComments:   f.String(models.FieldManagerComments),
		DecisionDate:      f.String(models.FieldDecisionDate),
		ResponseTimeHours: f.OptionalDecimal(models.FieldResponseTimeHours),
		EmployeeName:      f.String(models.FieldEmployeeName),
		RequestStartDate:  f.String(models.FieldRequestStartDate),
		RequestEndDate:    f.String(models.FieldRequestEndDate),
		RequestType:       domain.RequestType(f.String(models.FieldRequestType)),
		DaysRequested:     f.OptionalDecimal(models.FieldDaysRequested),
		Raw:               rec.AsMap(),
	}
}

// ToApprovalFields converts a new approval into record fields.
func ToApprovalFields(d domain.Approval) models.Fields {
	return models.Fields{
		models.FieldPTORequest:     models.Link(d.PTORequestID),
		models.FieldApprover:       models.Link(d.ApproverID),
		models.FieldApprovalStatus: string(d.ApprovalStatus),
	}
}

// ToDomainApproval converts a created Approvals record back to the domain type.
func ToDomainApproval(rec models.Record) domain.Approval {
	f := rec.Fields
	a := domain.Approval{
		ID:             rec.ID,
		ApprovalID:     f.Int(models.FieldApprovalID),
		ApprovalStatus: domain.ApprovalStatus(f.String(models.FieldApprovalStatus)),
		CreatedTime:    rec.CreatedTime,
	}
	if id := models.FirstOrNone(f.Links(models.FieldPTORequest)); id != nil {
		a.PTORequestID = *id
	}
	if id := models.FirstOrNone(f.Links(models.FieldApprover)); id != nil {
		a.ApproverID = *id
	}
	return a
}
