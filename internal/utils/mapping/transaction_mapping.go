package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/SscSPs/pto_ledger_service/internal/models"
)

// ToTransactionFields converts a domain Transaction into the fields of a Balance Transactions record.
func ToTransactionFields(d domain.Transaction) models.Fields {
	fields := models.Fields{
		models.FieldEmployee:        models.Link(d.EmployeeID),
		models.FieldTransactionType: string(d.TransactionType),
		models.FieldDaysChanged:     models.Number(d.DaysChanged),
		models.FieldBalanceBefore:   models.Number(d.BalanceBefore),
		models.FieldBalanceAfter:    models.Number(d.BalanceAfter),
		models.FieldTransactionDate: d.TransactionDate.UTC().Format(domain.DateLayout),
		models.FieldReason:          d.Reason,
		models.FieldCreatedBy:       d.CreatedBy,
	}
	if d.RelatedRequestID != nil && *d.RelatedRequestID != "" {
		fields[models.FieldRelatedRequest] = models.Link(*d.RelatedRequestID)
	}
	return fields
}

// ToDomainTransaction converts a Balance Transactions record to a domain Transaction.
func ToDomainTransaction(rec models.Record) (domain.Transaction, error) {
	f := rec.Fields
	txn := domain.Transaction{
		TransactionID:    rec.ID,
		TransactionType:  domain.TransactionType(f.String(models.FieldTransactionType)),
		RelatedRequestID: models.FirstOrNone(f.Links(models.FieldRelatedRequest)),
		Reason:           f.String(models.FieldReason),
		AuditFields: domain.AuditFields{
			CreatedAt: rec.CreatedTime,
			CreatedBy: f.String(models.FieldCreatedBy),
		},
	}
	if emp := models.FirstOrNone(f.Links(models.FieldEmployee)); emp != nil {
		txn.EmployeeID = *emp
	}

	var err error
	if txn.DaysChanged, _, err = f.Decimal(models.FieldDaysChanged); err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: transaction %s: %v", apperrors.ErrDataIntegrity, rec.ID, err)
	}
	if txn.BalanceBefore, _, err = f.Decimal(models.FieldBalanceBefore); err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: transaction %s: %v", apperrors.ErrDataIntegrity, rec.ID, err)
	}
	if txn.BalanceAfter, _, err = f.Decimal(models.FieldBalanceAfter); err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: transaction %s: %v", apperrors.ErrDataIntegrity, rec.ID, err)
	}
	if raw := f.String(models.FieldTransactionDate); raw != "" {
		date, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("%w: transaction %s: bad date %q", apperrors.ErrDataIntegrity, rec.ID, raw)
		}
		txn.TransactionDate = date
	}
	return txn, nil
}
