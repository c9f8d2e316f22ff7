package mapping

import (
	"fmt"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/shopspring/decimal"
)

// ToDomainBalance converts a PTO Balances record to a domain BalanceRecord.
// A missing Current Balance reads as zero.
func ToDomainBalance(rec models.Record) (domain.BalanceRecord, error) {
	balance, ok, err := rec.Fields.Decimal(models.FieldCurrentBalance)
	if err != nil {
		return domain.BalanceRecord{}, fmt.Errorf("%w: balance record %s: %v", apperrors.ErrDataIntegrity, rec.ID, err)
	}
	if !ok {
		balance = decimal.Zero
	}
	var employeeID string
	if first := models.FirstOrNone(rec.Fields.Links(models.FieldEmployee)); first != nil {
		employeeID = *first
	}
	return domain.BalanceRecord{
		RecordID:       rec.ID,
		EmployeeID:     employeeID,
		CurrentBalance: balance,
		IsCurrent:      rec.Fields.Bool(models.FieldIsCurrentBalance),
		CreatedTime:    rec.CreatedTime,
	}, nil
}

// ToBalanceFields converts a new balance value into the fields written on update.
func ToBalanceFields(newBalance decimal.Decimal) models.Fields {
	return models.Fields{models.FieldCurrentBalance: models.Number(newBalance)}
}
