package mapping

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainBalance(t *testing.T) {
	rec := models.Record{ID: "recBAL1", Fields: models.Fields{
		models.FieldEmployee:         []any{"recEMP1"},
		models.FieldCurrentBalance:   json.Number("12.5"),
		models.FieldIsCurrentBalance: true,
	}}
	bal, err := ToDomainBalance(rec)
	require.NoError(t, err)
	assert.Equal(t, "recBAL1", bal.RecordID)
	assert.Equal(t, "recEMP1", bal.EmployeeID)
	assert.True(t, decimal.RequireFromString("12.5").Equal(bal.CurrentBalance))
	assert.True(t, bal.IsCurrent)

	missing, err := ToDomainBalance(models.Record{ID: "recBAL2", Fields: models.Fields{}})
	require.NoError(t, err)
	assert.True(t, missing.CurrentBalance.IsZero(), "missing balance reads as zero")

	_, err = ToDomainBalance(models.Record{ID: "recBAL3", Fields: models.Fields{models.FieldCurrentBalance: "lots"}})
	assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
}

func TestTransactionRoundTrip(t *testing.T) {
	requestID := "recREQ1"
	txn := domain.Transaction{
		EmployeeID:       "recEMP1",
		TransactionType:  domain.Deduction,
		DaysChanged:      decimal.NewFromInt(-5),
		BalanceBefore:    decimal.NewFromInt(15),
		BalanceAfter:     decimal.NewFromInt(10),
		TransactionDate:  time.Date(2025, 2, 3, 22, 30, 0, 0, time.UTC),
		RelatedRequestID: &requestID,
		Reason:           "PTO request deduction - 5 days",
		AuditFields:      domain.AuditFields{CreatedBy: "PTO Ledger Automation"},
	}

	fields := ToTransactionFields(txn)
	assert.Equal(t, "2025-02-03", fields[models.FieldTransactionDate])
	assert.Equal(t, json.Number("-5"), fields[models.FieldDaysChanged])
	assert.Equal(t, []string{"recREQ1"}, fields[models.FieldRelatedRequest])

	normalized, err := models.Normalize(fields)
	require.NoError(t, err)
	created := time.Date(2025, 2, 3, 22, 30, 1, 0, time.UTC)
	back, err := ToDomainTransaction(models.Record{ID: "recTXN1", CreatedTime: created, Fields: normalized})
	require.NoError(t, err)

	assert.Equal(t, "recTXN1", back.TransactionID)
	assert.Equal(t, "recEMP1", back.EmployeeID)
	assert.Equal(t, domain.Deduction, back.TransactionType)
	assert.True(t, txn.DaysChanged.Equal(back.DaysChanged))
	assert.True(t, txn.BalanceBefore.Equal(back.BalanceBefore))
	assert.True(t, txn.BalanceAfter.Equal(back.BalanceAfter))
	assert.Equal(t, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), back.TransactionDate)
	require.NotNil(t, back.RelatedRequestID)
	assert.Equal(t, "recREQ1", *back.RelatedRequestID)
	assert.Equal(t, "PTO Ledger Automation", back.CreatedBy)
	assert.Equal(t, created, back.CreatedAt)
	assert.True(t, back.IsConsistent())
}

func TestToTransactionFields_OmitsEmptyRequest(t *testing.T) {
	fields := ToTransactionFields(domain.Transaction{EmployeeID: "recEMP1", TransactionType: domain.Credit})
	assert.NotContains(t, fields, models.FieldRelatedRequest)
}

func TestToDomainPTORequest_Defaults(t *testing.T) {
	req := ToDomainPTORequest(models.Record{ID: "recREQ1", Fields: models.Fields{
		models.FieldRequestID:     json.Number("42"),
		models.FieldRequestStatus: "Submitted",
		models.FieldDaysRequested: json.Number("3"),
		models.FieldManager:       []any{},
	}})
	assert.Equal(t, "Unknown", req.EmployeeName)
	require.NotNil(t, req.RequestID)
	assert.Equal(t, int64(42), *req.RequestID)
	assert.Nil(t, req.EmployeeID)
	assert.Nil(t, req.ManagerID, "empty link list resolves to nil")
	require.NotNil(t, req.DaysRequested)
	assert.True(t, decimal.NewFromInt(3).Equal(*req.DaysRequested))
	assert.Equal(t, "recREQ1", req.Raw["id"])
}

func TestToDomainApprovalDecision(t *testing.T) {
	dec := ToDomainApprovalDecision(models.Record{ID: "recAPP1", Fields: models.Fields{
		models.FieldPTORequest:        []any{"recREQ1"},
		models.FieldApprover:          []any{"recMGR1", "recMGR2"},
		models.FieldApprovalStatus:    "Approved",
		models.FieldDecisionDate:      "2025-02-01",
		models.FieldResponseTimeHours: json.Number("4.5"),
		models.FieldEmployeeName:      []any{"Ada Lovelace"},
	}})
	require.NotNil(t, dec.PTORequestID)
	assert.Equal(t, "recREQ1", *dec.PTORequestID)
	require.NotNil(t, dec.ApproverID)
	assert.Equal(t, "recMGR1", *dec.ApproverID)
	assert.Equal(t, domain.ApprovalApproved, dec.ApprovalStatus)
	assert.Equal(t, "Ada Lovelace", dec.EmployeeName, "lookup arrays read their first value")
	require.NotNil(t, dec.ResponseTimeHours)
	assert.Equal(t, "4.5", dec.ResponseTimeHours.String())
}

func TestNotificationFields(t *testing.T) {
	approvalID := "recAPP1"
	fields := ToNotificationFields(domain.Notification{
		RecipientID:       "recEMP1",
		NotificationType:  domain.NotifyRequestApproved,
		RelatedApprovalID: &approvalID,
		Subject:           "Approved",
		SendStatus:        domain.SendStatusPending,
		ScheduledSendDate: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		Priority:          domain.PriorityNormal,
	})
	assert.Equal(t, []string{"recEMP1"}, fields[models.FieldRecipient])
	assert.Equal(t, "Request Approved", fields[models.FieldNotificationType])
	assert.Equal(t, "2025-02-03", fields[models.FieldScheduledSendDate])
	assert.NotContains(t, fields, models.FieldRelatedRequest)
	assert.Equal(t, []string{"recAPP1"}, fields[models.FieldRelatedApproval])
}
