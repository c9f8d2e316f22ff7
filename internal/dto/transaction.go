package dto

import (
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams defines query parameters for reading an employee's audit trail.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for one audit entry.
type TransactionResponse struct {
	TransactionID    string                 `json:"transactionId"`
	EmployeeID       string                 `json:"employeeId"`
	TransactionType  domain.TransactionType `json:"transactionType"`
	DaysChanged      decimal.Decimal        `json:"daysChanged"`
	BalanceBefore    decimal.Decimal        `json:"balanceBefore"`
	BalanceAfter     decimal.Decimal        `json:"balanceAfter"`
	TransactionDate  string                 `json:"transactionDate"`
	RelatedRequestID *string                `json:"relatedRequestId"`
	Reason           string                 `json:"reason"`
	CreatedBy        string                 `json:"createdBy"`
	CreatedAt        time.Time              `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    txn.TransactionID,
		EmployeeID:       txn.EmployeeID,
		TransactionType:  txn.TransactionType,
		DaysChanged:      txn.DaysChanged,
		BalanceBefore:    txn.BalanceBefore,
		BalanceAfter:     txn.BalanceAfter,
		TransactionDate:  txn.TransactionDate.Format(domain.DateLayout),
		RelatedRequestID: txn.RelatedRequestID,
		Reason:           txn.Reason,
		CreatedBy:        txn.CreatedBy,
		CreatedAt:        txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
