package accounting

import (
	"fmt"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyDelta returns max(0, current + delta). A balance never goes below zero; an
// over-deduction clamps instead of failing.
func ApplyDelta(current, delta decimal.Decimal) decimal.Decimal {
	next := current.Add(delta)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}

// SignedDelta applies the sign convention for a transaction type:
// Deduction subtracts, Credit adds, Adjustment is taken as given.
func SignedDelta(txType domain.TransactionType, days decimal.Decimal) (decimal.Decimal, error) {
	switch txType {
	case domain.Deduction:
		return days.Abs().Neg(), nil
	case domain.Credit:
		return days.Abs(), nil
	case domain.Adjustment:
		return days, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s'", txType)
	}
}

// FormatDays renders a day count without trailing zeros ("5", "2.5", "-1.25").
func FormatDays(days decimal.Decimal) string {
	return days.String()
}

// DefaultReason builds the reason recorded on a transaction when the caller gives none.
func DefaultReason(txType domain.TransactionType, days decimal.Decimal) string {
	switch txType {
	case domain.Deduction:
		return fmt.Sprintf("PTO request deduction - %s days", FormatDays(days.Abs()))
	case domain.Credit:
		return fmt.Sprintf("PTO credit - %s days", FormatDays(days.Abs()))
	default:
		return fmt.Sprintf("Balance adjustment - %s days", FormatDays(days))
	}
}
