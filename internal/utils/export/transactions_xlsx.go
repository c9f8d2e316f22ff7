package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const (
	// TransactionsSheet is the name of the single sheet in an audit export.
	TransactionsSheet = "Transactions"
	// ContentType is the MIME type of an xlsx workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type column struct {
	header string
	width  float64
	value  func(t *domain.Transaction) interface{}
}

var transactionColumns = []column{
	{"Transaction ID", 20, func(t *domain.Transaction) interface{} { return t.TransactionID }},
	{"Transaction Date", 16, func(t *domain.Transaction) interface{} { return t.TransactionDate.Format(domain.DateLayout) }},
	{"Transaction Type", 16, func(t *domain.Transaction) interface{} { return string(t.TransactionType) }},
	{"Days Changed", 14, func(t *domain.Transaction) interface{} { return t.DaysChanged.InexactFloat64() }},
	{"Balance Before", 14, func(t *domain.Transaction) interface{} { return t.BalanceBefore.InexactFloat64() }},
	{"Balance After", 14, func(t *domain.Transaction) interface{} { return t.BalanceAfter.InexactFloat64() }},
	{"Related Request", 20, func(t *domain.Transaction) interface{} {
		if t.RelatedRequestID == nil {
			return ""
		}
		return *t.RelatedRequestID
	}},
	{"Reason", 40, func(t *domain.Transaction) interface{} { return t.Reason }},
	{"Created By", 24, func(t *domain.Transaction) interface{} { return t.CreatedBy }},
}

// FileName is the attachment name used for an employee's audit export.
func FileName(employeeID string) string {
	return fmt.Sprintf("pto_transactions_%s.xlsx", employeeID)
}

// WriteTransactions streams the audit trail as a single-sheet workbook: one header row,
// then one row per transaction in the order given.
func WriteTransactions(w io.Writer, txns []domain.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TransactionsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(TransactionsSheet)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	// column widths must be set before the first row is written
	header := make([]interface{}, len(transactionColumns))
	for i, col := range transactionColumns {
		if err := sw.SetColWidth(i+1, i+1, col.width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
		header[i] = excelize.Cell{Value: col.header, StyleID: headerStyle}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i := range txns {
		row := make([]interface{}, len(transactionColumns))
		for j, col := range transactionColumns {
			row[j] = col.value(&txns[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush stream: %w", err)
	}
	_, err = f.WriteTo(w)
	return err
}
