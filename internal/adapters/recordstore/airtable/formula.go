package airtable

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/shopspring/decimal"
)

// RenderFormula turns a filter into an Airtable filterByFormula expression.
// An empty filter renders as the empty string (no filtering).
func RenderFormula(f models.Filter) (string, error) {
	parts := make([]string, 0, len(f.All))
	for _, c := range f.All {
		p, err := renderCondition(c)
		if err != nil {
			return "", err
		}
		parts = append(parts, p)
	}
	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], nil
	default:
		return "AND(" + strings.Join(parts, ", ") + ")", nil
	}
}

func renderCondition(c models.Condition) (string, error) {
	field := "{" + c.Field + "}"
	switch c.Op {
	case models.OpBlank:
		return field + " = BLANK()", nil
	case models.OpNotBlank:
		return field + " != BLANK()", nil
	case models.OpEq, models.OpNotEq:
		lit, err := renderLiteral(c.Value)
		if err != nil {
			return "", fmt.Errorf("condition on %s: %w", c.Field, err)
		}
		return fmt.Sprintf("%s %s %s", field, c.Op, lit), nil
	default:
		return "", fmt.Errorf("unsupported operator %q", c.Op)
	}
}

func renderLiteral(v any) (string, error) {
	switch t := models.Plain(v).(type) {
	case nil:
		return "BLANK()", nil
	case string:
		return quote(t), nil
	case bool:
		if t {
			return "TRUE()", nil
		}
		return "FALSE()", nil
	case json.Number:
		return t.String(), nil
	case decimal.Decimal:
		return t.String(), nil
	case int, int32, int64, uint, uint32, uint64, float32, float64:
		return fmt.Sprint(t), nil
	default:
		return "", fmt.Errorf("cannot render %T as a formula literal", v)
	}
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
