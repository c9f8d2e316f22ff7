package pgsql

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/shopspring/decimal"
)

// sqlBuilder accumulates positional arguments while rendering a statement.
type sqlBuilder struct {
	args []any
}

func (b *sqlBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// field renders a jsonb lookup of one record field; the key is typed so -> resolves unambiguously.
func (b *sqlBuilder) field(name string) string {
	return "fields->(" + b.arg(name) + "::text)"
}

func jsonLiteral(v any) (string, error) {
	if d, ok := v.(decimal.Decimal); ok {
		v = models.Number(d)
	}
	raw, err := json.Marshal(models.Plain(v))
	if err != nil {
		return "", fmt.Errorf("cannot encode %T as jsonb: %w", v, err)
	}
	return string(raw), nil
}

func (b *sqlBuilder) blankExpr(field string) string {
	f := b.field(field)
	return fmt.Sprintf("(%[1]s IS NULL OR %[1]s = 'null'::jsonb OR %[1]s = '\"\"'::jsonb OR %[1]s = '[]'::jsonb)", f)
}

// where renders the table restriction plus every filter condition.
func (b *sqlBuilder) where(table string, f models.Filter) (string, error) {
	clauses := []string{"table_name = " + b.arg(table)}
	for _, c := range f.All {
		switch c.Op {
		case models.OpEq, models.OpNotEq:
			lit, err := jsonLiteral(c.Value)
			if err != nil {
				return "", err
			}
			// jsonb containment covers scalar equality and array membership
			expr := fmt.Sprintf("COALESCE(%s @> %s::jsonb, false)", b.field(c.Field), b.arg(lit))
			if c.Op == models.OpNotEq {
				expr = "NOT " + expr
			}
			clauses = append(clauses, expr)
		case models.OpBlank:
			clauses = append(clauses, b.blankExpr(c.Field))
		case models.OpNotBlank:
			clauses = append(clauses, "NOT "+b.blankExpr(c.Field))
		default:
			return "", fmt.Errorf("unsupported operator %q", c.Op)
		}
	}
	return strings.Join(clauses, " AND "), nil
}

// orderBy renders the sort fields followed by insertion order, which runs the same way as
// the first sort field so ties on a coarse field (a date) keep newest-first listings intact.
func (b *sqlBuilder) orderBy(sort []models.SortField) string {
	parts := make([]string, 0, len(sort)+2)
	for _, s := range sort {
		switch {
		case s.Field == models.FieldCreated:
			dir := "ASC"
			if s.Direction == models.Desc {
				dir = "DESC"
			}
			parts = append(parts, "created_time "+dir, "seq "+dir)
		case s.Direction == models.Desc:
			parts = append(parts, b.field(s.Field)+" DESC NULLS LAST")
		default:
			parts = append(parts, b.field(s.Field)+" ASC NULLS FIRST")
		}
	}
	tie := "ASC"
	if len(sort) > 0 && sort[0].Direction == models.Desc {
		tie = "DESC"
	}
	parts = append(parts, "created_time "+tie, "seq "+tie)
	return strings.Join(parts, ", ")
}

// preconditions renders exact jsonb equality for each precondition.
func (b *sqlBuilder) preconditions(conds []models.Precondition) (string, error) {
	clauses := make([]string, 0, len(conds))
	for _, c := range conds {
		lit, err := jsonLiteral(c.Equals)
		if err != nil {
			return "", err
		}
		expr := fmt.Sprintf("%s = %s::jsonb", b.field(c.Field), b.arg(lit))
		if c.OrBlank {
			expr = "(" + expr + " OR " + b.blankExpr(c.Field) + ")"
		}
		clauses = append(clauses, expr)
	}
	return strings.Join(clauses, " AND "), nil
}

// splitPatch separates fields to set from fields to clear (nil values).
func splitPatch(fields models.Fields) (models.Fields, []string) {
	set := models.Fields{}
	drop := []string{}
	for k, v := range fields {
		if v == nil {
			drop = append(drop, k)
			continue
		}
		set[k] = v
	}
	return set, drop
}
