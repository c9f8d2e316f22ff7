package pgsql

import (
	"testing"

	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhere_CurrentBalanceLookup(t *testing.T) {
	b := &sqlBuilder{}
	where, err := b.where("PTO Balances", models.Filter{}.And(
		models.Eq("Employee", "recEMP1"),
		models.Eq("Is Current Balance", true),
	))
	require.NoError(t, err)

	assert.Equal(t,
		"table_name = $1 AND COALESCE(fields->($2::text) @> $3::jsonb, false) AND COALESCE(fields->($4::text) @> $5::jsonb, false)",
		where)
	assert.Equal(t, []any{"PTO Balances", "Employee", `"recEMP1"`, "Is Current Balance", "true"}, b.args)
}

func TestWhere_NotEqAndBlank(t *testing.T) {
	b := &sqlBuilder{}
	where, err := b.where("Approvals", models.Filter{}.And(
		models.NotEq("Approval Status", "Pending"),
		models.NotBlank("Decision Date"),
	))
	require.NoError(t, err)

	assert.Contains(t, where, "NOT COALESCE(fields->($2::text) @> $3::jsonb, false)")
	assert.Contains(t, where, "NOT (fields->($4::text) IS NULL OR fields->($4::text) = 'null'::jsonb")
	assert.Len(t, b.args, 4)
}

func TestWhere_UnsupportedOperator(t *testing.T) {
	b := &sqlBuilder{}
	_, err := b.where("PTO Requests", models.Filter{All: []models.Condition{{Field: "X", Op: "LIKE", Value: "a"}}})
	assert.Error(t, err)
}

func TestOrderBy(t *testing.T) {
	b := &sqlBuilder{}
	order := b.orderBy([]models.SortField{{Field: "Submitted Date", Direction: models.Desc}})
	assert.Equal(t, "fields->($1::text) DESC NULLS LAST, created_time DESC, seq DESC", order)

	b = &sqlBuilder{}
	order = b.orderBy([]models.SortField{{Field: "Submitted Date"}})
	assert.Equal(t, "fields->($1::text) ASC NULLS FIRST, created_time ASC, seq ASC", order)

	b = &sqlBuilder{}
	assert.Equal(t, "created_time ASC, seq ASC", b.orderBy(nil))
}

func TestOrderBy_CreatedUsesInsertionColumns(t *testing.T) {
	b := &sqlBuilder{}
	order := b.orderBy([]models.SortField{
		{Field: models.FieldTransactionDate, Direction: models.Desc},
		{Field: models.FieldCreated, Direction: models.Desc},
	})
	assert.Equal(t, "fields->($1::text) DESC NULLS LAST, created_time DESC, seq DESC, created_time DESC, seq DESC", order)
	assert.Equal(t, []any{models.FieldTransactionDate}, b.args)
}

func TestPreconditions_EncodeDecimalsAsNumbers(t *testing.T) {
	b := &sqlBuilder{}
	sql, err := b.preconditions([]models.Precondition{{Field: "Current Balance", Equals: decimal.RequireFromString("12.5")}})
	require.NoError(t, err)
	assert.Equal(t, "fields->($1::text) = $2::jsonb", sql)
	assert.Equal(t, []any{"Current Balance", "12.5"}, b.args)
}

func TestSplitPatch(t *testing.T) {
	set, drop := splitPatch(models.Fields{"Current Balance": 3, "Note": nil})
	assert.Equal(t, models.Fields{"Current Balance": 3}, set)
	assert.Equal(t, []string{"Note"}, drop)
}
