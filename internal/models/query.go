package models

// Operator is a comparison used in a filter condition.
type Operator string

const (
	// OpEq matches equal scalars; against a link/array field it matches when the array contains the value.
	OpEq Operator = "="
	// OpNotEq is the negation of OpEq.
	OpNotEq Operator = "!="
	// OpBlank matches a missing, null or empty value.
	OpBlank Operator = "blank"
	// OpNotBlank is the negation of OpBlank.
	OpNotBlank Operator = "not_blank"
)

// Condition is one field comparison.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

// Filter is a conjunction of conditions. An empty filter matches every record.
type Filter struct {
	All []Condition
}

// And returns a copy of f with c appended.
func (f Filter) And(c ...Condition) Filter {
	out := Filter{All: make([]Condition, 0, len(f.All)+len(c))}
	out.All = append(out.All, f.All...)
	out.All = append(out.All, c...)
	return out
}

// Eq builds an equality condition.
func Eq(field string, value any) Condition { return Condition{Field: field, Op: OpEq, Value: value} }

// NotEq builds an inequality condition.
func NotEq(field string, value any) Condition {
	return Condition{Field: field, Op: OpNotEq, Value: value}
}

// Blank builds an "is blank" condition.
func Blank(field string) Condition { return Condition{Field: field, Op: OpBlank} }

// NotBlank builds an "is not blank" condition.
func NotBlank(field string) Condition { return Condition{Field: field, Op: OpNotBlank} }

// SortDirection is asc or desc.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// SortField orders query results by one field.
type SortField struct {
	Field     string
	Direction SortDirection
}

// Query describes a list call against one table.
type Query struct {
	Filter Filter
	Sort   []SortField
	// Limit caps the total number of records returned (0 = store default).
	Limit int
	// PageSize caps a single page; when set, Offset continues from a previous page.
	PageSize int
	Offset   string
}

// Page is a bounded slice of records plus the offset of the next page, if any.
type Page struct {
	Records []Record
	Offset  string
}

// Precondition makes an update conditional on a field's current value.
type Precondition struct {
	Field  string
	Equals any
	// OrBlank also accepts a missing or empty field (a blank balance reads as zero).
	OrBlank bool
}

// Holds reports whether a stored value satisfies the precondition.
func (p Precondition) Holds(stored any) bool {
	if p.OrBlank && IsBlank(stored) {
		return true
	}
	return ValuesEqual(stored, p.Equals)
}
