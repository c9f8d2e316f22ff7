package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
)

// FirstOrNone returns the first referenced record ID, or nil when the link list is empty.
func FirstOrNone(refs []string) *string {
	if len(refs) == 0 {
		return nil
	}
	first := refs[0]
	return &first
}

// Link wraps a single record ID as a link-field value. An empty id yields nil so the
// field is omitted from the write.
func Link(id string) []string {
	if id == "" {
		return nil
	}
	return []string{id}
}

// Number converts a decimal into a JSON number field value without losing precision.
func Number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// String returns the named field as a string; non-string values are formatted.
// Lookup fields arrive as arrays, so the first element is used.
func (f Fields) String(name string) string {
	return scalarString(f[name])
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case []string:
		if len(t) == 0 {
			return ""
		}
		return t[0]
	case []any:
		if len(t) == 0 {
			return ""
		}
		return scalarString(t[0])
	default:
		return fmt.Sprint(t)
	}
}

// Links returns the record IDs held by a link field.
func (f Fields) Links(name string) []string {
	switch t := f[name].(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	default:
		return nil
	}
}

// Bool returns the named field as a boolean (missing = false).
func (f Fields) Bool(name string) bool {
	switch t := f[name].(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true")
	default:
		return false
	}
}

// Decimal returns the named numeric field. ok is false when the field is absent or null.
func (f Fields) Decimal(name string) (d decimal.Decimal, ok bool, err error) {
	v, present := f[name]
	if arr, isArr := v.([]any); isArr {
		if len(arr) == 0 {
			return decimal.Zero, false, nil
		}
		v = arr[0]
	}
	if !present || v == nil {
		return decimal.Zero, false, nil
	}
	d, err = toDecimal(v)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("field %q: %w", name, err)
	}
	return d, true, nil
}

// OptionalDecimal is Decimal without the error path; malformed values read as absent.
func (f Fields) OptionalDecimal(name string) *decimal.Decimal {
	d, ok, err := f.Decimal(name)
	if err != nil || !ok {
		return nil
	}
	return &d
}

// Int returns the named field as an integer (auto-number fields), or nil.
func (f Fields) Int(name string) *int64 {
	d, ok, err := f.Decimal(name)
	if err != nil || !ok {
		return nil
	}
	i := d.IntPart()
	return &i
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, nil
	case json.Number:
		return decimal.NewFromString(t.String())
	case float64:
		return decimal.NewFromFloat(t), nil
	case float32:
		return decimal.NewFromFloat32(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case string:
		return decimal.NewFromString(t)
	default:
		return decimal.Zero, fmt.Errorf("value %v (%T) is not numeric", v, v)
	}
}

// Normalize round-trips fields through JSON so every value has the shape a REST store
// would return: strings, bools, json.Number, []any and map[string]any.
func Normalize(f Fields) (Fields, error) {
	if f == nil {
		return Fields{}, nil
	}
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fields: %w", err)
	}
	return DecodeFields(raw)
}

// DecodeFields decodes a JSON object into Fields, keeping numbers as json.Number.
func DecodeFields(raw []byte) (Fields, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	out := Fields{}
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode fields: %w", err)
	}
	return out, nil
}

// ValuesEqual compares two normalized scalar values. Numbers compare numerically.
func ValuesEqual(a, b any) bool {
	a, b = Plain(a), Plain(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	da, errA := toDecimal(a)
	db, errB := toDecimal(b)
	_, aIsString := a.(string)
	_, bIsString := b.(string)
	if errA == nil && errB == nil && !(aIsString && bIsString) {
		return da.Equal(db)
	}
	switch ta := a.(type) {
	case string:
		tb, ok := b.(string)
		return ok && ta == tb
	case bool:
		tb, ok := b.(bool)
		return ok && ta == tb
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// Matches applies OpEq semantics: scalar equality, or membership when stored is an array.
func Matches(stored, want any) bool {
	switch t := stored.(type) {
	case []any:
		for _, item := range t {
			if ValuesEqual(item, want) {
				return true
			}
		}
		return false
	case []string:
		for _, item := range t {
			if ValuesEqual(item, want) {
				return true
			}
		}
		return false
	default:
		return ValuesEqual(stored, want)
	}
}

// IsBlank reports whether a stored value counts as blank (missing, null, "" or empty array).
func IsBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	default:
		return false
	}
}

// CompareValues orders two normalized scalar values for sorting. Blank values sort first,
// numbers compare numerically and everything else compares as text (ISO dates sort correctly).
func CompareValues(a, b any) int {
	a, b = Plain(a), Plain(b)
	aBlank, bBlank := IsBlank(a), IsBlank(b)
	switch {
	case aBlank && bBlank:
		return 0
	case aBlank:
		return -1
	case bBlank:
		return 1
	}
	_, aIsString := a.(string)
	_, bIsString := b.(string)
	if !aIsString && !bIsString {
		da, errA := toDecimal(a)
		db, errB := toDecimal(b)
		if errA == nil && errB == nil {
			return da.Cmp(db)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// Plain converts named string and bool types (enums) to their underlying builtin type so
// comparisons and formula rendering treat them like literals.
func Plain(v any) any {
	if v == nil {
		return nil
	}
	switch v.(type) {
	case string, bool, json.Number:
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	}
	return v
}
