package validation

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// TagName matches gin's binding tag so DTOs validate the same way in handlers and services.
const TagName = "binding"

// New returns a validator that reads `binding` tags and understands decimal.Decimal.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName(TagName)
	Register(v)
	return v
}

// Register teaches an existing validator (such as gin's binding engine) to compare
// decimal.Decimal fields numerically, so tags like `gt=0` and `required` work on them.
func Register(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})
}

func decimalValue(field reflect.Value) interface{} {
	switch d := field.Interface().(type) {
	case decimal.Decimal:
		return d.InexactFloat64()
	case decimal.NullDecimal:
		if !d.Valid {
			return nil
		}
		return d.Decimal.InexactFloat64()
	}
	return nil
}
