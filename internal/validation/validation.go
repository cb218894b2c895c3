// Package validation registers the custom binding tags used by request DTOs.
package validation

import (
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Register adds the custom validators to gin's binding engine.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

// RegisterOn adds the custom validators to v.
// decimal.Decimal fields are validated through their string form.
func RegisterOn(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := v.RegisterValidation("decimal_gte0", validateDecimalGTE0); err != nil {
		return fmt.Errorf("registering decimal_gte0: %w", err)
	}
	return nil
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func validateDecimalGTE0(fl validator.FieldLevel) bool {
	str := fl.Field().String()
	if str == "" {
		return true
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return false
	}
	return !d.IsNegative()
}
