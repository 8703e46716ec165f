package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// decimalGTE0 validates that a decimal.Decimal field is not negative.
// The numeric comparison tags (gte, gt) only work on Go numeric kinds,
// so decimal fields need their own rule.
func decimalGTE0(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !d.IsNegative()
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("decimalgte0", decimalGTE0)
	}
}
