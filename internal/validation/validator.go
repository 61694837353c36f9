package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"smsledger/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("spend_category", validateSpendCategory)
	_ = v.RegisterValidation("message_direction", validateMessageDirection)
	_ = v.RegisterValidation("epoch_millis", validateEpochMillis)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCurrencyCode validates that a currency is one of the supported codes
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return models.IsValidCurrency(strings.ToUpper(fl.Field().String()))
}

// validateSpendCategory validates that a category is a recognized spend category
func validateSpendCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(strings.ToUpper(fl.Field().String()))
}

// validateMessageDirection validates that a direction is inbound or outbound
func validateMessageDirection(fl validator.FieldLevel) bool {
	return models.IsValidDirection(strings.ToLower(fl.Field().String()))
}

// validateEpochMillis validates that a timestamp is a plausible epoch in
// milliseconds. Values before 2000-01-01 are almost always epoch seconds
// submitted by mistake.
func validateEpochMillis(fl validator.FieldLevel) bool {
	const epochMillis2000 = 946684800000
	return fl.Field().Int() >= epochMillis2000
}
