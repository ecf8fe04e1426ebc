package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank tightens required: whitespace-only strings are rejected too.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens a validator error into field -> message,
// which is what handlers attach as response details.
func GetValidationErrors(err error) map[string]string {
	fields := make(map[string]string)
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		fields["body"] = err.Error()
		return fields
	}
	for _, fe := range vErrs {
		fields[fe.Field()] = validationMessage(fe)
	}
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "notblank":
		return "Must not be empty or whitespace-only"
	case "timezone":
		return "Must be a valid IANA timezone name"
	case "gtfield":
		return "Must be after " + fe.Param()
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "min":
		return "Must be at least " + fe.Param()
	case "max":
		return "Must be at most " + fe.Param()
	case "gte":
		return "Must be greater than or equal to " + fe.Param()
	default:
		return "Invalid value"
	}
}
