package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens validator errors into field -> message.
func GetValidationErrors(err error) map[string]string {
	errors := map[string]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["error"] = err.Error()
		return errors
	}

	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:]
		switch fieldErr.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "min":
			errors[field] = fmt.Sprintf("Must be at least %s", fieldErr.Param())
		case "max":
			errors[field] = fmt.Sprintf("Must be at most %s", fieldErr.Param())
		default:
			errors[field] = fmt.Sprintf("Failed on '%s' validation", fieldErr.Tag())
		}
	}

	return errors
}
