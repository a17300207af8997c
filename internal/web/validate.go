package web

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator for request structs.
var validate = validator.New()

// validateStruct checks a decoded request body against its validate tags.
// It returns nil when the struct is valid, otherwise a field → message map
// safe to show to clients. Struct and field names never leak; fields are
// reported by their lowercased names only.
func validateStruct(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fields["body"] = "Invalid request format"
		return fields
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			fields[field] = "This field is required"
		case "max":
			fields[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			fields[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "gte":
			fields[field] = fmt.Sprintf("Must be %s or greater", e.Param())
		default:
			fields[field] = "Invalid value"
		}
	}

	return fields
}
