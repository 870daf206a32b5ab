package middleware

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sis-eval/backend/internal/app/models/dto"
)

var registerOnce sync.Once

// RegisterJSONFieldNames makes gin's validator report fields by their JSON
// name, so clients see "nombre" instead of "Name".
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// validationDetails renders binding failures as one detail per field. Errors
// that are not field validations, such as malformed JSON, yield none.
func validationDetails(err error) *dto.ValidationErrors {
	details := dto.NewValidationErrors()

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return details
	}

	for _, e := range verrs {
		details.AddError(fieldName(e), formatValidationError(e))
	}
	return details
}

// fieldName returns the JSON-facing name registered for the field, falling
// back to the Go field name.
func fieldName(e validator.FieldError) string {
	if name := e.Field(); name != "" {
		return name
	}
	return e.StructField()
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := fieldName(e)
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param() + " characters"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	default:
		return field + " validation failed: " + e.Tag()
	}
}
