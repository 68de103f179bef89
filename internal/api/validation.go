package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasklist-api/internal/domain"
)

// validate is the shared validator instance for request payloads.
var validate = newValidator()

// newValidator builds the validator with JSON tag names and the task_status
// membership check registered.
func newValidator() *validator.Validate {
	v := validator.New()

	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Membership check against the fixed status set. Registered statically;
	// the rule never changes at runtime.
	err := v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		return domain.TaskStatus(fl.Field().String()).IsValid()
	})
	if err != nil {
		// ALLOW-PANIC: registration only fails on a programming error
		panic(fmt.Sprintf("failed to register task_status validation: %v", err))
	}

	return v
}

// validateStruct validates a request payload and converts any failures into
// a field → messages map suitable for a 422 response. Returns nil when the
// payload is valid.
func validateStruct(v interface{}) map[string][]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return map[string][]string{"request": {"is invalid"}}
	}

	fieldErrors := make(map[string][]string, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Field()
		fieldErrors[field] = append(fieldErrors[field], validationMessage(fe))
	}
	return fieldErrors
}

// validationMessage maps a single validation failure to a client-facing
// message. Messages name the constraint, not internal rule syntax.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", fe.Field())
	case "min":
		if fe.Kind() == reflect.String && fe.Param() == "1" {
			return fmt.Sprintf("The %s field cannot be empty.", fe.Field())
		}
		return fmt.Sprintf("The %s must be at least %s characters.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", fe.Field(), fe.Param())
	case "task_status":
		return fmt.Sprintf("The %s must be one of: %s, %s, %s.",
			fe.Field(),
			domain.TaskStatusPending,
			domain.TaskStatusInProgress,
			domain.TaskStatusDone)
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}
