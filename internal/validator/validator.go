package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired  = "is required"
	ErrMinValue  = "must be at least %s"
	ErrMinItems  = "must contain at least %s item(s)"
	ErrMinLength = "must be at least %s characters long"
	ErrInvalid   = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	validator.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	return validator
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		switch err.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf(ErrMinItems, err.Param())
		case reflect.String:
			return fmt.Sprintf(ErrMinLength, err.Param())
		default:
			return fmt.Sprintf(ErrMinValue, err.Param())
		}
	default:
		return ErrInvalid
	}
}
