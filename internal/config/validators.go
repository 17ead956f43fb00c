package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/strcrypt/pkg/aesutil"
)

// register adds the custom validators with human-readable error messages
// and reports fields by their flag label.
func register(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	if err := validator.RegisterValidationAndTranslation(
		"aesmode",
		validateMode,
		"{0} must be one of "+strings.Join(identifiers(), ", "),
	); err != nil {
		return fmt.Errorf("registering aesmode validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	otherField := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() == reflect.String && otherField.Kind() == reflect.String {
		return field.String() == "" || otherField.String() == ""
	}

	return true
}

// validateMode checks that the field names a supported cipher mode.
func validateMode(fl validator.FieldLevel) bool {
	_, err := aesutil.ParseMode(fl.Field().String())

	return err == nil
}

func identifiers() []string {
	modes := aesutil.Modes()
	names := make([]string, 0, len(modes))

	for _, mode := range modes {
		names = append(names, mode.String())
	}

	return names
}
