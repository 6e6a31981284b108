package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-rrgraph/pkg/logging"
)

// validate is a singleton validator instance
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// loglevel accepts any name logging.ParseLevel understands
	err := v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, ok := logging.ParseLevel(fl.Field().String())
		return ok
	})
	if err != nil {
		panic(fmt.Sprintf("validation: register loglevel tag: %v", err))
	}
	return v
}

// ValidateStruct checks the `validate` struct tags of v and joins every
// failure into one error.
func ValidateStruct(v any) error {
	return errors.Join(structErrors(v)...)
}

func structErrors(v any) []error {
	if v == nil {
		return []error{errors.New("value cannot be nil")}
	}
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []error{err}
	}
	errs := make([]error, 0, len(validationErrs))
	for _, e := range validationErrs {
		errs = append(errs, formatFieldError(e))
	}
	return errs
}

// formatFieldError converts one validator failure to a readable error
func formatFieldError(e validator.FieldError) error {
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "min", "gte":
		return fmt.Errorf("%s: must be at least %s", field, e.Param())
	case "max", "lte":
		return fmt.Errorf("%s: must not exceed %s", field, e.Param())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s]", field, e.Param())
	case "loglevel":
		return fmt.Errorf("%s: unknown log level %q", field, e.Value())
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}
