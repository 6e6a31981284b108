package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// ConfigValidator provides a fluent interface for validating configuration values.
// It collects all validation errors rather than failing on the first one.
type ConfigValidator struct {
	errors []error
	name   string // config struct name for error messages
}

// NewConfigValidator creates a new config validator with the given config name.
func NewConfigValidator(configName string) *ConfigValidator {
	return &ConfigValidator{name: configName}
}

func (cv *ConfigValidator) addf(field, format string, args ...any) {
	cv.errors = append(cv.errors, fmt.Errorf("%s.%s: %s", cv.name, field, fmt.Sprintf(format, args...)))
}

// Required validates that a string field is not empty.
func (cv *ConfigValidator) Required(field, value string) *ConfigValidator {
	if value == "" {
		cv.addf(field, "required field is empty")
	}
	return cv
}

// MaxInt validates that an int field does not exceed the maximum value.
func (cv *ConfigValidator) MaxInt(field string, value, limit int) *ConfigValidator {
	if value > limit {
		cv.addf(field, "value %d exceeds maximum %d", value, limit)
	}
	return cv
}

// Pattern validates that a string field matches re. desc names the
// expected shape in the error message.
func (cv *ConfigValidator) Pattern(field, value string, re *regexp.Regexp, desc string) *ConfigValidator {
	if !re.MatchString(value) {
		cv.addf(field, "value %q is not %s", value, desc)
	}
	return cv
}

// Struct runs the go-playground struct tags of v and records every failure.
func (cv *ConfigValidator) Struct(v any) *ConfigValidator {
	cv.errors = append(cv.errors, structErrors(v)...)
	return cv
}

// When conditionally applies validations if the condition is true.
func (cv *ConfigValidator) When(condition bool, validations func(*ConfigValidator)) *ConfigValidator {
	if condition {
		validations(cv)
	}
	return cv
}

// HasErrors returns true if any validation errors occurred.
func (cv *ConfigValidator) HasErrors() bool {
	return len(cv.errors) > 0
}

// Errors returns all validation errors.
func (cv *ConfigValidator) Errors() []error {
	return cv.errors
}

// Validate joins every collected error, or returns nil.
func (cv *ConfigValidator) Validate() error {
	return errors.Join(cv.errors...)
}
