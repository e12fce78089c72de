// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	aeadDomain "github.com/allisson/aeadbench/internal/aead/domain"
	apperrors "github.com/allisson/aeadbench/internal/errors"
)

// WrapValidationError wraps validation errors as ErrInvalidConfig
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidConfig, err.Error())
}

// KnownAlgorithm validates that a value names a compiled-in AEAD algorithm
var KnownAlgorithm = validation.By(func(value interface{}) error {
	var alg aeadDomain.Algorithm
	switch v := value.(type) {
	case aeadDomain.Algorithm:
		alg = v
	case string:
		alg = aeadDomain.Algorithm(v)
	default:
		return validation.NewError("validation_algorithm_type", "must be an algorithm name")
	}
	if _, err := aeadDomain.Lookup(alg); err != nil {
		return validation.NewError("validation_algorithm_unknown", "must be a supported algorithm")
	}
	return nil
})

// DatabaseDriver validates that a string names a supported database driver
var DatabaseDriver = validation.In("postgres", "mysql").Error("must be postgres or mysql")

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
