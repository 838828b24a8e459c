// File: validation.go
// Title: Configuration Validation
// Description: Validates decoded configuration structs against their
//              `validate` struct tags and reports every failing field.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of rule-based validation
// - 2026-10-16 v0.2.0: Struct tag validation

package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	numerror "github.com/msto63/numerical/foundation/core/error"
	numerrors "github.com/msto63/numerical/foundation/core/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks out against its `validate` struct tags
func Validate(out interface{}) error {
	err := validate.Struct(out)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return numerrors.ConfigInvalid(err)
	}

	failures := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		failures = append(failures, describe(fe))
	}

	return numerror.Wrap(err, "invalid configuration: "+strings.Join(failures, "; ")).
		WithCode(numerror.CodeValidationFailed).
		WithOperation("config.validate").
		WithDetail("fields", len(fieldErrs))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s must satisfy %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s must satisfy %s (got %v)", field, fe.Tag(), fe.Value())
}
