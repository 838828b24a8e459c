// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the error builder and the standard constructors every
//              numerical foundation module uses for operator, payload, wrapper
//              construction and configuration failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function
// - 2026-10-16 v0.2.0: Constructors for dispatch, payload and construction errors

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	numerror "github.com/msto63/numerical/foundation/core/error"
)

// Module identifiers used in error details
const (
	ModuleOperators  = "operators"
	ModuleQuantity   = "quantity"
	ModuleMixins     = "mixins"
	ModuleQuantities = "quantities"
	ModuleMathx      = "mathx"
	ModuleArrayx     = "arrayx"
	ModuleDatax      = "datax"
	ModuleConfig     = "config"
)

// ErrNotImplemented is returned by payload operator hooks that do not support
// the given operand pair. Callers compare against it with errors.Is and must
// not modify it.
var ErrNotImplemented = numerror.New("operation not implemented for operand types").
	WithCode(numerror.CodeNotImplemented)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  numerror.Severity
	code      numerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: numerror.SeverityMedium,
		code:     numerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity numerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code numerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *numerror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s: %s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s: operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *numerror.Error
	if eb.cause != nil {
		err = numerror.Wrap(eb.cause, eb.message)
	} else {
		err = numerror.New(eb.message)
	}

	err = err.WithSeverity(eb.severity).WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.operation)
	}
	return err
}

// TypeName renders the dynamic type of an operand the way error messages show it
func TypeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

// UnsupportedOperands reports that no primitive accepts the given operands
func UnsupportedOperands(module, symbol string, operands ...interface{}) *numerror.Error {
	names := make([]string, len(operands))
	for i, op := range operands {
		names[i] = "'" + TypeName(op) + "'"
	}

	eb := NewErrorBuilder(module).
		Operation(symbol).
		Messagef("unsupported operand type(s) for %s: %s", symbol, strings.Join(names, " and ")).
		Code(numerror.CodeUnsupportedOperand)
	for i, op := range operands {
		eb.Detail(fmt.Sprintf("operand%d", i), TypeName(op))
	}
	return eb.Build()
}

// Arity reports a primitive called with the wrong number of arguments
func Arity(module, symbol string, want, got int) *numerror.Error {
	return NewErrorBuilder(module).
		Operation(symbol).
		Messagef("%s expects %d argument(s), got %d", symbol, want, got).
		Code(numerror.CodeArity).
		Detail("want", want).
		Detail("got", got).
		Build()
}

// PayloadType reports data that cannot be interpreted as numeric array-like data.
// The low-level failure is always kept as cause.
func PayloadType(module, operation string, value interface{}, cause error) *numerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("cannot interpret %v (%s) as numeric data", value, TypeName(value)).
		Cause(cause).
		Code(numerror.CodePayloadType).
		Detail("type", TypeName(value)).
		Build()
}

// Construction reports a wrapper constructor rejecting a raw result
func Construction(typeName string, raw interface{}, cause error) *numerror.Error {
	return NewErrorBuilder(ModuleQuantity).
		Operation("construct").
		Messagef("cannot construct %s from %v (%s)", typeName, raw, TypeName(raw)).
		Cause(cause).
		Code(numerror.CodeConstruction).
		Detail("type", typeName).
		Detail("raw_type", TypeName(raw)).
		Build()
}

// DivisionByZero reports integer or exact division by zero
func DivisionByZero(module, symbol string) *numerror.Error {
	return NewErrorBuilder(module).
		Operation(symbol).
		Message("division by zero").
		Code(numerror.CodeDivisionByZero).
		Build()
}

// Overflow reports an integer result that does not fit the payload type
func Overflow(module, symbol string, operands ...interface{}) *numerror.Error {
	return NewErrorBuilder(module).
		Operation(symbol).
		Messagef("integer overflow in %s with operands %v", symbol, operands).
		Code(numerror.CodeOverflow).
		Build()
}

// IndexOutOfRange reports an index outside [-length, length)
func IndexOutOfRange(module, operation string, index, length int) *numerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("index %d out of range for length %d", index, length).
		Code(numerror.CodeIndexOutOfRange).
		Detail("index", index).
		Detail("length", length).
		Build()
}

// ShapeMismatch reports operands whose shapes cannot be combined element-wise
func ShapeMismatch(module, symbol string, left, right []int) *numerror.Error {
	return NewErrorBuilder(module).
		Operation(symbol).
		Messagef("operands could not be broadcast together with shapes %v %v", left, right).
		Code(numerror.CodeShapeMismatch).
		Detail("left", left).
		Detail("right", right).
		Build()
}

// InvalidConversion reports a failed conversion of a value to a target type
func InvalidConversion(module, target string, value interface{}, cause error) *numerror.Error {
	return NewErrorBuilder(module).
		Operation(target).
		Messagef("cannot convert %v (%s) to %s", value, TypeName(value), target).
		Cause(cause).
		Code(numerror.CodeInvalidConversion).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *numerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s: expected %s", operation, expected).
		Code(numerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(numerror.SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *numerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(numerror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(numerror.SeverityLow).
		Build()
}

// ConfigFailed reports a configuration file that could not be read or decoded
func ConfigFailed(path string, cause error) *numerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("cannot load configuration %s", path).
		Cause(cause).
		Code(numerror.CodeConfigError).
		Detail("path", path).
		Build()
}

// ConfigInvalid reports a configuration that failed validation
func ConfigInvalid(cause error) *numerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Message("invalid configuration").
		Cause(cause).
		Code(numerror.CodeInvalidConfig).
		Build()
}

// IsPayloadType reports whether err is or wraps a payload type error
func IsPayloadType(err error) bool {
	return numerror.HasCode(err, numerror.CodePayloadType)
}

// IsConstruction reports whether err is or wraps a construction error
func IsConstruction(err error) bool {
	return numerror.HasCode(err, numerror.CodeConstruction)
}

// IsNotImplemented reports whether err signals an unsupported operand pair
func IsNotImplemented(err error) bool {
	return stderrors.Is(err, ErrNotImplemented)
}

// ExtractModule returns the module recorded on the outermost structured error
func ExtractModule(err error) string {
	var e *numerror.Error
	if stderrors.As(err, &e) {
		if module, ok := e.Details()["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractOperation returns the operation recorded on the outermost structured error
func ExtractOperation(err error) string {
	var e *numerror.Error
	if stderrors.As(err, &e) {
		return e.Operation()
	}
	return ""
}
