// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package qtypes

import (
	"errors"
	"fmt"
)

// Filter specific errors
var (
	ErrMalformedFilter     = errors.New("malformed filter")
	ErrDecode              = errors.New("decode error")
	ErrUnsupportedOperator = errors.New("unsupported operator")
)

// Error codes
const (
	CodeMalformedFilter     = "MALFORMED_FILTER"
	CodeDecodeError         = "DECODE_ERROR"
	CodeUnsupportedOperator = "UNSUPPORTED_OPERATOR"
)

// Rules reported by Validate through Error.Rule.
const (
	RuleBetweenArity     = "between-arity"
	RuleBetweenOrder     = "between-order"
	RuleTextOperator     = "text-operator"
	RuleTimestampInstant = "timestamp-instant"
	RuleKnownOperator    = "known-operator"
)

// Error represents a filter error with additional context.
type Error struct {
	Code    string
	Rule    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Rule != "" {
		msg = fmt.Sprintf("%s [%s]", e.Message, e.Rule)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel matching the error code.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrMalformedFilter:
		return e.Code == CodeMalformedFilter
	case ErrDecode:
		return e.Code == CodeDecodeError
	case ErrUnsupportedOperator:
		return e.Code == CodeUnsupportedOperator
	}
	return false
}

// NewMalformedFilterError creates an error for a container that breaks a structural rule.
func NewMalformedFilterError(rule, format string, a ...interface{}) *Error {
	return &Error{
		Code:    CodeMalformedFilter,
		Rule:    rule,
		Message: fmt.Sprintf(format, a...),
	}
}

// NewDecodeError wraps a failure to parse the wire form.
func NewDecodeError(message string, cause error) *Error {
	return &Error{
		Code:    CodeDecodeError,
		Message: message,
		Cause:   cause,
	}
}

// NewUnsupportedOperatorError creates an error for an operator the caller cannot apply.
func NewUnsupportedOperatorError(rule string, t QueryType, format string, a ...interface{}) *Error {
	return &Error{
		Code:    CodeUnsupportedOperator,
		Rule:    rule,
		Message: fmt.Sprintf("%s: %s", t.String(), fmt.Sprintf(format, a...)),
	}
}
