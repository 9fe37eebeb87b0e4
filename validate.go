// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package qtypes

import (
	"cmp"
	"strings"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// Validate checks the structural rules of an active container.
// Inactive containers are always valid, whatever their other fields hold.
//
// Violations are reported as *Error with code MALFORMED_FILTER and the rule
// that failed. An operator tag outside the known range is reported as
// UNSUPPORTED_OPERATOR instead, since it is well formed but meaningless here.
func Validate(f Filter) error {
	if !Active(f) {
		return nil
	}

	t := f.GetType()
	if !t.Known() {
		return NewUnsupportedOperatorError(RuleKnownOperator, t, "operator is not defined")
	}

	switch v := f.(type) {
	case *String:
		if v.GetInsensitive() {
			return validateBetween(t, v.GetValues(), func(a, b string) bool {
				return strings.ToLower(a) <= strings.ToLower(b)
			})
		}
		return validateBetween(t, v.GetValues(), lessEqual[string])
	case *Int64:
		if err := rejectTextOperator(f); err != nil {
			return err
		}
		return validateBetween(t, v.GetValues(), lessEqual[int64])
	case *Uint64:
		if err := rejectTextOperator(f); err != nil {
			return err
		}
		return validateBetween(t, v.GetValues(), lessEqual[uint64])
	case *Float64:
		if err := rejectTextOperator(f); err != nil {
			return err
		}
		// NaN bounds have no order, so lessEqual fails for them as well.
		return validateBetween(t, v.GetValues(), lessEqual[float64])
	case *Timestamp:
		if err := rejectTextOperator(f); err != nil {
			return err
		}
		for i, ts := range v.GetValues() {
			if ts == nil {
				return NewMalformedFilterError(RuleTimestampInstant, "value %d is nil", i)
			}
			if err := ts.CheckValid(); err != nil {
				e := NewMalformedFilterError(RuleTimestampInstant, "value %d is not a valid instant", i)
				e.Cause = err
				return e
			}
		}
		return validateBetween(t, v.GetValues(), func(a, b *timestamppb.Timestamp) bool {
			return compareTimestamp(a, b) <= 0
		})
	default:
		return NewMalformedFilterError("", "unsupported container %T", f)
	}
}

func rejectTextOperator(f Filter) error {
	if t := f.GetType(); t.TextOnly() {
		return NewMalformedFilterError(RuleTextOperator, "%s is only defined for text, got %s", t, f.ProtoReflect().Descriptor().Name())
	}
	return nil
}

func validateBetween[T any](t QueryType, values []T, ordered func(a, b T) bool) error {
	if t != QueryType_BETWEEN {
		return nil
	}
	if len(values) != 2 {
		return NewMalformedFilterError(RuleBetweenArity, "between expects exactly 2 values, got %d", len(values))
	}
	if !ordered(values[0], values[1]) {
		return NewMalformedFilterError(RuleBetweenOrder, "lower bound %v is not before upper bound %v", values[0], values[1])
	}
	return nil
}

func lessEqual[T cmp.Ordered](a, b T) bool {
	return a <= b
}

func compareTimestamp(a, b *timestamppb.Timestamp) int {
	if c := cmp.Compare(a.GetSeconds(), b.GetSeconds()); c != 0 {
		return c
	}
	return cmp.Compare(a.GetNanos(), b.GetNanos())
}
