// Package qtypes provides protobuf messages that express optional, negatable
// filter predicates over scalar values, together with helpers to build,
// validate, encode and decode them.
//
// A container only takes part in filtering when its Valid flag is set.
// Negation wraps the whole predicate described by Type and Values; it never
// rewrites the operator.
package qtypes

import (
	"google.golang.org/protobuf/proto"
)

// Filter is implemented by String, Int64, Uint64, Float64 and Timestamp.
type Filter interface {
	proto.Message
	GetValid() bool
	GetNegation() bool
	GetType() QueryType
}

var (
	_ Filter = (*String)(nil)
	_ Filter = (*Int64)(nil)
	_ Filter = (*Uint64)(nil)
	_ Filter = (*Float64)(nil)
	_ Filter = (*Timestamp)(nil)
)

// Active reports whether f should take part in filtering.
// A nil container or one with Valid unset is treated as absent.
func Active(f Filter) bool {
	return f != nil && f.GetValid()
}

// IsText reports whether f is the text container.
func IsText(f Filter) bool {
	_, ok := f.(*String)
	return ok
}
