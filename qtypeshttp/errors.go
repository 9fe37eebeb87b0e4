package qtypeshttp

import "fmt"

// Value kinds reported by ParseError.
const (
	KindInt64     = "int64"
	KindUint64    = "uint64"
	KindFloat64   = "float64"
	KindTimestamp = "timestamp"
)

// ParseError is returned when an element of an expression cannot be
// converted to the container's value type.
type ParseError struct {
	Kind  string
	Index int
	Value string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("qtypeshttp: %s parsing error for value %d (%q): %v", e.Kind, e.Index, e.Value, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
