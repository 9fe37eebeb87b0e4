package qtypes

import (
	"google.golang.org/protobuf/proto"
)

// Value returns first value or empty string if none.
func (x *String) Value() string {
	if len(x.GetValues()) == 0 {
		return ""
	}
	return x.Values[0]
}

// WithInsensitive returns a copy of x that compares case-insensitively.
func (x *String) WithInsensitive() *String {
	if x == nil {
		return nil
	}
	c := proto.Clone(x).(*String)
	c.Insensitive = true
	return c
}

// NullString allocates valid String object that matches NULL text.
func NullString() *String {
	return &String{
		Valid: true,
		Type:  QueryType_NULL,
	}
}

// NotNullString allocates valid String object that matches any non NULL text.
func NotNullString() *String {
	return &String{
		Valid:    true,
		Negation: true,
		Type:     QueryType_NULL,
	}
}

// EqualString allocates valid String object of type equal with given value.
func EqualString(s string) *String {
	return newString(QueryType_EQUAL, false, s)
}

// NotEqualString allocates valid negated String object of type equal with given value.
func NotEqualString(s string) *String {
	return newString(QueryType_EQUAL, true, s)
}

// InString allocates valid String object of type in with given values.
func InString(v ...string) *String {
	return newString(QueryType_IN, false, v...)
}

// HasPrefixString ...
func HasPrefixString(s string) *String {
	return newString(QueryType_HAS_PREFIX, false, s)
}

// HasSuffixString ...
func HasSuffixString(s string) *String {
	return newString(QueryType_HAS_SUFFIX, false, s)
}

// SubString allocates valid String object that matches text containing s.
func SubString(s string) *String {
	return newString(QueryType_SUBSTRING, false, s)
}

// PatternString allocates valid String object that matches text against pattern p.
// The pattern is carried as is; its dialect is up to the consumer.
func PatternString(p string) *String {
	return newString(QueryType_PATTERN, false, p)
}

// MinLengthString allocates valid String object that matches text of at least n characters.
func MinLengthString(n string) *String {
	return newString(QueryType_MIN_LENGTH, false, n)
}

// MaxLengthString allocates valid String object that matches text of at most n characters.
func MaxLengthString(n string) *String {
	return newString(QueryType_MAX_LENGTH, false, n)
}

func newString(t QueryType, negation bool, v ...string) *String {
	return &String{
		Values:   v,
		Valid:    true,
		Negation: negation,
		Type:     t,
	}
}

// Value returns first value or 0 if none.
func (x *Int64) Value() int64 {
	if len(x.GetValues()) == 0 {
		return 0
	}
	return x.Values[0]
}

// NullInt64 allocates valid Int64 object that matches NULL numbers.
func NullInt64() *Int64 {
	return &Int64{
		Valid: true,
		Type:  QueryType_NULL,
	}
}

// NotNullInt64 allocates valid Int64 object that matches any non NULL number.
func NotNullInt64() *Int64 {
	return &Int64{
		Valid:    true,
		Negation: true,
		Type:     QueryType_NULL,
	}
}

// EqualInt64 allocates valid Int64 object of type equal with given value.
func EqualInt64(i int64) *Int64 {
	return newInt64(QueryType_EQUAL, false, i)
}

// NotEqualInt64 allocates valid Int64 negated object of type equal with given value.
func NotEqualInt64(i int64) *Int64 {
	return newInt64(QueryType_EQUAL, true, i)
}

// InInt64 allocates valid Int64 object of type in with given values.
func InInt64(v ...int64) *Int64 {
	return newInt64(QueryType_IN, false, v...)
}

// BetweenInt64 allocates valid Int64 object of type between with given bounds.
// Bounds are stored in the given order; Validate reports inverted ones.
func BetweenInt64(from, to int64) *Int64 {
	return newInt64(QueryType_BETWEEN, false, from, to)
}

// GreaterInt64 allocates valid Int64 object of type greater with given value.
func GreaterInt64(i int64) *Int64 {
	return newInt64(QueryType_GREATER, false, i)
}

// GreaterEqualInt64 allocates valid Int64 object of type greater equal with given value.
func GreaterEqualInt64(i int64) *Int64 {
	return newInt64(QueryType_GREATER_EQUAL, false, i)
}

// LessInt64 allocates valid Int64 object of type less with given value.
func LessInt64(i int64) *Int64 {
	return newInt64(QueryType_LESS, false, i)
}

// LessEqualInt64 allocates valid Int64 object of type less equal with given value.
func LessEqualInt64(i int64) *Int64 {
	return newInt64(QueryType_LESS_EQUAL, false, i)
}

func newInt64(t QueryType, negation bool, v ...int64) *Int64 {
	return &Int64{
		Values:   v,
		Valid:    true,
		Negation: negation,
		Type:     t,
	}
}

// Value returns first value or 0 if none.
func (x *Uint64) Value() uint64 {
	if len(x.GetValues()) == 0 {
		return 0
	}
	return x.Values[0]
}

// NullUint64 allocates valid Uint64 object that matches NULL numbers.
func NullUint64() *Uint64 {
	return &Uint64{
		Valid: true,
		Type:  QueryType_NULL,
	}
}

// NotNullUint64 allocates valid Uint64 object that matches any non NULL number.
func NotNullUint64() *Uint64 {
	return &Uint64{
		Valid:    true,
		Negation: true,
		Type:     QueryType_NULL,
	}
}

// EqualUint64 allocates valid Uint64 object of type equal with given value.
func EqualUint64(i uint64) *Uint64 {
	return newUint64(QueryType_EQUAL, false, i)
}

// NotEqualUint64 allocates valid Uint64 negated object of type equal with given value.
func NotEqualUint64(i uint64) *Uint64 {
	return newUint64(QueryType_EQUAL, true, i)
}

// InUint64 allocates valid Uint64 object of type in with given values.
func InUint64(v ...uint64) *Uint64 {
	return newUint64(QueryType_IN, false, v...)
}

// BetweenUint64 allocates valid Uint64 object of type between with given bounds.
// Bounds are stored in the given order; Validate reports inverted ones.
func BetweenUint64(from, to uint64) *Uint64 {
	return newUint64(QueryType_BETWEEN, false, from, to)
}

// GreaterUint64 allocates valid Uint64 object of type greater with given value.
func GreaterUint64(i uint64) *Uint64 {
	return newUint64(QueryType_GREATER, false, i)
}

// GreaterEqualUint64 allocates valid Uint64 object of type greater equal with given value.
func GreaterEqualUint64(i uint64) *Uint64 {
	return newUint64(QueryType_GREATER_EQUAL, false, i)
}

// LessUint64 allocates valid Uint64 object of type less with given value.
func LessUint64(i uint64) *Uint64 {
	return newUint64(QueryType_LESS, false, i)
}

// LessEqualUint64 allocates valid Uint64 object of type less equal with given value.
func LessEqualUint64(i uint64) *Uint64 {
	return newUint64(QueryType_LESS_EQUAL, false, i)
}

func newUint64(t QueryType, negation bool, v ...uint64) *Uint64 {
	return &Uint64{
		Values:   v,
		Valid:    true,
		Negation: negation,
		Type:     t,
	}
}

// Value returns first value or 0 if none.
func (x *Float64) Value() float64 {
	if len(x.GetValues()) == 0 {
		return 0
	}
	return x.Values[0]
}

// NullFloat64 allocates valid Float64 object that matches NULL numbers.
func NullFloat64() *Float64 {
	return &Float64{
		Valid: true,
		Type:  QueryType_NULL,
	}
}

// NotNullFloat64 allocates valid Float64 object that matches any non NULL number.
func NotNullFloat64() *Float64 {
	return &Float64{
		Valid:    true,
		Negation: true,
		Type:     QueryType_NULL,
	}
}

// EqualFloat64 allocates valid Float64 object of type equal with given value.
func EqualFloat64(i float64) *Float64 {
	return newFloat64(QueryType_EQUAL, false, i)
}

// NotEqualFloat64 allocates valid Float64 negated object of type equal with given value.
func NotEqualFloat64(i float64) *Float64 {
	return newFloat64(QueryType_EQUAL, true, i)
}

// InFloat64 allocates valid Float64 object of type in with given values.
func InFloat64(v ...float64) *Float64 {
	return newFloat64(QueryType_IN, false, v...)
}

// BetweenFloat64 allocates valid Float64 object of type between with given bounds.
// Bounds are stored in the given order; Validate reports inverted ones.
func BetweenFloat64(from, to float64) *Float64 {
	return newFloat64(QueryType_BETWEEN, false, from, to)
}

// GreaterFloat64 allocates valid Float64 object of type greater with given value.
func GreaterFloat64(i float64) *Float64 {
	return newFloat64(QueryType_GREATER, false, i)
}

// GreaterEqualFloat64 allocates valid Float64 object of type greater equal with given value.
func GreaterEqualFloat64(i float64) *Float64 {
	return newFloat64(QueryType_GREATER_EQUAL, false, i)
}

// LessFloat64 allocates valid Float64 object of type less with given value.
func LessFloat64(i float64) *Float64 {
	return newFloat64(QueryType_LESS, false, i)
}

// LessEqualFloat64 allocates valid Float64 object of type less equal with given value.
func LessEqualFloat64(i float64) *Float64 {
	return newFloat64(QueryType_LESS_EQUAL, false, i)
}

func newFloat64(t QueryType, negation bool, v ...float64) *Float64 {
	return &Float64{
		Values:   v,
		Valid:    true,
		Negation: negation,
		Type:     t,
	}
}
