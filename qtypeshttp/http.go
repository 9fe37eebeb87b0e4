// Package qtypeshttp maps query string expressions onto qtypes containers.
//
// An expression has the form [<op>:]<v1>[,<v2>...], for example
// "bw:10,20" or "hpi:john". Input without a known operator prefix is
// read as an equality over the whole input.
package qtypeshttp

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/qolzam/qtypes"
)

const (
	arraySeparator    = ","
	operatorSeparator = ":"
)

// Operator prefixes
const (
	Null                  = "null"
	NotNull               = "nnull"
	Equal                 = "eq"
	NotEqual              = "neq"
	GreaterThan           = "gt"
	NotGreaterThan        = "ngt"
	GreaterThanOrEqual    = "gte"
	NotGreaterThanOrEqual = "ngte"
	LessThan              = "lt"
	NotLessThan           = "nlt"
	LessThanOrEqual       = "lte"
	NotLessThanOrEqual    = "nlte"
	Between               = "bw"
	NotBetween            = "nbw"
	In                    = "in"
	NotIn                 = "nin"
	HasPrefix             = "hp"
	HasPrefixInsensitive  = "hpi"
	HasSuffix             = "hs"
	HasSuffixInsensitive  = "hsi"
	Substring             = "sub"
	SubstringInsensitive  = "subi"
	Pattern               = "rgx"
	MinLength             = "minl"
	MaxLength             = "maxl"
	Contains              = "cts"
	IsContainedBy         = "icb"
	Overlap               = "ovl"
	HasElement            = "he"
	HasAnyElement         = "hae"
	HasAllElements        = "hle"
)

// Operator describes what a query string prefix sets on a container.
type Operator struct {
	Prefix      string
	Type        qtypes.QueryType
	Negation    bool
	Insensitive bool
}

var operators = []Operator{
	{Prefix: Null, Type: qtypes.QueryType_NULL},
	{Prefix: NotNull, Type: qtypes.QueryType_NULL, Negation: true},
	{Prefix: Equal, Type: qtypes.QueryType_EQUAL},
	{Prefix: NotEqual, Type: qtypes.QueryType_EQUAL, Negation: true},
	{Prefix: GreaterThan, Type: qtypes.QueryType_GREATER},
	{Prefix: NotGreaterThan, Type: qtypes.QueryType_GREATER, Negation: true},
	{Prefix: GreaterThanOrEqual, Type: qtypes.QueryType_GREATER_EQUAL},
	{Prefix: NotGreaterThanOrEqual, Type: qtypes.QueryType_GREATER_EQUAL, Negation: true},
	{Prefix: LessThan, Type: qtypes.QueryType_LESS},
	{Prefix: NotLessThan, Type: qtypes.QueryType_LESS, Negation: true},
	{Prefix: LessThanOrEqual, Type: qtypes.QueryType_LESS_EQUAL},
	{Prefix: NotLessThanOrEqual, Type: qtypes.QueryType_LESS_EQUAL, Negation: true},
	{Prefix: Between, Type: qtypes.QueryType_BETWEEN},
	{Prefix: NotBetween, Type: qtypes.QueryType_BETWEEN, Negation: true},
	{Prefix: In, Type: qtypes.QueryType_IN},
	{Prefix: NotIn, Type: qtypes.QueryType_IN, Negation: true},
	{Prefix: HasPrefix, Type: qtypes.QueryType_HAS_PREFIX},
	{Prefix: HasPrefixInsensitive, Type: qtypes.QueryType_HAS_PREFIX, Insensitive: true},
	{Prefix: HasSuffix, Type: qtypes.QueryType_HAS_SUFFIX},
	{Prefix: HasSuffixInsensitive, Type: qtypes.QueryType_HAS_SUFFIX, Insensitive: true},
	{Prefix: Substring, Type: qtypes.QueryType_SUBSTRING},
	{Prefix: SubstringInsensitive, Type: qtypes.QueryType_SUBSTRING, Insensitive: true},
	{Prefix: Pattern, Type: qtypes.QueryType_PATTERN},
	{Prefix: MinLength, Type: qtypes.QueryType_MIN_LENGTH},
	{Prefix: MaxLength, Type: qtypes.QueryType_MAX_LENGTH},
	{Prefix: Contains, Type: qtypes.QueryType_CONTAINS},
	{Prefix: IsContainedBy, Type: qtypes.QueryType_IS_CONTAINED_BY},
	{Prefix: Overlap, Type: qtypes.QueryType_OVERLAP},
	{Prefix: HasElement, Type: qtypes.QueryType_HAS_ELEMENT},
	{Prefix: HasAnyElement, Type: qtypes.QueryType_HAS_ANY_ELEMENT},
	{Prefix: HasAllElements, Type: qtypes.QueryType_HAS_ALL_ELEMENTS},
}

type form struct {
	t           qtypes.QueryType
	negation    bool
	insensitive bool
}

var (
	byPrefix = make(map[string]Operator, len(operators))
	byForm   = make(map[form]string, len(operators))
)

func init() {
	for _, op := range operators {
		byPrefix[op.Prefix] = op
		byForm[form{op.Type, op.Negation, op.Insensitive}] = op.Prefix
	}
}

// Operators returns every known prefix in table order.
func Operators() []Operator {
	return slices.Clone(operators)
}

// Lookup returns the operator registered for prefix.
func Lookup(prefix string) (Operator, bool) {
	op, ok := byPrefix[prefix]
	return op, ok
}

// split separates the operator from the values. Only the text before the
// first colon is considered, so values may contain colons themselves.
func split(s string) (Operator, []string) {
	if p, rest, ok := strings.Cut(s, operatorSeparator); ok {
		if op, ok := byPrefix[p]; ok {
			return op, strings.Split(rest, arraySeparator)
		}
	}
	return Operator{Type: qtypes.QueryType_EQUAL}, strings.Split(s, arraySeparator)
}

// ParseString allocates a String based on s.
// If s is prefixed with a known operator, e.g. "hp:New", the returned object
// gets the same type. Values are kept verbatim, empty ones included.
func ParseString(s string) *qtypes.String {
	if s == "" {
		return &qtypes.String{}
	}
	op, values := split(s)
	return &qtypes.String{
		Values:      values,
		Valid:       true,
		Negation:    op.Negation,
		Type:        op.Type,
		Insensitive: op.Insensitive,
	}
}

// ParseInt64 allocates an Int64 based on s.
func ParseInt64(s string) (*qtypes.Int64, error) {
	if s == "" {
		return &qtypes.Int64{}, nil
	}
	op, values, err := parseValues(s, KindInt64, func(v string) (int64, error) {
		return strconv.ParseInt(v, 10, 64)
	})
	if err != nil {
		return nil, err
	}
	return &qtypes.Int64{
		Values:   values,
		Valid:    true,
		Negation: op.Negation,
		Type:     op.Type,
	}, nil
}

// ParseUint64 allocates an Uint64 based on s.
func ParseUint64(s string) (*qtypes.Uint64, error) {
	if s == "" {
		return &qtypes.Uint64{}, nil
	}
	op, values, err := parseValues(s, KindUint64, func(v string) (uint64, error) {
		return strconv.ParseUint(v, 10, 64)
	})
	if err != nil {
		return nil, err
	}
	return &qtypes.Uint64{
		Values:   values,
		Valid:    true,
		Negation: op.Negation,
		Type:     op.Type,
	}, nil
}

// ParseFloat64 allocates a Float64 based on s.
func ParseFloat64(s string) (*qtypes.Float64, error) {
	if s == "" {
		return &qtypes.Float64{}, nil
	}
	op, values, err := parseValues(s, KindFloat64, func(v string) (float64, error) {
		return strconv.ParseFloat(v, 64)
	})
	if err != nil {
		return nil, err
	}
	return &qtypes.Float64{
		Values:   values,
		Valid:    true,
		Negation: op.Negation,
		Type:     op.Type,
	}, nil
}

// ParseTimestamp allocates a Timestamp based on s.
// Values are RFC 3339 instants with a mandatory offset and are stored in UTC.
func ParseTimestamp(s string) (*qtypes.Timestamp, error) {
	if s == "" {
		return &qtypes.Timestamp{}, nil
	}
	op, values, err := parseValues(s, KindTimestamp, func(v string) (*timestamppb.Timestamp, error) {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, err
		}
		return timestamppb.New(t.UTC()), nil
	})
	if err != nil {
		return nil, err
	}
	return &qtypes.Timestamp{
		Values:   values,
		Valid:    true,
		Negation: op.Negation,
		Type:     op.Type,
	}, nil
}

// parseValues converts every element up to the first empty one.
func parseValues[T any](s, kind string, parse func(string) (T, error)) (Operator, []T, error) {
	op, incoming := split(s)
	outgoing := make([]T, 0, len(incoming))
	for i, v := range incoming {
		if v == "" {
			break
		}
		vv, err := parse(v)
		if err != nil {
			return op, nil, &ParseError{Kind: kind, Index: i, Value: v, Cause: err}
		}
		outgoing = append(outgoing, vv)
	}
	return op, outgoing, nil
}
