package qtypeshttp

import (
	"strconv"
	"strings"
	"time"

	"github.com/qolzam/qtypes"
)

// Format renders f as a query string expression that the matching Parse
// function reads back. Inactive containers render as an empty string.
//
// The grammar has no negated form for the text and collection operators and
// no insensitive form outside hp, hs and sub; those flags are dropped. An
// operator tag without a prefix renders as an empty string.
func Format(f qtypes.Filter) string {
	if !qtypes.Active(f) {
		return ""
	}
	prefix, ok := prefixFor(f)
	if !ok {
		return ""
	}

	var values []string
	switch v := f.(type) {
	case *qtypes.String:
		values = v.GetValues()
	case *qtypes.Int64:
		values = formatValues(v.GetValues(), func(n int64) string {
			return strconv.FormatInt(n, 10)
		})
	case *qtypes.Uint64:
		values = formatValues(v.GetValues(), func(n uint64) string {
			return strconv.FormatUint(n, 10)
		})
	case *qtypes.Float64:
		values = formatValues(v.GetValues(), func(n float64) string {
			return strconv.FormatFloat(n, 'g', -1, 64)
		})
	case *qtypes.Timestamp:
		for _, ts := range v.GetValues() {
			values = append(values, ts.AsTime().UTC().Format(time.RFC3339Nano))
		}
	}
	return prefix + operatorSeparator + strings.Join(values, arraySeparator)
}

func prefixFor(f qtypes.Filter) (string, bool) {
	var insensitive bool
	if s, ok := f.(*qtypes.String); ok {
		insensitive = s.GetInsensitive()
	}
	k := form{f.GetType(), f.GetNegation(), insensitive}
	if p, ok := byForm[k]; ok {
		return p, true
	}
	// Fall back to the plain operator.
	k.insensitive = false
	if p, ok := byForm[k]; ok {
		return p, true
	}
	k.negation = false
	p, ok := byForm[k]
	return p, ok
}

func formatValues[T any](values []T, format func(T) string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, format(v))
	}
	return out
}
