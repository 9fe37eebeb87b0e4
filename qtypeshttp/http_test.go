package qtypeshttp_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/qolzam/qtypes"
	"github.com/qolzam/qtypes/qtypeshttp"
)

func TestParseString(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		given    string
		expected *qtypes.String
	}{
		"null": {
			given:    "null:",
			expected: &qtypes.String{Values: []string{""}, Type: qtypes.QueryType_NULL, Valid: true},
		},
		"not-null": {
			given:    "nnull:",
			expected: &qtypes.String{Values: []string{""}, Type: qtypes.QueryType_NULL, Valid: true, Negation: true},
		},
		"equal": {
			given:    "eq:123",
			expected: &qtypes.String{Values: []string{"123"}, Type: qtypes.QueryType_EQUAL, Valid: true},
		},
		"has-prefix": {
			given:    "hp:New",
			expected: &qtypes.String{Values: []string{"New"}, Type: qtypes.QueryType_HAS_PREFIX, Valid: true},
		},
		"has-prefix-insensitive": {
			given:    "hpi:New",
			expected: &qtypes.String{Values: []string{"New"}, Type: qtypes.QueryType_HAS_PREFIX, Valid: true, Insensitive: true},
		},
		"has-suffix": {
			given:    "hs:New",
			expected: &qtypes.String{Values: []string{"New"}, Type: qtypes.QueryType_HAS_SUFFIX, Valid: true},
		},
		"has-suffix-insensitive": {
			given:    "hsi:New",
			expected: &qtypes.String{Values: []string{"New"}, Type: qtypes.QueryType_HAS_SUFFIX, Valid: true, Insensitive: true},
		},
		"substring": {
			given:    "sub:anything",
			expected: &qtypes.String{Values: []string{"anything"}, Type: qtypes.QueryType_SUBSTRING, Valid: true},
		},
		"substring-insensitive": {
			given:    "subi:anything",
			expected: &qtypes.String{Values: []string{"anything"}, Type: qtypes.QueryType_SUBSTRING, Valid: true, Insensitive: true},
		},
		"pattern": {
			given:    "rgx:.*",
			expected: &qtypes.String{Values: []string{".*"}, Type: qtypes.QueryType_PATTERN, Valid: true},
		},
		"max-length": {
			given:    "maxl:4",
			expected: &qtypes.String{Values: []string{"4"}, Type: qtypes.QueryType_MAX_LENGTH, Valid: true},
		},
		"min-length": {
			given:    "minl:555",
			expected: &qtypes.String{Values: []string{"555"}, Type: qtypes.QueryType_MIN_LENGTH, Valid: true},
		},
		"empty": {
			given:    "",
			expected: &qtypes.String{},
		},
		"without-condition": {
			given:    "text",
			expected: &qtypes.String{Values: []string{"text"}, Type: qtypes.QueryType_EQUAL, Valid: true},
		},
		"with-condition-but-without-value": {
			given:    "neq:",
			expected: &qtypes.String{Values: []string{""}, Type: qtypes.QueryType_EQUAL, Valid: true, Negation: true},
		},
		"has-element": {
			given:    "he:555",
			expected: &qtypes.String{Values: []string{"555"}, Type: qtypes.QueryType_HAS_ELEMENT, Valid: true},
		},
		"has-any-elements": {
			given:    "hae:555,222",
			expected: &qtypes.String{Values: []string{"555", "222"}, Type: qtypes.QueryType_HAS_ANY_ELEMENT, Valid: true},
		},
		"has-all-elements": {
			given:    "hle:111,222",
			expected: &qtypes.String{Values: []string{"111", "222"}, Type: qtypes.QueryType_HAS_ALL_ELEMENTS, Valid: true},
		},
		"not-greater": {
			given:    "ngt:111",
			expected: &qtypes.String{Values: []string{"111"}, Type: qtypes.QueryType_GREATER, Valid: true, Negation: true},
		},
		"unknown-prefix": {
			given:    "abc:def,ghi",
			expected: &qtypes.String{Values: []string{"abc:def", "ghi"}, Type: qtypes.QueryType_EQUAL, Valid: true},
		},
		"value-with-colon": {
			given:    "eq:a:b",
			expected: &qtypes.String{Values: []string{"a:b"}, Type: qtypes.QueryType_EQUAL, Valid: true},
		},
		"in-with-empty-element": {
			given:    "in:a,,b",
			expected: &qtypes.String{Values: []string{"a", "", "b"}, Type: qtypes.QueryType_IN, Valid: true},
		},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := qtypeshttp.ParseString(c.given)
			if diff := cmp.Diff(c.expected, got, protocmp.Transform()); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFloat64(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		given    string
		expected *qtypes.Float64
	}{
		"empty":     {given: "", expected: &qtypes.Float64{}},
		"null":      {given: "null:", expected: &qtypes.Float64{Type: qtypes.QueryType_NULL, Valid: true}},
		"not-null":  {given: "nnull:", expected: &qtypes.Float64{Type: qtypes.QueryType_NULL, Valid: true, Negation: true}},
		"bare":      {given: "15.15", expected: &qtypes.Float64{Values: []float64{15.15}, Type: qtypes.QueryType_EQUAL, Valid: true}},
		"equal":     {given: "eq:123.15", expected: &qtypes.Float64{Values: []float64{123.15}, Type: qtypes.QueryType_EQUAL, Valid: true}},
		"not-equal": {given: "neq:123.55555", expected: &qtypes.Float64{Values: []float64{123.55555}, Type: qtypes.QueryType_EQUAL, Valid: true, Negation: true}},
		"greater":   {given: "gt:555", expected: &qtypes.Float64{Values: []float64{555}, Type: qtypes.QueryType_GREATER, Valid: true}},
		"gte":       {given: "gte:666.666", expected: &qtypes.Float64{Values: []float64{666.666}, Type: qtypes.QueryType_GREATER_EQUAL, Valid: true}},
		"less":      {given: "lt:777.666", expected: &qtypes.Float64{Values: []float64{777.666}, Type: qtypes.QueryType_LESS, Valid: true}},
		"lte":       {given: "lte:888.666", expected: &qtypes.Float64{Values: []float64{888.666}, Type: qtypes.QueryType_LESS_EQUAL, Valid: true}},
		"between":   {given: "bw:111.666,222.666", expected: &qtypes.Float64{Values: []float64{111.666, 222.666}, Type: qtypes.QueryType_BETWEEN, Valid: true}},
		"not-bw":    {given: "nbw:111.666,222", expected: &qtypes.Float64{Values: []float64{111.666, 222}, Type: qtypes.QueryType_BETWEEN, Valid: true, Negation: true}},
		"nlt":       {given: "nlt:111.666", expected: &qtypes.Float64{Values: []float64{111.666}, Type: qtypes.QueryType_LESS, Valid: true, Negation: true}},
		"ngte":      {given: "ngte:111.666", expected: &qtypes.Float64{Values: []float64{111.666}, Type: qtypes.QueryType_GREATER_EQUAL, Valid: true, Negation: true}},
		"nlte":      {given: "nlte:111.666", expected: &qtypes.Float64{Values: []float64{111.666}, Type: qtypes.QueryType_LESS_EQUAL, Valid: true, Negation: true}},
		"not-in":    {given: "nin:111.666,222.444", expected: &qtypes.Float64{Values: []float64{111.666, 222.444}, Type: qtypes.QueryType_IN, Valid: true, Negation: true}},
		"contains":  {given: "cts:111.666,222.444", expected: &qtypes.Float64{Values: []float64{111.666, 222.444}, Type: qtypes.QueryType_CONTAINS, Valid: true}},
		"contained": {given: "icb:111.666,222.444", expected: &qtypes.Float64{Values: []float64{111.666, 222.444}, Type: qtypes.QueryType_IS_CONTAINED_BY, Valid: true}},
		"overlap":   {given: "ovl:111.666,222.444", expected: &qtypes.Float64{Values: []float64{111.666, 222.444}, Type: qtypes.QueryType_OVERLAP, Valid: true}},
		"stops-at-empty": {
			given:    "in:1.5,,2.5",
			expected: &qtypes.Float64{Values: []float64{1.5}, Type: qtypes.QueryType_IN, Valid: true},
		},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := qtypeshttp.ParseFloat64(c.given)
			require.NoError(t, err)
			if diff := cmp.Diff(c.expected, got, protocmp.Transform()); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseInt64(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		given    string
		expected *qtypes.Int64
	}{
		"empty":    {given: "", expected: &qtypes.Int64{}},
		"null":     {given: "null:", expected: &qtypes.Int64{Type: qtypes.QueryType_NULL, Valid: true}},
		"bare":     {given: "15", expected: &qtypes.Int64{Values: []int64{15}, Type: qtypes.QueryType_EQUAL, Valid: true}},
		"negative": {given: "eq:-15", expected: &qtypes.Int64{Values: []int64{-15}, Type: qtypes.QueryType_EQUAL, Valid: true}},
		"in":       {given: "in:1,2,3", expected: &qtypes.Int64{Values: []int64{1, 2, 3}, Type: qtypes.QueryType_IN, Valid: true}},
		"between":  {given: "bw:10,20", expected: &qtypes.Int64{Values: []int64{10, 20}, Type: qtypes.QueryType_BETWEEN, Valid: true}},
		"not-gt":   {given: "ngt:7", expected: &qtypes.Int64{Values: []int64{7}, Type: qtypes.QueryType_GREATER, Valid: true, Negation: true}},
		"elements": {given: "hle:1,2", expected: &qtypes.Int64{Values: []int64{1, 2}, Type: qtypes.QueryType_HAS_ALL_ELEMENTS, Valid: true}},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := qtypeshttp.ParseInt64(c.given)
			require.NoError(t, err)
			if diff := cmp.Diff(c.expected, got, protocmp.Transform()); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseUint64(t *testing.T) {
	t.Parallel()

	got, err := qtypeshttp.ParseUint64("nin:1,18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 18446744073709551615}, got.GetValues())
	assert.Equal(t, qtypes.QueryType_IN, got.GetType())
	assert.True(t, got.GetNegation())
	assert.True(t, got.GetValid())

	_, err = qtypeshttp.ParseUint64("eq:-1")
	require.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	first := timestamppb.New(time.Date(2009, 10, 10, 23, 0, 0, 0, time.UTC))
	second := timestamppb.New(time.Date(2009, 11, 10, 23, 0, 0, 0, time.UTC))
	third := timestamppb.New(time.Date(2009, 12, 10, 23, 0, 0, 0, time.UTC))

	cases := map[string]struct {
		given    string
		expected *qtypes.Timestamp
	}{
		"empty":    {given: "", expected: &qtypes.Timestamp{}},
		"null":     {given: "null:", expected: &qtypes.Timestamp{Type: qtypes.QueryType_NULL, Valid: true}},
		"not-null": {given: "nnull:", expected: &qtypes.Timestamp{Type: qtypes.QueryType_NULL, Valid: true, Negation: true}},
		"equal": {
			given:    "eq:2009-11-10T23:00:00Z",
			expected: &qtypes.Timestamp{Values: []*timestamppb.Timestamp{second}, Type: qtypes.QueryType_EQUAL, Valid: true},
		},
		"bare": {
			given:    "2009-11-10T23:00:00Z",
			expected: &qtypes.Timestamp{Values: []*timestamppb.Timestamp{second}, Type: qtypes.QueryType_EQUAL, Valid: true},
		},
		"offset": {
			given:    "gte:2009-11-11T01:00:00+02:00",
			expected: &qtypes.Timestamp{Values: []*timestamppb.Timestamp{second}, Type: qtypes.QueryType_GREATER_EQUAL, Valid: true},
		},
		"greater": {
			given:    "gt:2009-11-10T23:00:00Z",
			expected: &qtypes.Timestamp{Values: []*timestamppb.Timestamp{second}, Type: qtypes.QueryType_GREATER, Valid: true},
		},
		"less": {
			given:    "lt:2009-11-10T23:00:00Z",
			expected: &qtypes.Timestamp{Values: []*timestamppb.Timestamp{second}, Type: qtypes.QueryType_LESS, Valid: true},
		},
		"lte": {
			given:    "lte:2009-11-10T23:00:00Z",
			expected: &qtypes.Timestamp{Values: []*timestamppb.Timestamp{second}, Type: qtypes.QueryType_LESS_EQUAL, Valid: true},
		},
		"between": {
			given:    "bw:2009-11-10T23:00:00Z,2009-12-10T23:00:00Z",
			expected: &qtypes.Timestamp{Values: []*timestamppb.Timestamp{second, third}, Type: qtypes.QueryType_BETWEEN, Valid: true},
		},
		"in": {
			given:    "in:2009-10-10T23:00:00Z,2009-11-10T23:00:00Z,2009-12-10T23:00:00Z",
			expected: &qtypes.Timestamp{Values: []*timestamppb.Timestamp{first, second, third}, Type: qtypes.QueryType_IN, Valid: true},
		},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := qtypeshttp.ParseTimestamp(c.given)
			require.NoError(t, err)
			if diff := cmp.Diff(c.expected, got, protocmp.Transform()); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		parse func(string) error
		given string
		kind  string
		index int
		value string
	}{
		"int64": {
			parse: func(s string) error { _, err := qtypeshttp.ParseInt64(s); return err },
			given: "in:1,x", kind: qtypeshttp.KindInt64, index: 1, value: "x",
		},
		"int64-unknown-prefix": {
			parse: func(s string) error { _, err := qtypeshttp.ParseInt64(s); return err },
			given: "5:6", kind: qtypeshttp.KindInt64, index: 0, value: "5:6",
		},
		"uint64": {
			parse: func(s string) error { _, err := qtypeshttp.ParseUint64(s); return err },
			given: "gt:-1", kind: qtypeshttp.KindUint64, index: 0, value: "-1",
		},
		"float64": {
			parse: func(s string) error { _, err := qtypeshttp.ParseFloat64(s); return err },
			given: "bw:1.5,abc", kind: qtypeshttp.KindFloat64, index: 1, value: "abc",
		},
		"timestamp-without-offset": {
			parse: func(s string) error { _, err := qtypeshttp.ParseTimestamp(s); return err },
			given: "eq:2009-11-10T23:00:00", kind: qtypeshttp.KindTimestamp, index: 0, value: "2009-11-10T23:00:00",
		},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := c.parse(c.given)
			require.Error(t, err)

			var perr *qtypeshttp.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, c.kind, perr.Kind)
			assert.Equal(t, c.index, perr.Index)
			assert.Equal(t, c.value, perr.Value)
			assert.NotNil(t, perr.Unwrap())
			assert.Contains(t, err.Error(), strconv.Quote(c.value))
		})
	}
}

func TestOperators(t *testing.T) {
	t.Parallel()

	ops := qtypeshttp.Operators()
	assert.Len(t, ops, 31)

	seen := make(map[string]bool, len(ops))
	for _, op := range ops {
		assert.False(t, seen[op.Prefix], "duplicate prefix %s", op.Prefix)
		seen[op.Prefix] = true

		got, ok := qtypeshttp.Lookup(op.Prefix)
		require.True(t, ok)
		assert.Equal(t, op, got)
	}

	_, ok := qtypeshttp.Lookup("nope")
	assert.False(t, ok)

	ops[0].Prefix = "changed"
	_, ok = qtypeshttp.Lookup("changed")
	assert.False(t, ok)
}
