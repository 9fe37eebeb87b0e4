package commands

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/qolzam/qtypes"
	"github.com/qolzam/qtypes/qtypeshttp"
)

type kind struct {
	parse func(string) (qtypes.Filter, error)
	empty func() qtypes.Filter
}

var kinds = map[string]kind{
	"string": {
		parse: func(s string) (qtypes.Filter, error) { return qtypeshttp.ParseString(s), nil },
		empty: func() qtypes.Filter { return &qtypes.String{} },
	},
	"int64": {
		parse: func(s string) (qtypes.Filter, error) { return qtypeshttp.ParseInt64(s) },
		empty: func() qtypes.Filter { return &qtypes.Int64{} },
	},
	"uint64": {
		parse: func(s string) (qtypes.Filter, error) { return qtypeshttp.ParseUint64(s) },
		empty: func() qtypes.Filter { return &qtypes.Uint64{} },
	},
	"float64": {
		parse: func(s string) (qtypes.Filter, error) { return qtypeshttp.ParseFloat64(s) },
		empty: func() qtypes.Filter { return &qtypes.Float64{} },
	},
	"timestamp": {
		parse: func(s string) (qtypes.Filter, error) { return qtypeshttp.ParseTimestamp(s) },
		empty: func() qtypes.Filter { return &qtypes.Timestamp{} },
	},
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupKind(name string) (kind, error) {
	k, ok := kinds[strings.ToLower(name)]
	if !ok {
		return kind{}, fmt.Errorf("unknown kind %q, expected one of: %s", name, strings.Join(kindNames(), ", "))
	}
	return k, nil
}

type filterView struct {
	Container   string
	Values      interface{}
	Valid       bool
	Negation    bool
	Type        string
	Insensitive bool
}

func newFilterView(f qtypes.Filter) filterView {
	v := filterView{
		Container: string(f.ProtoReflect().Descriptor().Name()),
		Valid:     f.GetValid(),
		Negation:  f.GetNegation(),
		Type:      f.GetType().String(),
	}
	switch c := f.(type) {
	case *qtypes.String:
		v.Values = c.GetValues()
		v.Insensitive = c.GetInsensitive()
	case *qtypes.Int64:
		v.Values = c.GetValues()
	case *qtypes.Uint64:
		v.Values = c.GetValues()
	case *qtypes.Float64:
		v.Values = c.GetValues()
	case *qtypes.Timestamp:
		times := make([]time.Time, 0, len(c.GetValues()))
		for _, ts := range c.GetValues() {
			times = append(times, ts.AsTime())
		}
		v.Values = times
	}
	return v
}
