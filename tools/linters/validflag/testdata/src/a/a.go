package a

import "github.com/qolzam/qtypes"

type Other struct {
	Values []int64
	Type   int
}

func filters() []interface{} {
	return []interface{}{
		&qtypes.Int64{Values: []int64{1}, Type: qtypes.QueryType_EQUAL}, // want `qtypes.Int64 literal sets Values, Type but not Valid`
		&qtypes.String{Negation: true},                                  // want `qtypes.String literal sets Negation but not Valid`
		&qtypes.Int64{Values: []int64{1}, Valid: true},
		&qtypes.Int64{},
		&qtypes.String{Valid: false, Values: []string{"explicit"}},
		&Other{Values: []int64{1}, Type: 1},
		[]*qtypes.Int64{{Values: []int64{2}}}, // want `qtypes.Int64 literal sets Values but not Valid`
	}
}
