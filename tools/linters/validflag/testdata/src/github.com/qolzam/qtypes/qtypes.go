package qtypes

type QueryType int32

const QueryType_EQUAL QueryType = 1

type String struct {
	Values      []string
	Valid       bool
	Negation    bool
	Type        QueryType
	Insensitive bool
}

type Int64 struct {
	Values   []int64
	Valid    bool
	Negation bool
	Type     QueryType
}
