package qtypes

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// Value returns first value or nil if none.
func (x *Timestamp) Value() *timestamppb.Timestamp {
	if len(x.GetValues()) == 0 {
		return nil
	}
	return x.Values[0]
}

// NullTimestamp allocates valid Timestamp object that matches NULL instants.
func NullTimestamp() *Timestamp {
	return &Timestamp{
		Valid: true,
		Type:  QueryType_NULL,
	}
}

// NotNullTimestamp allocates valid Timestamp object that matches any non NULL instant.
func NotNullTimestamp() *Timestamp {
	return &Timestamp{
		Valid:    true,
		Negation: true,
		Type:     QueryType_NULL,
	}
}

// EqualTimestamp allocates valid Timestamp object of type equal with given instant.
func EqualTimestamp(t time.Time) *Timestamp {
	return newTimestamp(QueryType_EQUAL, false, t)
}

// NotEqualTimestamp allocates valid negated Timestamp object of type equal with given instant.
func NotEqualTimestamp(t time.Time) *Timestamp {
	return newTimestamp(QueryType_EQUAL, true, t)
}

// InTimestamp allocates valid Timestamp object of type in with given instants.
func InTimestamp(v ...time.Time) *Timestamp {
	return newTimestamp(QueryType_IN, false, v...)
}

// BetweenTimestamp allocates valid Timestamp object of type between with given bounds.
func BetweenTimestamp(from, to time.Time) *Timestamp {
	return newTimestamp(QueryType_BETWEEN, false, from, to)
}

// BetweenTimestampProto is BetweenTimestamp for bounds that are already protobuf timestamps.
// Nil bounds are kept as they are and rejected by Validate.
func BetweenTimestampProto(from, to *timestamppb.Timestamp) *Timestamp {
	return &Timestamp{
		Values: []*timestamppb.Timestamp{from, to},
		Valid:  true,
		Type:   QueryType_BETWEEN,
	}
}

// GreaterTimestamp allocates valid Timestamp object matching instants after t.
func GreaterTimestamp(t time.Time) *Timestamp {
	return newTimestamp(QueryType_GREATER, false, t)
}

// GreaterEqualTimestamp allocates valid Timestamp object matching instants at or after t.
func GreaterEqualTimestamp(t time.Time) *Timestamp {
	return newTimestamp(QueryType_GREATER_EQUAL, false, t)
}

// LessTimestamp allocates valid Timestamp object matching instants before t.
func LessTimestamp(t time.Time) *Timestamp {
	return newTimestamp(QueryType_LESS, false, t)
}

// LessEqualTimestamp allocates valid Timestamp object matching instants at or before t.
func LessEqualTimestamp(t time.Time) *Timestamp {
	return newTimestamp(QueryType_LESS_EQUAL, false, t)
}

func newTimestamp(t QueryType, negation bool, v ...time.Time) *Timestamp {
	values := make([]*timestamppb.Timestamp, 0, len(v))
	for _, tt := range v {
		values = append(values, timestamppb.New(tt))
	}
	return &Timestamp{
		Values:   values,
		Valid:    true,
		Negation: negation,
		Type:     t,
	}
}
