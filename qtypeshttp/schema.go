package qtypeshttp

import (
	"reflect"

	"github.com/gorilla/schema"

	"github.com/qolzam/qtypes"
)

// RegisterConverters teaches d to decode query parameters into qtypes
// containers. Destination fields should be pointers, e.g. *qtypes.Int64.
// A value that cannot be parsed is reported by d as a conversion error.
func RegisterConverters(d *schema.Decoder) {
	d.RegisterConverter(qtypes.String{}, func(s string) reflect.Value {
		return reflect.ValueOf(ParseString(s)).Elem()
	})
	d.RegisterConverter(qtypes.Int64{}, converter(ParseInt64))
	d.RegisterConverter(qtypes.Uint64{}, converter(ParseUint64))
	d.RegisterConverter(qtypes.Float64{}, converter(ParseFloat64))
	d.RegisterConverter(qtypes.Timestamp{}, converter(ParseTimestamp))
}

// NewDecoder returns a decoder with the qtypes converters registered.
// Unknown keys are ignored.
func NewDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	RegisterConverters(d)
	return d
}

func converter[T any](parse func(string) (*T, error)) schema.Converter {
	return func(s string) reflect.Value {
		v, err := parse(s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(v).Elem()
	}
}
