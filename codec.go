package qtypes

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

var (
	marshalOptions   = proto.MarshalOptions{Deterministic: true}
	unmarshalOptions = proto.UnmarshalOptions{}
)

// Marshal returns the canonical wire encoding of f.
// Zero valued fields are omitted, so an inactive default container encodes to no bytes.
func Marshal(f Filter) ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	b, err := marshalOptions.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("qtypes: marshal %s: %w", f.ProtoReflect().Descriptor().Name(), err)
	}
	return b, nil
}

// Unmarshal parses the wire encoding in b into f, replacing its content.
//
// Unknown fields and unknown operator tags are kept. Truncated input, or a
// known field encoded with an unexpected wire type, fails with DECODE_ERROR.
func Unmarshal(b []byte, f Filter) error {
	if f == nil {
		return NewDecodeError("nil destination", nil)
	}
	name := f.ProtoReflect().Descriptor().Name()
	if err := unmarshalOptions.Unmarshal(b, f); err != nil {
		return NewDecodeError(fmt.Sprintf("cannot decode %s", name), err)
	}
	if err := checkWireTypes(f.ProtoReflect()); err != nil {
		return err
	}
	if ts, ok := f.(*Timestamp); ok {
		for i, v := range ts.GetValues() {
			if err := checkWireTypes(v.ProtoReflect()); err != nil {
				err.Message = fmt.Sprintf("value %d: %s", i, err.Message)
				return err
			}
		}
	}
	return nil
}

// checkWireTypes walks the unknown field set of m. The runtime parks a known
// field number there when its wire type does not match the schema.
func checkWireTypes(m protoreflect.Message) *Error {
	fields := m.Descriptor().Fields()
	b := m.GetUnknown()
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return NewDecodeError("malformed unknown field", protowire.ParseError(n))
		}
		if fd := fields.ByNumber(num); fd != nil {
			return NewDecodeError(fmt.Sprintf("field %s (%d) has wire type %d", fd.Name(), num, typ), nil)
		}
		l := protowire.ConsumeFieldValue(num, typ, b[n:])
		if l < 0 {
			return NewDecodeError("malformed unknown field", protowire.ParseError(l))
		}
		b = b[n+l:]
	}
	return nil
}
