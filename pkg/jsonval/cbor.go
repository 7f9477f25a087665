package jsonval

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for value trees.
// Configured for deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for value trees.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical, // Deterministic key ordering
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient decoding for forward compatibility with documents
	// written by other producers.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet, // Ignore duplicate keys (last wins)
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		DefaultMapType:    nil,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// DecodeCBOR parses a CBOR document into a value tree. Integer
// precision is preserved exactly as on the JSON path.
func DecodeCBOR(data []byte) (Value, error) {
	var raw any
	if err := decMode.Unmarshal(data, &raw); err != nil {
		return Value{}, fmt.Errorf("decode cbor: %w", err)
	}
	return fromAny(raw)
}

// EncodeCBOR serializes a value tree to deterministic CBOR bytes.
func EncodeCBOR(v Value) ([]byte, error) {
	raw, err := toAny(v)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(raw)
}

func toAny(v Value) (any, error) {
	switch v.kind {
	case Undefined, NullKind:
		return nil, nil
	case BoolKind:
		return v.b, nil
	case NumberKind:
		switch v.nk {
		case numInt:
			return v.i, nil
		case numUint:
			return v.u, nil
		default:
			return v.f, nil
		}
	case StringKind:
		return v.s, nil
	case ArrayKind:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			raw, err := toAny(e)
			if err != nil {
				return nil, err
			}
			out[i] = raw
		}
		return out, nil
	case ObjectKind:
		out := make(map[string]any, len(v.obj))
		for k, e := range v.obj {
			raw, err := toAny(e)
			if err != nil {
				return nil, err
			}
			out[k] = raw
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot encode kind %v", v.kind)
	}
}
