package jsonval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DecodeJSON parses a JSON document into a value tree. Integer
// numbers keep their full 64-bit precision instead of collapsing to
// float64.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("decode json: %w", err)
	}
	// Reject trailing content after the first document.
	if dec.More() {
		return Value{}, fmt.Errorf("decode json: trailing data after document")
	}
	return fromAny(raw)
}

// UnmarshalJSON implements json.Unmarshaler so schema structs can
// declare Value fields directly.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. An Undefined value encodes
// as null; fields that should disappear entirely must use omitempty
// semantics at the struct level.
func (v Value) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	if err := writeJSON(&sb, v); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func writeJSON(sb *strings.Builder, v Value) error {
	switch v.kind {
	case Undefined, NullKind:
		sb.WriteString("null")
	case BoolKind:
		sb.WriteString(strconv.FormatBool(v.b))
	case NumberKind:
		switch v.nk {
		case numInt:
			sb.WriteString(strconv.FormatInt(v.i, 10))
		case numUint:
			sb.WriteString(strconv.FormatUint(v.u, 10))
		default:
			if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
				return fmt.Errorf("cannot encode non-finite number %v", v.f)
			}
			sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
		}
	case StringKind:
		enc, err := json.Marshal(v.s)
		if err != nil {
			return err
		}
		sb.Write(enc)
	case ArrayKind:
		sb.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeJSON(sb, e); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case ObjectKind:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			enc, err := json.Marshal(k)
			if err != nil {
				return err
			}
			sb.Write(enc)
			sb.WriteByte(':')
			if err := writeJSON(sb, v.obj[k]); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode kind %v", v.kind)
	}
	return nil
}

// FromInterface converts plain Go values (as produced by
// encoding/json, gopkg.in/yaml.v3, or fxamacker/cbor generic
// decoding) into a value tree.
func FromInterface(raw any) (Value, error) {
	return fromAny(raw)
}

// Interface converts the value tree back to plain Go values: nil,
// bool, int64/uint64/float64, string, []any, map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case Undefined, NullKind:
		return nil
	case BoolKind:
		return v.b
	case NumberKind:
		switch v.nk {
		case numInt:
			return v.i
		case numUint:
			return v.u
		default:
			return v.f
		}
	case StringKind:
		return v.s
	case ArrayKind:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case ObjectKind:
		out := make(map[string]any, len(v.obj))
		for k, e := range v.obj {
			out[k] = e.Interface()
		}
		return out
	default:
		return nil
	}
}

// fromAny converts the result of a generic decode (encoding/json
// with UseNumber, or fxamacker/cbor defaults) into a value tree.
func fromAny(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case json.Number:
		return numberFromString(string(t))
	case float64:
		return NewFloat(t), nil
	case float32:
		return NewFloat(float64(t)), nil
	case int:
		return NewInt(int64(t)), nil
	case int8:
		return NewInt(int64(t)), nil
	case int16:
		return NewInt(int64(t)), nil
	case int32:
		return NewInt(int64(t)), nil
	case int64:
		return NewInt(t), nil
	case uint:
		return NewUint(uint64(t)), nil
	case uint8:
		return NewUint(uint64(t)), nil
	case uint16:
		return NewUint(uint64(t)), nil
	case uint32:
		return NewUint(uint64(t)), nil
	case uint64:
		return NewUint(t), nil
	case []any:
		elems := make([]Value, len(t))
		for i, e := range t {
			v, err := fromAny(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return NewArray(elems...), nil
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, e := range t {
			v, err := fromAny(e)
			if err != nil {
				return Value{}, err
			}
			fields[k] = v
		}
		return NewObject(fields), nil
	case map[any]any:
		// CBOR maps may carry non-string keys; schema documents only
		// use text keys, so anything else is malformed input.
		fields := make(map[string]Value, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("non-string map key %v", k)
			}
			v, err := fromAny(e)
			if err != nil {
				return Value{}, err
			}
			fields[ks] = v
		}
		return NewObject(fields), nil
	default:
		return Value{}, fmt.Errorf("unsupported value of type %T", raw)
	}
}

// numberFromString picks the narrowest lossless storage for a JSON
// number literal: int64, then uint64, then float64.
func numberFromString(s string) (Value, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewInt(i), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return NewUint(u), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return NewFloat(f), nil
}
