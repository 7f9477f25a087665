package jsonval

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant stored in a Value.
type Kind uint8

const (
	// Undefined is the zero Value; it marks an absent field.
	Undefined Kind = iota
	// NullKind is an explicit JSON null.
	NullKind
	// BoolKind is a JSON boolean.
	BoolKind
	// NumberKind is a JSON number (integer or floating point).
	NumberKind
	// StringKind is a JSON string.
	StringKind
	// ArrayKind is a JSON array.
	ArrayKind
	// ObjectKind is a JSON object.
	ObjectKind
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return "unknown"
	}
}

// numKind tracks how a number was stored.
type numKind uint8

const (
	numInt numKind = iota
	numUint
	numFloat
)

// Value is an immutable node of a parsed JSON-like document.
// The zero Value is Undefined and represents an absent field.
type Value struct {
	kind Kind
	nk   numKind

	b   bool
	i   int64
	u   uint64
	f   float64
	s   string
	arr []Value
	obj map[string]Value
}

// Null returns an explicit null value.
func Null() Value { return Value{kind: NullKind} }

// NewBool returns a boolean value.
func NewBool(b bool) Value { return Value{kind: BoolKind, b: b} }

// NewInt returns a number value holding a signed integer.
func NewInt(i int64) Value { return Value{kind: NumberKind, nk: numInt, i: i} }

// NewUint returns a number value holding an unsigned integer.
func NewUint(u uint64) Value { return Value{kind: NumberKind, nk: numUint, u: u} }

// NewFloat returns a number value holding a floating-point number.
func NewFloat(f float64) Value { return Value{kind: NumberKind, nk: numFloat, f: f} }

// NewString returns a string value.
func NewString(s string) Value { return Value{kind: StringKind, s: s} }

// NewArray returns an array value. The slice is not copied; callers
// must not mutate it afterwards.
func NewArray(elems ...Value) Value { return Value{kind: ArrayKind, arr: elems} }

// NewObject returns an object value. The map is not copied; callers
// must not mutate it afterwards.
func NewObject(fields map[string]Value) Value { return Value{kind: ObjectKind, obj: fields} }

// Kind returns the variant stored in v.
func (v Value) Kind() Kind { return v.kind }

// IsDefined reports whether v holds anything at all, including null.
func (v Value) IsDefined() bool { return v.kind != Undefined }

// IsNull reports whether v is an explicit null.
func (v Value) IsNull() bool { return v.kind == NullKind }

// IsNumber reports whether v is a number of any precision.
func (v Value) IsNumber() bool { return v.kind == NumberKind }

// Bool returns the boolean payload.
func (v Value) Bool() (bool, bool) {
	if v.kind != BoolKind {
		return false, false
	}
	return v.b, true
}

// Str returns the string payload.
func (v Value) Str() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.s, true
}

// Array returns the element slice. Callers must not mutate it.
func (v Value) Array() ([]Value, bool) {
	if v.kind != ArrayKind {
		return nil, false
	}
	return v.arr, true
}

// Object returns the field map. Callers must not mutate it.
func (v Value) Object() (map[string]Value, bool) {
	if v.kind != ObjectKind {
		return nil, false
	}
	return v.obj, true
}

// Field returns the named object field, or an Undefined value.
func (v Value) Field(name string) Value {
	if v.kind != ObjectKind {
		return Value{}
	}
	return v.obj[name]
}

// Len returns the number of elements of an array value, 0 otherwise.
func (v Value) Len() int {
	if v.kind != ArrayKind {
		return 0
	}
	return len(v.arr)
}

// Int64 returns the number as int64 if the conversion is exact.
func (v Value) Int64() (int64, bool) {
	if v.kind != NumberKind {
		return 0, false
	}
	switch v.nk {
	case numInt:
		return v.i, true
	case numUint:
		if v.u > math.MaxInt64 {
			return 0, false
		}
		return int64(v.u), true
	default:
		if v.f != math.Trunc(v.f) || v.f < math.MinInt64 || v.f >= math.MaxInt64 {
			return 0, false
		}
		return int64(v.f), true
	}
}

// Uint64 returns the number as uint64 if the conversion is exact.
func (v Value) Uint64() (uint64, bool) {
	if v.kind != NumberKind {
		return 0, false
	}
	switch v.nk {
	case numInt:
		if v.i < 0 {
			return 0, false
		}
		return uint64(v.i), true
	case numUint:
		return v.u, true
	default:
		if v.f != math.Trunc(v.f) || v.f < 0 || v.f >= math.MaxUint64 {
			return 0, false
		}
		return uint64(v.f), true
	}
}

// Float64 returns the number as float64 if the conversion is exact.
// Integers beyond 2^53 that cannot be represented exactly are
// rejected rather than rounded.
func (v Value) Float64() (float64, bool) {
	if v.kind != NumberKind {
		return 0, false
	}
	switch v.nk {
	case numInt:
		f := float64(v.i)
		if f >= math.MaxInt64 || int64(f) != v.i {
			return 0, false
		}
		return f, true
	case numUint:
		f := float64(v.u)
		if f >= math.MaxUint64 || uint64(f) != v.u {
			return 0, false
		}
		return f, true
	default:
		return v.f, true
	}
}

// Equal reports deep equality of two values. Numbers compare by
// mathematical value, not storage subkind.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Undefined, NullKind:
		return true
	case BoolKind:
		return v.b == o.b
	case StringKind:
		return v.s == o.s
	case NumberKind:
		return numberEqual(v, o)
	case ArrayKind:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, ve := range v.obj {
			oe, ok := o.obj[k]
			if !ok || !ve.Equal(oe) {
				return false
			}
		}
		return true
	}
	return false
}

func numberEqual(a, b Value) bool {
	if a.nk == b.nk {
		switch a.nk {
		case numInt:
			return a.i == b.i
		case numUint:
			return a.u == b.u
		default:
			return a.f == b.f
		}
	}
	// Mixed subkinds: compare through the widest exact path.
	if ai, ok := a.Int64(); ok {
		if bi, ok2 := b.Int64(); ok2 {
			return ai == bi
		}
	}
	if au, ok := a.Uint64(); ok {
		if bu, ok2 := b.Uint64(); ok2 {
			return au == bu
		}
	}
	af, aok := a.Float64()
	bf, bok := b.Float64()
	return aok && bok && af == bf
}

// String renders the value for diagnostics. It is not a JSON
// serializer; use MarshalJSON for that.
func (v Value) String() string {
	switch v.kind {
	case Undefined:
		return "<undefined>"
	case NullKind:
		return "null"
	case BoolKind:
		return strconv.FormatBool(v.b)
	case NumberKind:
		switch v.nk {
		case numInt:
			return strconv.FormatInt(v.i, 10)
		case numUint:
			return strconv.FormatUint(v.u, 10)
		default:
			return strconv.FormatFloat(v.f, 'g', -1, 64)
		}
	case StringKind:
		return strconv.Quote(v.s)
	case ArrayKind:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(e.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case ObjectKind:
		return "<object>"
	default:
		return "<unknown>"
	}
}
