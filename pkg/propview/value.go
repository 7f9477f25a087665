package propview

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Numeric holds parsed scalar, vector, or matrix values as densely
// packed little-endian component bytes. A single value has one
// element; an array value has one element per array entry. The
// stride is the number of components per element (1 for scalars, N
// for VECN, N*N for MATN).
//
// Numeric owns its buffer exclusively; nothing else mutates it.
type Numeric struct {
	data      []byte
	component ComponentType
	stride    int
	count     int
}

// newNumeric wraps packed component bytes. The byte slice length
// must equal count*stride*component.Size().
func newNumeric(data []byte, component ComponentType, stride, count int) Numeric {
	return Numeric{data: data, component: component, stride: stride, count: count}
}

// Count returns the number of elements.
func (n Numeric) Count() int { return n.count }

// Stride returns the number of components per element.
func (n Numeric) Stride() int { return n.stride }

// ComponentType returns the numeric kind of the components.
func (n Numeric) ComponentType() ComponentType { return n.component }

// Bits returns the raw bit pattern of component comp of element
// elem, zero-extended to 64 bits. Signed kinds are not
// sign-extended; use Int64At for the value.
func (n Numeric) Bits(elem, comp int) uint64 {
	idx := (elem*n.stride + comp) * n.component.Size()
	return readComponentBits(n.data[idx:], n.component)
}

// Float64At returns component comp of element elem as a float64.
// Integer kinds convert by value.
func (n Numeric) Float64At(elem, comp int) float64 {
	bits := n.Bits(elem, comp)
	switch {
	case n.component.IsFloat():
		if n.component == ComponentFloat32 {
			return float64(math.Float32frombits(uint32(bits)))
		}
		return math.Float64frombits(bits)
	case n.component.IsUnsigned():
		return float64(bits)
	default:
		return float64(signExtend(bits, n.component.Bits()))
	}
}

// Int64At returns component comp of element elem as a signed
// integer. Only meaningful for signed integer kinds.
func (n Numeric) Int64At(elem, comp int) int64 {
	return signExtend(n.Bits(elem, comp), n.component.Bits())
}

// Uint64At returns component comp of element elem as an unsigned
// integer. Only meaningful for unsigned integer kinds.
func (n Numeric) Uint64At(elem, comp int) uint64 {
	return n.Bits(elem, comp)
}

// Float64s flattens every component to float64, element-major.
func (n Numeric) Float64s() []float64 {
	out := make([]float64, 0, n.count*n.stride)
	for e := 0; e < n.count; e++ {
		for c := 0; c < n.stride; c++ {
			out = append(out, n.Float64At(e, c))
		}
	}
	return out
}

// Equal reports whether two Numerics have identical layout and
// bytes.
func (n Numeric) Equal(o Numeric) bool {
	return n.component == o.component &&
		n.stride == o.stride &&
		n.count == o.count &&
		bytes.Equal(n.data, o.data)
}

// String renders the value for diagnostics.
func (n Numeric) String() string {
	var sb strings.Builder
	if n.count != 1 {
		sb.WriteByte('[')
	}
	for e := 0; e < n.count; e++ {
		if e > 0 {
			sb.WriteString(", ")
		}
		if n.stride > 1 {
			sb.WriteByte('(')
		}
		for c := 0; c < n.stride; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", n.Float64At(e, c))
		}
		if n.stride > 1 {
			sb.WriteByte(')')
		}
	}
	if n.count != 1 {
		sb.WriteByte(']')
	}
	return sb.String()
}

// BitArray is a packed boolean array: one bit per element, filled
// least-significant-bit first within each byte.
type BitArray struct {
	data []byte
	size int64
}

// Size returns the number of booleans.
func (b BitArray) Size() int64 { return b.size }

// At returns element i.
func (b BitArray) At(i int64) bool {
	return b.data[i/8]&(1<<(uint(i)%8)) != 0
}

// Bools unpacks the bitstream.
func (b BitArray) Bools() []bool {
	out := make([]bool, b.size)
	for i := int64(0); i < b.size; i++ {
		out[i] = b.At(i)
	}
	return out
}

// StringArray is a packed string array: every string's bytes
// concatenated into one blob, plus a cumulative offset table of
// size+1 entries whose width is the narrowest unsigned integer kind
// that can represent the blob length.
type StringArray struct {
	blob       []byte
	offsets    []byte
	offsetType ComponentType
	size       int64
}

// Size returns the number of strings.
func (s StringArray) Size() int64 { return s.size }

// OffsetType returns the unsigned integer kind of the offset table
// entries.
func (s StringArray) OffsetType() ComponentType { return s.offsetType }

// At returns string i.
func (s StringArray) At(i int64) string {
	start := s.offsetAt(i)
	end := s.offsetAt(i + 1)
	return string(s.blob[start:end])
}

// Strings unpacks the array.
func (s StringArray) Strings() []string {
	out := make([]string, s.size)
	for i := int64(0); i < s.size; i++ {
		out[i] = s.At(i)
	}
	return out
}

func (s StringArray) offsetAt(i int64) uint64 {
	w := s.offsetType.Size()
	return readComponentBits(s.offsets[int(i)*w:], s.offsetType)
}

// ValueKind identifies the representation inside a Value.
type ValueKind uint8

const (
	// ValueNone is the zero Value: no value present.
	ValueNone ValueKind = iota
	// ValueNumeric holds a Numeric (scalar/vector/matrix, possibly
	// an array of them).
	ValueNumeric
	// ValueBoolean holds a single boolean.
	ValueBoolean
	// ValueString holds a single string.
	ValueString
	// ValueBooleanArray holds a BitArray.
	ValueBooleanArray
	// ValueStringArray holds a StringArray.
	ValueStringArray
)

// Value is a resolved sentinel or default value. Its representation
// follows the view's shape: numeric shapes store a Numeric, boolean
// and string shapes store single values, and their array shapes
// store the packed forms.
type Value struct {
	kind ValueKind
	num  Numeric
	b    bool
	s    string
	bits BitArray
	strs StringArray
}

func numericValue(n Numeric) Value    { return Value{kind: ValueNumeric, num: n} }
func boolValue(b bool) Value          { return Value{kind: ValueBoolean, b: b} }
func stringValue(s string) Value      { return Value{kind: ValueString, s: s} }
func bitArrayValue(b BitArray) Value  { return Value{kind: ValueBooleanArray, bits: b} }
func stringArrayValue(s StringArray) Value {
	return Value{kind: ValueStringArray, strs: s}
}

// Kind returns the representation stored in the value.
func (v Value) Kind() ValueKind { return v.kind }

// Numeric returns the numeric payload.
func (v Value) Numeric() (Numeric, bool) {
	if v.kind != ValueNumeric {
		return Numeric{}, false
	}
	return v.num, true
}

// Bool returns the boolean payload.
func (v Value) Bool() (bool, bool) {
	if v.kind != ValueBoolean {
		return false, false
	}
	return v.b, true
}

// Str returns the string payload.
func (v Value) Str() (string, bool) {
	if v.kind != ValueString {
		return "", false
	}
	return v.s, true
}

// BoolArray returns the packed boolean array payload.
func (v Value) BoolArray() (BitArray, bool) {
	if v.kind != ValueBooleanArray {
		return BitArray{}, false
	}
	return v.bits, true
}

// StringArray returns the packed string array payload.
func (v Value) StringArray() (StringArray, bool) {
	if v.kind != ValueStringArray {
		return StringArray{}, false
	}
	return v.strs, true
}

// String renders the value for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case ValueNumeric:
		return v.num.String()
	case ValueBoolean:
		return fmt.Sprintf("%t", v.b)
	case ValueString:
		return fmt.Sprintf("%q", v.s)
	case ValueBooleanArray:
		return fmt.Sprintf("%v", v.bits.Bools())
	case ValueStringArray:
		return fmt.Sprintf("%q", v.strs.Strings())
	default:
		return "<none>"
	}
}

// readComponentBits reads one little-endian component from the start
// of data. Signed kinds are not sign-extended here; callers that
// need the value use signExtend.
func readComponentBits(data []byte, c ComponentType) uint64 {
	switch c.Size() {
	case 1:
		return uint64(data[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(data))
	case 4:
		return uint64(binary.LittleEndian.Uint32(data))
	case 8:
		return binary.LittleEndian.Uint64(data)
	default:
		return 0
	}
}

// appendComponentBits appends one little-endian component to dst.
func appendComponentBits(dst []byte, bits uint64, c ComponentType) []byte {
	switch c.Size() {
	case 1:
		return append(dst, byte(bits))
	case 2:
		return binary.LittleEndian.AppendUint16(dst, uint16(bits))
	case 4:
		return binary.LittleEndian.AppendUint32(dst, uint32(bits))
	case 8:
		return binary.LittleEndian.AppendUint64(dst, bits)
	default:
		return dst
	}
}
