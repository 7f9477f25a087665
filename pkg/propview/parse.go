package propview

import (
	"math"

	"github.com/tilemeta/structmeta/pkg/jsonval"
)

// parseScalarBits parses a single JSON number into the bit pattern
// of the target component type. The conversion must be exact: a
// fractional number never fits an integer kind, out-of-range
// magnitudes are rejected, and float32 targets must round-trip
// without precision loss.
func parseScalarBits(v jsonval.Value, c ComponentType) (uint64, bool) {
	if !v.IsNumber() {
		return 0, false
	}

	switch c {
	case ComponentInt8, ComponentInt16, ComponentInt32, ComponentInt64:
		i, ok := v.Int64()
		if !ok || !fitsSigned(i, c.Bits()) {
			return 0, false
		}
		return uint64(i) & widthMask(c.Bits()), true

	case ComponentUint8, ComponentUint16, ComponentUint32, ComponentUint64:
		u, ok := v.Uint64()
		if !ok || !fitsUnsigned(u, c.Bits()) {
			return 0, false
		}
		return u, true

	case ComponentFloat32:
		f, ok := v.Float64()
		if !ok {
			return 0, false
		}
		f32 := float32(f)
		if float64(f32) != f {
			return 0, false
		}
		return uint64(math.Float32bits(f32)), true

	case ComponentFloat64:
		f, ok := v.Float64()
		if !ok {
			return 0, false
		}
		return math.Float64bits(f), true

	default:
		return 0, false
	}
}

func fitsSigned(v int64, width int) bool {
	if width == 64 {
		return true
	}
	limit := int64(1) << (width - 1)
	return v >= -limit && v < limit
}

func fitsUnsigned(v uint64, width int) bool {
	if width == 64 {
		return true
	}
	return v < uint64(1)<<width
}

func widthMask(width int) uint64 {
	if width == 64 {
		return ^uint64(0)
	}
	return uint64(1)<<width - 1
}

// appendElement parses one element (a scalar number, or an array of
// exactly ComponentCount numbers for vectors and matrices) and
// appends its packed components to dst.
func appendElement(dst []byte, v jsonval.Value, typ PropertyType, c ComponentType) ([]byte, bool) {
	want := typ.ComponentCount()
	if typ == TypeScalar {
		bits, ok := parseScalarBits(v, c)
		if !ok {
			return nil, false
		}
		return appendComponentBits(dst, bits, c), true
	}

	elems, ok := v.Array()
	if !ok || len(elems) != want {
		return nil, false
	}
	for _, e := range elems {
		bits, ok := parseScalarBits(e, c)
		if !ok {
			return nil, false
		}
		dst = appendComponentBits(dst, bits, c)
	}
	return dst, true
}

// parseNumeric parses a single scalar/vector/matrix value.
func parseNumeric(v jsonval.Value, typ PropertyType, c ComponentType) (Numeric, bool) {
	data, ok := appendElement(nil, v, typ, c)
	if !ok {
		return Numeric{}, false
	}
	return newNumeric(data, c, typ.ComponentCount(), 1), true
}

// parseNumericArray parses an array of scalar/vector/matrix
// elements into one packed buffer. Any malformed element invalidates
// the whole value.
func parseNumericArray(v jsonval.Value, typ PropertyType, c ComponentType) (Numeric, bool) {
	elems, ok := v.Array()
	if !ok {
		return Numeric{}, false
	}

	stride := typ.ComponentCount()
	data := make([]byte, 0, len(elems)*stride*c.Size())
	for _, e := range elems {
		data, ok = appendElement(data, e, typ, c)
		if !ok {
			return Numeric{}, false
		}
	}
	return newNumeric(data, c, stride, len(elems)), true
}

// parseBooleanArray packs a JSON array of booleans into a bitstream,
// least-significant-bit first within each byte. A single non-boolean
// element invalidates the entire array; no partial bitstream is
// returned.
func parseBooleanArray(v jsonval.Value) (BitArray, bool) {
	elems, ok := v.Array()
	if !ok {
		return BitArray{}, false
	}

	data := make([]byte, (len(elems)+7)/8)
	for i, e := range elems {
		b, ok := e.Bool()
		if !ok {
			return BitArray{}, false
		}
		if b {
			data[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return BitArray{data: data, size: int64(len(elems))}, true
}

// parseStringArray concatenates a JSON array of strings into a byte
// blob plus a cumulative offset table. The offset entry width is the
// narrowest unsigned kind that can represent the total blob length,
// matching the representation of bulk string-array value storage.
func parseStringArray(v jsonval.Value) (StringArray, bool) {
	elems, ok := v.Array()
	if !ok {
		return StringArray{}, false
	}

	var blob []byte
	cumulative := make([]uint64, 1, len(elems)+1)
	for _, e := range elems {
		s, ok := e.Str()
		if !ok {
			return StringArray{}, false
		}
		blob = append(blob, s...)
		cumulative = append(cumulative, uint64(len(blob)))
	}

	offsetType := offsetTypeFor(uint64(len(blob)))
	offsets := make([]byte, 0, len(cumulative)*offsetType.Size())
	for _, off := range cumulative {
		offsets = appendComponentBits(offsets, off, offsetType)
	}

	return StringArray{
		blob:       blob,
		offsets:    offsets,
		offsetType: offsetType,
		size:       int64(len(elems)),
	}, true
}

// offsetTypeFor picks the narrowest unsigned kind representing
// totalLength.
func offsetTypeFor(totalLength uint64) ComponentType {
	switch {
	case totalLength <= math.MaxUint8:
		return ComponentUint8
	case totalLength <= math.MaxUint16:
		return ComponentUint16
	case totalLength <= math.MaxUint32:
		return ComponentUint32
	default:
		return ComponentUint64
	}
}
