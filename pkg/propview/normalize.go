package propview

import "math"

// Normalize maps a raw integer component to its fixed-point
// fraction. rawBits holds the component's bit pattern; for signed
// kinds it is sign-extended two's complement.
//
// Unsigned kinds of width W map v to v / (2^W - 1), range [0, 1].
// Signed kinds map v to v / (2^(W-1) - 1) clamped below at -1, so
// the most negative value normalizes to exactly -1 instead of a
// fraction with magnitude above 1.
//
// Calling Normalize with a non-integer component type returns the
// bit pattern reinterpreted as its value unchanged (floats) or 0.
func Normalize(c ComponentType, rawBits uint64) float64 {
	switch c {
	case ComponentUint8, ComponentUint16, ComponentUint32, ComponentUint64:
		return normalizeUint(rawBits, c.Bits())
	case ComponentInt8, ComponentInt16, ComponentInt32, ComponentInt64:
		return normalizeInt(signExtend(rawBits, c.Bits()), c.Bits())
	case ComponentFloat32:
		return float64(math.Float32frombits(uint32(rawBits)))
	case ComponentFloat64:
		return math.Float64frombits(rawBits)
	default:
		return 0
	}
}

func normalizeUint(v uint64, width int) float64 {
	var max float64
	if width == 64 {
		max = float64(math.MaxUint64)
	} else {
		max = float64(uint64(1)<<width - 1)
	}
	return float64(v) / max
}

func normalizeInt(v int64, width int) float64 {
	var max float64
	if width == 64 {
		max = float64(math.MaxInt64)
	} else {
		max = float64(int64(1)<<(width-1) - 1)
	}
	f := float64(v) / max
	if f < -1 {
		return -1
	}
	return f
}

// signExtend interprets the low `width` bits of raw as a two's
// complement signed integer.
func signExtend(raw uint64, width int) int64 {
	if width == 64 {
		return int64(raw)
	}
	shift := 64 - width
	return int64(raw<<shift) >> shift
}
