package propview

import "math"

// Transform applies the view's value transforms to raw stored
// components and returns the final semantic values.
//
// Normalized shapes first map integer components onto [0,1] or
// [-1,1] and then apply scale and offset, producing Float64
// components. Non-normalized floating-point shapes apply scale and
// offset in their own component kind. Everything else passes
// through unchanged, as does any raw value whose element shape does
// not match the view's.
func (v *PropertyView) Transform(raw Numeric) Numeric {
	if !v.status.IsValid() || !v.shape.Type().IsNumeric() {
		return raw
	}
	if raw.Stride() != v.shape.Type().ComponentCount() {
		return raw
	}
	if v.shape.IsNormalized() {
		if raw.ComponentType() != v.shape.Component() {
			return raw
		}
		return v.transformNormalized(raw)
	}
	if v.offset == nil && v.scale == nil {
		return raw
	}
	if raw.ComponentType() != v.shape.Component() || !raw.ComponentType().IsFloat() {
		return raw
	}
	return v.transformFloat(raw)
}

func (v *PropertyView) transformNormalized(raw Numeric) Numeric {
	stride := raw.Stride()
	out := make([]byte, 0, raw.Count()*stride*ComponentFloat64.Size())
	for e := 0; e < raw.Count(); e++ {
		for c := 0; c < stride; c++ {
			val := Normalize(raw.ComponentType(), raw.Bits(e, c))
			val = val*v.scaleTerm(e, c) + v.offsetTerm(e, c)
			out = appendComponentBits(out, math.Float64bits(val), ComponentFloat64)
		}
	}
	return newNumeric(out, ComponentFloat64, stride, raw.Count())
}

func (v *PropertyView) transformFloat(raw Numeric) Numeric {
	stride := raw.Stride()
	kind := raw.ComponentType()
	out := make([]byte, 0, raw.Count()*stride*kind.Size())
	for e := 0; e < raw.Count(); e++ {
		for c := 0; c < stride; c++ {
			val := raw.Float64At(e, c)
			val = val*v.scaleTerm(e, c) + v.offsetTerm(e, c)
			var bits uint64
			if kind == ComponentFloat32 {
				bits = uint64(math.Float32bits(float32(val)))
			} else {
				bits = math.Float64bits(val)
			}
			out = appendComponentBits(out, bits, kind)
		}
	}
	return newNumeric(out, kind, stride, raw.Count())
}

// scaleTerm returns the scale for one component of one element, 1
// when no scale is declared or the element index runs past the
// declared terms.
func (v *PropertyView) scaleTerm(elem, comp int) float64 {
	return v.transformTerm(v.scale, elem, comp, 1)
}

// offsetTerm returns the offset for one component of one element, 0
// when no offset is declared or the element index runs past the
// declared terms.
func (v *PropertyView) offsetTerm(elem, comp int) float64 {
	return v.transformTerm(v.offset, elem, comp, 0)
}

// Single-value shapes hold exactly one declared term and broadcast
// it across every element of the input. Array shapes declare one
// term per array element and leave elements past the declared terms
// untouched.
func (v *PropertyView) transformTerm(n *Numeric, elem, comp int, identity float64) float64 {
	if n == nil {
		return identity
	}
	if !v.shape.IsArray() {
		elem = 0
	} else if elem >= n.Count() {
		return identity
	}
	return n.Float64At(elem, comp)
}
