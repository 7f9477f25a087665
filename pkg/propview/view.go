package propview

import (
	"github.com/tilemeta/structmeta/pkg/jsonval"
	"github.com/tilemeta/structmeta/pkg/schema"
)

// Option adjusts construction rules.
type Option func(*options)

type options struct {
	requireScaleForRange bool
}

// RequireScaleForRange restores the upstream rule that ties max/min
// acceptance to the presence of a resolved scale, instead of to the
// max/min value parsing correctly. The coupling looks accidental in
// the upstream implementation (the parse result is discarded), so
// the corrected rule is the default; this option exists for
// byte-compatible behavior.
func RequireScaleForRange() Option {
	return func(o *options) { o.requireScaleForRange = true }
}

// PropertyView is a fully resolved, immutable accessor for one
// property definition. Construction always succeeds; Status reports
// whether the definition was structurally sound. On any non-valid
// status the optional-value accessors report absence.
type PropertyView struct {
	status   Status
	shape    Shape
	count    int64
	required bool

	offset *Numeric
	scale  *Numeric
	max    *Numeric
	min    *Numeric

	noData       Value
	defaultValue Value
}

// Empty constructs a view for a property that does not exist. Its
// status is StatusErrorNonexistentProperty.
func Empty(shape Shape) *PropertyView {
	return &PropertyView{status: StatusErrorNonexistentProperty, shape: shape}
}

// View resolves a class property definition against the given shape.
func View(shape Shape, classProperty *schema.ClassProperty, opts ...Option) *PropertyView {
	return build(shape, classProperty, nil, opts)
}

// ViewWithOverride resolves a class property definition and then
// applies a per-instance override of offset/scale/max/min. Override
// values replace the class-level values where present and run
// through the same legality checks. Overrides never carry noData or
// default values.
func ViewWithOverride(shape Shape, classProperty *schema.ClassProperty, override schema.Override, opts ...Option) *PropertyView {
	return build(shape, classProperty, override, opts)
}

func build(shape Shape, cp *schema.ClassProperty, override schema.Override, optFns []Option) *PropertyView {
	var opts options
	for _, fn := range optFns {
		fn(&opts)
	}

	v := &PropertyView{shape: shape, required: cp.Required}
	if shape.IsArray() {
		v.count = cp.Count
	}

	v.status = matchClassProperty(shape, cp)
	if !v.status.IsValid() {
		return v
	}

	// Normalization applies only to integer-backed numeric shapes,
	// and the normalized view variant requires the declaration and
	// vice versa. Boolean and string shapes have no normalization
	// concept and skip the polarity check.
	if shape.IsNormalized() && !shape.CanBeNormalized() {
		v.status = StatusErrorInvalidNormalization
		return v
	}
	if shape.Type().IsNumeric() && shape.IsNormalized() != cp.Normalized {
		v.status = StatusErrorInvalidNormalization
		return v
	}

	if st := v.resolveTransforms(cp.Offset, cp.Scale, cp.Max, cp.Min, opts, false); !st.IsValid() {
		v.status = st
		return v
	}

	if st := v.resolveNoData(cp.NoData); !st.IsValid() {
		v.status = st
		return v
	}

	if st := v.resolveDefault(cp.Default); !st.IsValid() {
		v.status = st
		return v
	}

	if override != nil {
		if st := v.resolveTransforms(
			override.OffsetValue(),
			override.ScaleValue(),
			override.MaxValue(),
			override.MinValue(),
			opts, true,
		); !st.IsValid() {
			v.status = st
			return v
		}
	}

	return v
}

// transformTarget is the component type offset/scale/max/min and
// default values parse as: the normalized fractional type for
// normalized shapes, the element's own kind otherwise.
func (v *PropertyView) transformTarget() ComponentType {
	if v.shape.IsNormalized() {
		return ComponentFloat64
	}
	return v.shape.Component()
}

// offsetScaleLegal reports whether the shape admits an affine
// transform at all: floating-point kinds always, integer kinds only
// when normalized (normalization itself justifies the transform).
func (v *PropertyView) offsetScaleLegal() bool {
	if !v.shape.Type().IsNumeric() {
		return false
	}
	return v.shape.IsNormalized() || v.shape.Component().IsFloat()
}

func (v *PropertyView) resolveTransforms(offset, scale, max, min jsonval.Value, opts options, isOverride bool) Status {
	if offset.IsDefined() {
		n, ok := v.parseNumericField(offset, v.transformTarget())
		if !v.offsetScaleLegal() || !ok {
			return StatusErrorInvalidOffset
		}
		v.offset = n
	}

	if scale.IsDefined() {
		n, ok := v.parseNumericField(scale, v.transformTarget())
		if !v.offsetScaleLegal() || !ok {
			return StatusErrorInvalidScale
		}
		v.scale = n
	}

	// Under the upstream coupling rule, max/min acceptance follows
	// the presence of a resolved scale in exactly the construction
	// paths where the upstream implementation checks it.
	coupled := opts.requireScaleForRange &&
		(!v.shape.IsArray() || (isOverride && !v.shape.IsNormalized()))

	if max.IsDefined() {
		n, ok := v.parseNumericField(max, v.transformTarget())
		if !v.shape.Type().IsNumeric() {
			return StatusErrorInvalidMax
		}
		if coupled {
			if v.scale == nil {
				return StatusErrorInvalidMax
			}
			if ok {
				v.max = n
			}
		} else {
			if !ok {
				return StatusErrorInvalidMax
			}
			v.max = n
		}
	}

	if min.IsDefined() {
		n, ok := v.parseNumericField(min, v.transformTarget())
		if !v.shape.Type().IsNumeric() {
			return StatusErrorInvalidMin
		}
		if coupled {
			if v.scale == nil {
				return StatusErrorInvalidMin
			}
			if ok {
				v.min = n
			}
		} else {
			if !ok {
				return StatusErrorInvalidMin
			}
			v.min = n
		}
	}

	return StatusValid
}

// parseNumericField parses a transform-family field for the view's
// shape, enforcing the fixed element count on array shapes.
func (v *PropertyView) parseNumericField(val jsonval.Value, target ComponentType) (*Numeric, bool) {
	if !v.shape.Type().IsNumeric() {
		return nil, false
	}
	if v.shape.IsArray() {
		n, ok := parseNumericArray(val, v.shape.Type(), target)
		if !ok || (v.count > 0 && int64(n.Count()) != v.count) {
			return nil, false
		}
		return &n, true
	}
	n, ok := parseNumeric(val, v.shape.Type(), target)
	if !ok {
		return nil, false
	}
	return &n, true
}

// resolveNoData parses the sentinel. The sentinel is matched against
// values as stored, so normalized shapes parse it as the raw integer
// type.
func (v *PropertyView) resolveNoData(val jsonval.Value) Status {
	if !val.IsDefined() {
		return StatusValid
	}
	if v.required {
		// A sentinel makes no sense on a property present everywhere.
		return StatusErrorInvalidNoDataValue
	}

	parsed, ok := v.parseShapedValue(val, v.shape.Component())
	if !ok {
		return StatusErrorInvalidNoDataValue
	}
	v.noData = parsed
	return StatusValid
}

// resolveDefault parses the default. Defaults are expressed in final
// semantic units, so normalized shapes parse it as the normalized
// fractional type.
func (v *PropertyView) resolveDefault(val jsonval.Value) Status {
	if !val.IsDefined() {
		return StatusValid
	}
	if v.required {
		return StatusErrorInvalidDefaultValue
	}

	parsed, ok := v.parseShapedValue(val, v.transformTarget())
	if !ok {
		return StatusErrorInvalidDefaultValue
	}
	v.defaultValue = parsed
	return StatusValid
}

// parseShapedValue parses a value under the view shape's grammar:
// numeric shapes as packed components of the given target kind,
// boolean and string shapes as their single or packed-array forms.
func (v *PropertyView) parseShapedValue(val jsonval.Value, target ComponentType) (Value, bool) {
	switch {
	case v.shape.Type().IsNumeric():
		n, ok := v.parseNumericField(val, target)
		if !ok {
			return Value{}, false
		}
		return numericValue(*n), true

	case v.shape.Type() == TypeBoolean && !v.shape.IsArray():
		b, ok := val.Bool()
		if !ok {
			return Value{}, false
		}
		return boolValue(b), true

	case v.shape.Type() == TypeBoolean:
		bits, ok := parseBooleanArray(val)
		if !ok || bits.Size() == 0 || (v.count > 0 && bits.Size() != v.count) {
			return Value{}, false
		}
		return bitArrayValue(bits), true

	case v.shape.Type() == TypeString && !v.shape.IsArray():
		s, ok := val.Str()
		if !ok {
			return Value{}, false
		}
		return stringValue(s), true

	case v.shape.Type() == TypeString:
		strs, ok := parseStringArray(val)
		if !ok || strs.Size() == 0 || (v.count > 0 && strs.Size() != v.count) {
			return Value{}, false
		}
		return stringArrayValue(strs), true

	default:
		return Value{}, false
	}
}

// Status reports the construction outcome.
func (v *PropertyView) Status() Status { return v.status }

// Shape returns the element shape the view was constructed for.
func (v *PropertyView) Shape() Shape { return v.shape }

// ArrayCount returns the fixed element count of array values, 0 for
// non-array shapes and variable-length arrays.
func (v *PropertyView) ArrayCount() int64 { return v.count }

// Normalized reports whether integer components are normalized.
func (v *PropertyView) Normalized() bool { return v.shape.IsNormalized() }

// Required reports whether the property must be present in every
// entity conforming to the class.
func (v *PropertyView) Required() bool { return v.required }

// Offset returns the resolved additive transform term, if declared.
// Absent on invalid views.
func (v *PropertyView) Offset() (Numeric, bool) { return v.numericField(v.offset) }

// Scale returns the resolved multiplicative transform term, if
// declared. Absent on invalid views.
func (v *PropertyView) Scale() (Numeric, bool) { return v.numericField(v.scale) }

// Max returns the maximum of all property values after transforms,
// if declared. Absent on invalid views.
func (v *PropertyView) Max() (Numeric, bool) { return v.numericField(v.max) }

// Min returns the minimum of all property values after transforms,
// if declared. Absent on invalid views.
func (v *PropertyView) Min() (Numeric, bool) { return v.numericField(v.min) }

// NoData returns the raw sentinel value, if declared. Absent on
// invalid views.
func (v *PropertyView) NoData() (Value, bool) {
	if !v.status.IsValid() || v.noData.Kind() == ValueNone {
		return Value{}, false
	}
	return v.noData, true
}

// DefaultValue returns the default value in final semantic units, if
// declared. Absent on invalid views.
func (v *PropertyView) DefaultValue() (Value, bool) {
	if !v.status.IsValid() || v.defaultValue.Kind() == ValueNone {
		return Value{}, false
	}
	return v.defaultValue, true
}

func (v *PropertyView) numericField(n *Numeric) (Numeric, bool) {
	if !v.status.IsValid() || n == nil {
		return Numeric{}, false
	}
	return *n, true
}
