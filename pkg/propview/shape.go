package propview

import (
	"strings"

	"github.com/tilemeta/structmeta/pkg/schema"
)

// Shape describes the element shape a caller wants to view a
// property through: the type tag, the numeric component kind for
// numeric types, whether values are arrays of elements, and whether
// integer components are normalized.
//
// Shapes are plain values; the modifier methods return copies.
type Shape struct {
	typ        PropertyType
	component  ComponentType
	array      bool
	normalized bool
}

// Scalar returns a scalar shape of the given numeric kind.
func Scalar(c ComponentType) Shape {
	return Shape{typ: TypeScalar, component: c}
}

// Vec2 returns a 2-component vector shape.
func Vec2(c ComponentType) Shape { return Shape{typ: TypeVec2, component: c} }

// Vec3 returns a 3-component vector shape.
func Vec3(c ComponentType) Shape { return Shape{typ: TypeVec3, component: c} }

// Vec4 returns a 4-component vector shape.
func Vec4(c ComponentType) Shape { return Shape{typ: TypeVec4, component: c} }

// Mat2 returns a 2x2 matrix shape.
func Mat2(c ComponentType) Shape { return Shape{typ: TypeMat2, component: c} }

// Mat3 returns a 3x3 matrix shape.
func Mat3(c ComponentType) Shape { return Shape{typ: TypeMat3, component: c} }

// Mat4 returns a 4x4 matrix shape.
func Mat4(c ComponentType) Shape { return Shape{typ: TypeMat4, component: c} }

// BooleanShape returns the boolean shape.
func BooleanShape() Shape { return Shape{typ: TypeBoolean} }

// StringShape returns the string shape.
func StringShape() Shape { return Shape{typ: TypeString} }

// AsArray returns the shape viewing arrays of this element.
func (s Shape) AsArray() Shape {
	s.array = true
	return s
}

// AsNormalized returns the shape with integer components
// reinterpreted as fractions of their range. Only integer-backed
// numeric shapes can be normalized; on other shapes the flag still
// sticks and construction reports ErrorInvalidNormalization.
func (s Shape) AsNormalized() Shape {
	s.normalized = true
	return s
}

// Type returns the element type tag.
func (s Shape) Type() PropertyType { return s.typ }

// Component returns the numeric component kind, ComponentNone for
// boolean and string shapes.
func (s Shape) Component() ComponentType { return s.component }

// IsArray reports whether values are arrays of elements.
func (s Shape) IsArray() bool { return s.array }

// IsNormalized reports whether integer components are normalized.
func (s Shape) IsNormalized() bool { return s.normalized }

// CanBeNormalized reports whether the shape is an integer-backed
// numeric shape, the only shapes normalization applies to.
func (s Shape) CanBeNormalized() bool {
	return s.typ.IsNumeric() && s.component.IsInteger()
}

// String renders the shape for diagnostics, e.g. "VEC3<UINT8>
// normalized array".
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteString(s.typ.String())
	if s.component != ComponentNone {
		sb.WriteByte('<')
		sb.WriteString(s.component.String())
		sb.WriteByte('>')
	}
	if s.normalized {
		sb.WriteString(" normalized")
	}
	if s.array {
		sb.WriteString(" array")
	}
	return sb.String()
}

// ShapeOf derives the shape a class property declares. It returns
// false when the declaration is not viewable: an unknown type tag,
// an ENUM property (symbol resolution is out of scope), or a
// numeric type with a missing or unknown component type.
func ShapeOf(cp *schema.ClassProperty) (Shape, bool) {
	typ := PropertyTypeFromString(cp.Type)
	switch typ {
	case TypeInvalid, TypeEnum:
		return Shape{}, false
	case TypeBoolean, TypeString:
		return Shape{typ: typ, array: cp.Array}, true
	}

	component := ComponentTypeFromString(cp.ComponentType)
	if component == ComponentNone {
		return Shape{}, false
	}
	return Shape{
		typ:        typ,
		component:  component,
		array:      cp.Array,
		normalized: cp.Normalized && component.IsInteger(),
	}, true
}

// matchClassProperty checks the shape against the class property's
// declared type, component type, and array flag, in that order, and
// returns the first mismatch.
func matchClassProperty(s Shape, cp *schema.ClassProperty) Status {
	if s.typ != PropertyTypeFromString(cp.Type) {
		return StatusErrorTypeMismatch
	}

	if cp.ComponentType == "" && s.component != ComponentNone {
		return StatusErrorComponentTypeMismatch
	}
	if cp.ComponentType != "" && s.component != ComponentTypeFromString(cp.ComponentType) {
		return StatusErrorComponentTypeMismatch
	}

	if s.array != cp.Array {
		return StatusErrorArrayTypeMismatch
	}

	return StatusValid
}
