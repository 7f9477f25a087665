package propview

// PropertyType is the element type tag of a property.
type PropertyType uint8

const (
	// TypeInvalid is an unrecognized type tag.
	TypeInvalid PropertyType = iota
	// TypeScalar is a single numeric component.
	TypeScalar
	// TypeVec2 is a 2-component vector.
	TypeVec2
	// TypeVec3 is a 3-component vector.
	TypeVec3
	// TypeVec4 is a 4-component vector.
	TypeVec4
	// TypeMat2 is a 2x2 matrix, stored column-major.
	TypeMat2
	// TypeMat3 is a 3x3 matrix, stored column-major.
	TypeMat3
	// TypeMat4 is a 4x4 matrix, stored column-major.
	TypeMat4
	// TypeString is a UTF-8 string.
	TypeString
	// TypeBoolean is a boolean.
	TypeBoolean
	// TypeEnum is an enum-typed property. Enum symbol resolution is
	// out of scope; the tag exists so mismatches report correctly.
	TypeEnum
)

// PropertyTypeFromString maps a schema type tag to a PropertyType.
func PropertyTypeFromString(s string) PropertyType {
	switch s {
	case "SCALAR":
		return TypeScalar
	case "VEC2":
		return TypeVec2
	case "VEC3":
		return TypeVec3
	case "VEC4":
		return TypeVec4
	case "MAT2":
		return TypeMat2
	case "MAT3":
		return TypeMat3
	case "MAT4":
		return TypeMat4
	case "STRING":
		return TypeString
	case "BOOLEAN":
		return TypeBoolean
	case "ENUM":
		return TypeEnum
	default:
		return TypeInvalid
	}
}

// String returns the schema tag for the type.
func (t PropertyType) String() string {
	switch t {
	case TypeScalar:
		return "SCALAR"
	case TypeVec2:
		return "VEC2"
	case TypeVec3:
		return "VEC3"
	case TypeVec4:
		return "VEC4"
	case TypeMat2:
		return "MAT2"
	case TypeMat3:
		return "MAT3"
	case TypeMat4:
		return "MAT4"
	case TypeString:
		return "STRING"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeEnum:
		return "ENUM"
	default:
		return "INVALID"
	}
}

// IsNumeric reports whether the type carries numeric components.
func (t PropertyType) IsNumeric() bool {
	switch t {
	case TypeScalar, TypeVec2, TypeVec3, TypeVec4, TypeMat2, TypeMat3, TypeMat4:
		return true
	default:
		return false
	}
}

// ComponentCount returns the number of numeric components per
// element: 1 for scalars, N for VECN, N*N for MATN, 1 otherwise.
func (t PropertyType) ComponentCount() int {
	switch t {
	case TypeVec2:
		return 2
	case TypeVec3:
		return 3
	case TypeVec4:
		return 4
	case TypeMat2:
		return 4
	case TypeMat3:
		return 9
	case TypeMat4:
		return 16
	default:
		return 1
	}
}

// ComponentType is the numeric kind of a property's components.
type ComponentType uint8

const (
	// ComponentNone marks shapes without numeric components.
	ComponentNone ComponentType = iota
	ComponentInt8
	ComponentUint8
	ComponentInt16
	ComponentUint16
	ComponentInt32
	ComponentUint32
	ComponentInt64
	ComponentUint64
	ComponentFloat32
	ComponentFloat64
)

// ComponentTypeFromString maps a schema componentType tag to a
// ComponentType.
func ComponentTypeFromString(s string) ComponentType {
	switch s {
	case "INT8":
		return ComponentInt8
	case "UINT8":
		return ComponentUint8
	case "INT16":
		return ComponentInt16
	case "UINT16":
		return ComponentUint16
	case "INT32":
		return ComponentInt32
	case "UINT32":
		return ComponentUint32
	case "INT64":
		return ComponentInt64
	case "UINT64":
		return ComponentUint64
	case "FLOAT32":
		return ComponentFloat32
	case "FLOAT64":
		return ComponentFloat64
	default:
		return ComponentNone
	}
}

// String returns the schema tag for the component type.
func (c ComponentType) String() string {
	switch c {
	case ComponentInt8:
		return "INT8"
	case ComponentUint8:
		return "UINT8"
	case ComponentInt16:
		return "INT16"
	case ComponentUint16:
		return "UINT16"
	case ComponentInt32:
		return "INT32"
	case ComponentUint32:
		return "UINT32"
	case ComponentInt64:
		return "INT64"
	case ComponentUint64:
		return "UINT64"
	case ComponentFloat32:
		return "FLOAT32"
	case ComponentFloat64:
		return "FLOAT64"
	default:
		return "NONE"
	}
}

// Size returns the component width in bytes, 0 for ComponentNone.
func (c ComponentType) Size() int {
	switch c {
	case ComponentInt8, ComponentUint8:
		return 1
	case ComponentInt16, ComponentUint16:
		return 2
	case ComponentInt32, ComponentUint32, ComponentFloat32:
		return 4
	case ComponentInt64, ComponentUint64, ComponentFloat64:
		return 8
	default:
		return 0
	}
}

// Bits returns the component width in bits.
func (c ComponentType) Bits() int { return c.Size() * 8 }

// IsInteger reports whether the component is a signed or unsigned
// integer kind.
func (c ComponentType) IsInteger() bool {
	switch c {
	case ComponentInt8, ComponentUint8, ComponentInt16, ComponentUint16,
		ComponentInt32, ComponentUint32, ComponentInt64, ComponentUint64:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether the component is an unsigned integer
// kind.
func (c ComponentType) IsUnsigned() bool {
	switch c {
	case ComponentUint8, ComponentUint16, ComponentUint32, ComponentUint64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the component is a floating-point kind.
func (c ComponentType) IsFloat() bool {
	return c == ComponentFloat32 || c == ComponentFloat64
}
