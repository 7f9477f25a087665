package schema

import (
	"github.com/tilemeta/structmeta/pkg/jsonval"
)

// Schema is the root of a structural-metadata schema document.
type Schema struct {
	// ID uniquely identifies the schema.
	ID string `json:"id,omitempty"`

	// Name is a human-readable schema name.
	Name string `json:"name,omitempty"`

	// Description explains the schema's purpose.
	Description string `json:"description,omitempty"`

	// Version is an application-specific schema version.
	Version string `json:"version,omitempty"`

	// Classes maps class IDs to class definitions.
	Classes map[string]*Class `json:"classes,omitempty"`

	// Enums maps enum IDs to enum definitions. Enum symbol
	// resolution is not performed by this library; the definitions
	// are carried so documents round-trip losslessly.
	Enums map[string]*Enum `json:"enums,omitempty"`
}

// Class declares a set of named properties shared by entities.
type Class struct {
	// Name is a human-readable class name.
	Name string `json:"name,omitempty"`

	// Description explains the class's purpose.
	Description string `json:"description,omitempty"`

	// Properties maps property IDs to their declarations.
	Properties map[string]*ClassProperty `json:"properties,omitempty"`
}

// Enum declares a set of named integer values.
type Enum struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// ValueType is the integer component type backing the enum.
	// Defaults to UINT16 when empty.
	ValueType string `json:"valueType,omitempty"`

	// Values are the declared symbols.
	Values []EnumValue `json:"values,omitempty"`
}

// EnumValue is a single (name, integer) enum symbol.
type EnumValue struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Value       int64  `json:"value"`
}

// ClassProperty is the schema-level declaration of a single
// property: its element type and the optional transforms,
// range hints, sentinel, and default applied to its values.
//
// The free-form fields (Offset, Scale, Max, Min, NoData, Default)
// stay as generic value-tree nodes; their concrete type depends on
// the property's element shape and is resolved by pkg/propview. An
// undefined value means the field was not declared.
type ClassProperty struct {
	// Name is a human-readable property name.
	Name string `json:"name,omitempty"`

	// Description explains the property's purpose.
	Description string `json:"description,omitempty"`

	// Type is the element type tag: SCALAR, VEC2..VEC4, MAT2..MAT4,
	// BOOLEAN, STRING, or ENUM.
	Type string `json:"type"`

	// ComponentType is the numeric component kind for SCALAR, VECN,
	// and MATN types: INT8..INT64, UINT8..UINT64, FLOAT32, FLOAT64.
	// Empty means undeclared.
	ComponentType string `json:"componentType,omitempty"`

	// EnumType names the enum definition when Type is ENUM.
	EnumType string `json:"enumType,omitempty"`

	// Array declares that each value is an array of elements.
	Array bool `json:"array,omitempty"`

	// Count is the fixed element count of array values. Zero (or
	// absent) means variable-length arrays.
	Count int64 `json:"count,omitempty"`

	// Normalized reinterprets integer components as fractions of
	// their representable range.
	Normalized bool `json:"normalized,omitempty"`

	// Offset is the additive transform term.
	Offset jsonval.Value `json:"offset,omitempty"`

	// Scale is the multiplicative transform term.
	Scale jsonval.Value `json:"scale,omitempty"`

	// Max is the maximum of all property values, after transforms.
	Max jsonval.Value `json:"max,omitempty"`

	// Min is the minimum of all property values, after transforms.
	Min jsonval.Value `json:"min,omitempty"`

	// Required marks the property as present in every entity.
	Required bool `json:"required,omitempty"`

	// NoData is the raw sentinel value meaning "no value present".
	// Only legal when the property is not required.
	NoData jsonval.Value `json:"noData,omitempty"`

	// Default is the semantic value substituted for omitted or
	// sentinel-valued entries. Only legal when not required.
	Default jsonval.Value `json:"default,omitempty"`

	// Semantic identifies how the property should be interpreted
	// by higher layers.
	Semantic string `json:"semantic,omitempty"`
}
