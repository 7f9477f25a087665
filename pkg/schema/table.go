package schema

import (
	"github.com/tilemeta/structmeta/pkg/jsonval"
)

// Override is the per-instance view of a property's transform
// fields. A property table entry and a property texture entry both
// satisfy it, so the view engine takes a single override parameter.
//
// An undefined value means the instance does not override that
// field and the class-level value stays in effect.
type Override interface {
	OffsetValue() jsonval.Value
	ScaleValue() jsonval.Value
	MaxValue() jsonval.Value
	MinValue() jsonval.Value
}

// PropertyTable holds per-entity values for a class in parallel
// binary columns. Bulk value decoding is out of scope for this
// library; the buffer-view indices are carried for round-tripping.
type PropertyTable struct {
	// Name is a human-readable table name.
	Name string `json:"name,omitempty"`

	// Class is the ID of the class this table conforms to.
	Class string `json:"class"`

	// Count is the number of entities (rows).
	Count int64 `json:"count"`

	// Properties maps property IDs to their column descriptions.
	Properties map[string]*PropertyTableProperty `json:"properties,omitempty"`
}

// PropertyTableProperty describes one column of a property table and
// may override the class-level offset/scale/max/min.
type PropertyTableProperty struct {
	// Values is the buffer-view index of the column data.
	Values int64 `json:"values"`

	// ArrayOffsets is the buffer-view index of per-row array
	// offsets, for variable-length array columns.
	ArrayOffsets int64 `json:"arrayOffsets,omitempty"`

	// StringOffsets is the buffer-view index of per-string byte
	// offsets, for string columns.
	StringOffsets int64 `json:"stringOffsets,omitempty"`

	// ArrayOffsetType is the integer width of ArrayOffsets entries:
	// UINT8, UINT16, UINT32 (default), or UINT64.
	ArrayOffsetType string `json:"arrayOffsetType,omitempty"`

	// StringOffsetType is the integer width of StringOffsets
	// entries, same values as ArrayOffsetType.
	StringOffsetType string `json:"stringOffsetType,omitempty"`

	Offset jsonval.Value `json:"offset,omitempty"`
	Scale  jsonval.Value `json:"scale,omitempty"`
	Max    jsonval.Value `json:"max,omitempty"`
	Min    jsonval.Value `json:"min,omitempty"`
}

// OffsetValue implements Override.
func (p *PropertyTableProperty) OffsetValue() jsonval.Value { return p.Offset }

// ScaleValue implements Override.
func (p *PropertyTableProperty) ScaleValue() jsonval.Value { return p.Scale }

// MaxValue implements Override.
func (p *PropertyTableProperty) MaxValue() jsonval.Value { return p.Max }

// MinValue implements Override.
func (p *PropertyTableProperty) MinValue() jsonval.Value { return p.Min }

// PropertyTexture holds per-texel values for a class in texture
// channels. Texel access is out of scope; the texture reference is
// carried for round-tripping.
type PropertyTexture struct {
	// Name is a human-readable texture name.
	Name string `json:"name,omitempty"`

	// Class is the ID of the class this texture conforms to.
	Class string `json:"class"`

	// Properties maps property IDs to their channel descriptions.
	Properties map[string]*PropertyTextureProperty `json:"properties,omitempty"`
}

// PropertyTextureProperty describes one property stored in texture
// channels and may override the class-level offset/scale/max/min.
type PropertyTextureProperty struct {
	// Index is the texture index in the containing asset.
	Index int64 `json:"index"`

	// TexCoord is the texture coordinate set index.
	TexCoord int64 `json:"texCoord,omitempty"`

	// Channels lists the texture channels holding the value bytes.
	Channels []int64 `json:"channels,omitempty"`

	Offset jsonval.Value `json:"offset,omitempty"`
	Scale  jsonval.Value `json:"scale,omitempty"`
	Max    jsonval.Value `json:"max,omitempty"`
	Min    jsonval.Value `json:"min,omitempty"`
}

// OffsetValue implements Override.
func (p *PropertyTextureProperty) OffsetValue() jsonval.Value { return p.Offset }

// ScaleValue implements Override.
func (p *PropertyTextureProperty) ScaleValue() jsonval.Value { return p.Scale }

// MaxValue implements Override.
func (p *PropertyTextureProperty) MaxValue() jsonval.Value { return p.Max }

// MinValue implements Override.
func (p *PropertyTextureProperty) MinValue() jsonval.Value { return p.Min }

// Compile-time interface satisfaction checks.
var (
	_ Override = (*PropertyTableProperty)(nil)
	_ Override = (*PropertyTextureProperty)(nil)
)
