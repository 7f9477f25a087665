package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tilemeta/structmeta/pkg/jsonval"
)

// Document is a complete structural-metadata document: the schema
// plus the concrete data sources that conform to it.
type Document struct {
	Schema           *Schema            `json:"schema,omitempty"`
	PropertyTables   []*PropertyTable   `json:"propertyTables,omitempty"`
	PropertyTextures []*PropertyTexture `json:"propertyTextures,omitempty"`
}

// ParseDocumentJSON parses a JSON metadata document.
func ParseDocumentJSON(data []byte) (*Document, error) {
	v, err := jsonval.DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return documentFromValue(v)
}

// ParseDocumentYAML parses a YAML metadata document. YAML is an
// authoring convenience; the field mapping is identical to JSON.
func ParseDocumentYAML(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	v, err := jsonval.FromInterface(raw)
	if err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return documentFromValue(v)
}

// ParseDocumentCBOR parses a CBOR metadata document.
func ParseDocumentCBOR(data []byte) (*Document, error) {
	v, err := jsonval.DecodeCBOR(data)
	if err != nil {
		return nil, err
	}
	return documentFromValue(v)
}

// ParseDocumentFile parses a metadata document, choosing the format
// by file extension: .yaml/.yml, .cbor, anything else JSON.
func ParseDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseDocumentYAML(data)
	case ".cbor":
		return ParseDocumentCBOR(data)
	default:
		return ParseDocumentJSON(data)
	}
}

func documentFromValue(v jsonval.Value) (*Document, error) {
	if v.Kind() != jsonval.ObjectKind {
		return nil, fmt.Errorf("document root must be an object, got %s", v.Kind())
	}

	doc := &Document{}

	if sv := v.Field("schema"); sv.IsDefined() {
		s, err := schemaFromValue(sv)
		if err != nil {
			return nil, err
		}
		doc.Schema = s
	}

	if tv := v.Field("propertyTables"); tv.IsDefined() {
		elems, ok := tv.Array()
		if !ok {
			return nil, fmt.Errorf("propertyTables must be an array")
		}
		for i, e := range elems {
			t, err := tableFromValue(e)
			if err != nil {
				return nil, fmt.Errorf("propertyTables[%d]: %w", i, err)
			}
			doc.PropertyTables = append(doc.PropertyTables, t)
		}
	}

	if tv := v.Field("propertyTextures"); tv.IsDefined() {
		elems, ok := tv.Array()
		if !ok {
			return nil, fmt.Errorf("propertyTextures must be an array")
		}
		for i, e := range elems {
			t, err := textureFromValue(e)
			if err != nil {
				return nil, fmt.Errorf("propertyTextures[%d]: %w", i, err)
			}
			doc.PropertyTextures = append(doc.PropertyTextures, t)
		}
	}

	return doc, nil
}

func schemaFromValue(v jsonval.Value) (*Schema, error) {
	if v.Kind() != jsonval.ObjectKind {
		return nil, fmt.Errorf("schema must be an object, got %s", v.Kind())
	}

	s := &Schema{
		ID:          stringField(v, "id"),
		Name:        stringField(v, "name"),
		Description: stringField(v, "description"),
		Version:     stringField(v, "version"),
	}

	if cv := v.Field("classes"); cv.IsDefined() {
		classes, ok := cv.Object()
		if !ok {
			return nil, fmt.Errorf("classes must be an object")
		}
		s.Classes = make(map[string]*Class, len(classes))
		for id, e := range classes {
			c, err := classFromValue(e)
			if err != nil {
				return nil, fmt.Errorf("class %q: %w", id, err)
			}
			s.Classes[id] = c
		}
	}

	if ev := v.Field("enums"); ev.IsDefined() {
		enums, ok := ev.Object()
		if !ok {
			return nil, fmt.Errorf("enums must be an object")
		}
		s.Enums = make(map[string]*Enum, len(enums))
		for id, e := range enums {
			en, err := enumFromValue(e)
			if err != nil {
				return nil, fmt.Errorf("enum %q: %w", id, err)
			}
			s.Enums[id] = en
		}
	}

	return s, nil
}

func classFromValue(v jsonval.Value) (*Class, error) {
	if v.Kind() != jsonval.ObjectKind {
		return nil, fmt.Errorf("class must be an object, got %s", v.Kind())
	}

	c := &Class{
		Name:        stringField(v, "name"),
		Description: stringField(v, "description"),
	}

	if pv := v.Field("properties"); pv.IsDefined() {
		props, ok := pv.Object()
		if !ok {
			return nil, fmt.Errorf("properties must be an object")
		}
		c.Properties = make(map[string]*ClassProperty, len(props))
		for id, e := range props {
			p, err := classPropertyFromValue(e)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", id, err)
			}
			c.Properties[id] = p
		}
	}

	return c, nil
}

func classPropertyFromValue(v jsonval.Value) (*ClassProperty, error) {
	if v.Kind() != jsonval.ObjectKind {
		return nil, fmt.Errorf("property must be an object, got %s", v.Kind())
	}

	p := &ClassProperty{
		Name:          stringField(v, "name"),
		Description:   stringField(v, "description"),
		Type:          stringField(v, "type"),
		ComponentType: stringField(v, "componentType"),
		EnumType:      stringField(v, "enumType"),
		Array:         boolField(v, "array"),
		Normalized:    boolField(v, "normalized"),
		Required:      boolField(v, "required"),
		Semantic:      stringField(v, "semantic"),
		Offset:        v.Field("offset"),
		Scale:         v.Field("scale"),
		Max:           v.Field("max"),
		Min:           v.Field("min"),
		NoData:        v.Field("noData"),
		Default:       v.Field("default"),
	}

	if p.Type == "" {
		return nil, fmt.Errorf("missing required field %q", "type")
	}

	count, err := intField(v, "count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("count must be non-negative, got %d", count)
	}
	p.Count = count

	return p, nil
}

func enumFromValue(v jsonval.Value) (*Enum, error) {
	if v.Kind() != jsonval.ObjectKind {
		return nil, fmt.Errorf("enum must be an object, got %s", v.Kind())
	}

	e := &Enum{
		Name:        stringField(v, "name"),
		Description: stringField(v, "description"),
		ValueType:   stringField(v, "valueType"),
	}

	if vv := v.Field("values"); vv.IsDefined() {
		elems, ok := vv.Array()
		if !ok {
			return nil, fmt.Errorf("values must be an array")
		}
		for i, el := range elems {
			val, err := intField(el, "value")
			if err != nil {
				return nil, fmt.Errorf("values[%d]: %w", i, err)
			}
			e.Values = append(e.Values, EnumValue{
				Name:        stringField(el, "name"),
				Description: stringField(el, "description"),
				Value:       val,
			})
		}
	}

	return e, nil
}

func tableFromValue(v jsonval.Value) (*PropertyTable, error) {
	if v.Kind() != jsonval.ObjectKind {
		return nil, fmt.Errorf("property table must be an object, got %s", v.Kind())
	}

	count, err := intField(v, "count")
	if err != nil {
		return nil, err
	}

	t := &PropertyTable{
		Name:  stringField(v, "name"),
		Class: stringField(v, "class"),
		Count: count,
	}
	if t.Class == "" {
		return nil, fmt.Errorf("missing required field %q", "class")
	}

	if pv := v.Field("properties"); pv.IsDefined() {
		props, ok := pv.Object()
		if !ok {
			return nil, fmt.Errorf("properties must be an object")
		}
		t.Properties = make(map[string]*PropertyTableProperty, len(props))
		for id, e := range props {
			values, err := intField(e, "values")
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", id, err)
			}
			arrayOffsets, err := intField(e, "arrayOffsets")
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", id, err)
			}
			stringOffsets, err := intField(e, "stringOffsets")
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", id, err)
			}
			t.Properties[id] = &PropertyTableProperty{
				Values:           values,
				ArrayOffsets:     arrayOffsets,
				StringOffsets:    stringOffsets,
				ArrayOffsetType:  stringField(e, "arrayOffsetType"),
				StringOffsetType: stringField(e, "stringOffsetType"),
				Offset:           e.Field("offset"),
				Scale:            e.Field("scale"),
				Max:              e.Field("max"),
				Min:              e.Field("min"),
			}
		}
	}

	return t, nil
}

func textureFromValue(v jsonval.Value) (*PropertyTexture, error) {
	if v.Kind() != jsonval.ObjectKind {
		return nil, fmt.Errorf("property texture must be an object, got %s", v.Kind())
	}

	t := &PropertyTexture{
		Name:  stringField(v, "name"),
		Class: stringField(v, "class"),
	}
	if t.Class == "" {
		return nil, fmt.Errorf("missing required field %q", "class")
	}

	if pv := v.Field("properties"); pv.IsDefined() {
		props, ok := pv.Object()
		if !ok {
			return nil, fmt.Errorf("properties must be an object")
		}
		t.Properties = make(map[string]*PropertyTextureProperty, len(props))
		for id, e := range props {
			index, err := intField(e, "index")
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", id, err)
			}
			texCoord, err := intField(e, "texCoord")
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", id, err)
			}
			p := &PropertyTextureProperty{
				Index:    index,
				TexCoord: texCoord,
				Offset:   e.Field("offset"),
				Scale:    e.Field("scale"),
				Max:      e.Field("max"),
				Min:      e.Field("min"),
			}
			if cv := e.Field("channels"); cv.IsDefined() {
				elems, ok := cv.Array()
				if !ok {
					return nil, fmt.Errorf("property %q: channels must be an array", id)
				}
				for j, ch := range elems {
					n, ok := ch.Int64()
					if !ok {
						return nil, fmt.Errorf("property %q: channels[%d] must be an integer", id, j)
					}
					p.Channels = append(p.Channels, n)
				}
			}
			t.Properties[id] = p
		}
	}

	return t, nil
}

func stringField(v jsonval.Value, name string) string {
	s, _ := v.Field(name).Str()
	return s
}

func boolField(v jsonval.Value, name string) bool {
	b, _ := v.Field(name).Bool()
	return b
}

func intField(v jsonval.Value, name string) (int64, error) {
	f := v.Field(name)
	if !f.IsDefined() {
		return 0, nil
	}
	n, ok := f.Int64()
	if !ok {
		return 0, fmt.Errorf("field %q must be an integer, got %s", name, f.Kind())
	}
	return n, nil
}
