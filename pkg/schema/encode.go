package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tilemeta/structmeta/pkg/jsonval"
)

// ToValue converts the document back to a generic value tree.
// Unset optional fields are omitted, so encode(parse(x)) is a
// canonical form of x.
func (d *Document) ToValue() jsonval.Value {
	root := map[string]jsonval.Value{}
	if d.Schema != nil {
		root["schema"] = d.Schema.toValue()
	}
	if len(d.PropertyTables) > 0 {
		tables := make([]jsonval.Value, len(d.PropertyTables))
		for i, t := range d.PropertyTables {
			tables[i] = t.toValue()
		}
		root["propertyTables"] = jsonval.NewArray(tables...)
	}
	if len(d.PropertyTextures) > 0 {
		textures := make([]jsonval.Value, len(d.PropertyTextures))
		for i, t := range d.PropertyTextures {
			textures[i] = t.toValue()
		}
		root["propertyTextures"] = jsonval.NewArray(textures...)
	}
	return jsonval.NewObject(root)
}

// EncodeJSON serializes the document as indented JSON.
func (d *Document) EncodeJSON() ([]byte, error) {
	raw, err := d.ToValue().MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("indent json: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// EncodeYAML serializes the document as YAML.
func (d *Document) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(d.ToValue().Interface())
}

// EncodeCBOR serializes the document as deterministic CBOR.
func (d *Document) EncodeCBOR() ([]byte, error) {
	return jsonval.EncodeCBOR(d.ToValue())
}

func (s *Schema) toValue() jsonval.Value {
	obj := map[string]jsonval.Value{}
	putString(obj, "id", s.ID)
	putString(obj, "name", s.Name)
	putString(obj, "description", s.Description)
	putString(obj, "version", s.Version)

	if len(s.Classes) > 0 {
		classes := make(map[string]jsonval.Value, len(s.Classes))
		for id, c := range s.Classes {
			classes[id] = c.toValue()
		}
		obj["classes"] = jsonval.NewObject(classes)
	}
	if len(s.Enums) > 0 {
		enums := make(map[string]jsonval.Value, len(s.Enums))
		for id, e := range s.Enums {
			enums[id] = e.toValue()
		}
		obj["enums"] = jsonval.NewObject(enums)
	}
	return jsonval.NewObject(obj)
}

func (c *Class) toValue() jsonval.Value {
	obj := map[string]jsonval.Value{}
	putString(obj, "name", c.Name)
	putString(obj, "description", c.Description)
	if len(c.Properties) > 0 {
		props := make(map[string]jsonval.Value, len(c.Properties))
		for id, p := range c.Properties {
			props[id] = p.toValue()
		}
		obj["properties"] = jsonval.NewObject(props)
	}
	return jsonval.NewObject(obj)
}

func (p *ClassProperty) toValue() jsonval.Value {
	obj := map[string]jsonval.Value{}
	putString(obj, "name", p.Name)
	putString(obj, "description", p.Description)
	obj["type"] = jsonval.NewString(p.Type)
	putString(obj, "componentType", p.ComponentType)
	putString(obj, "enumType", p.EnumType)
	putBool(obj, "array", p.Array)
	if p.Count > 0 {
		obj["count"] = jsonval.NewInt(p.Count)
	}
	putBool(obj, "normalized", p.Normalized)
	putValue(obj, "offset", p.Offset)
	putValue(obj, "scale", p.Scale)
	putValue(obj, "max", p.Max)
	putValue(obj, "min", p.Min)
	putBool(obj, "required", p.Required)
	putValue(obj, "noData", p.NoData)
	putValue(obj, "default", p.Default)
	putString(obj, "semantic", p.Semantic)
	return jsonval.NewObject(obj)
}

func (e *Enum) toValue() jsonval.Value {
	obj := map[string]jsonval.Value{}
	putString(obj, "name", e.Name)
	putString(obj, "description", e.Description)
	putString(obj, "valueType", e.ValueType)
	if len(e.Values) > 0 {
		values := make([]jsonval.Value, len(e.Values))
		for i, v := range e.Values {
			ev := map[string]jsonval.Value{
				"name":  jsonval.NewString(v.Name),
				"value": jsonval.NewInt(v.Value),
			}
			putString(ev, "description", v.Description)
			values[i] = jsonval.NewObject(ev)
		}
		obj["values"] = jsonval.NewArray(values...)
	}
	return jsonval.NewObject(obj)
}

func (t *PropertyTable) toValue() jsonval.Value {
	obj := map[string]jsonval.Value{
		"class": jsonval.NewString(t.Class),
		"count": jsonval.NewInt(t.Count),
	}
	putString(obj, "name", t.Name)
	if len(t.Properties) > 0 {
		props := make(map[string]jsonval.Value, len(t.Properties))
		for id, p := range t.Properties {
			pv := map[string]jsonval.Value{
				"values": jsonval.NewInt(p.Values),
			}
			if p.ArrayOffsets != 0 {
				pv["arrayOffsets"] = jsonval.NewInt(p.ArrayOffsets)
			}
			if p.StringOffsets != 0 {
				pv["stringOffsets"] = jsonval.NewInt(p.StringOffsets)
			}
			putString(pv, "arrayOffsetType", p.ArrayOffsetType)
			putString(pv, "stringOffsetType", p.StringOffsetType)
			putValue(pv, "offset", p.Offset)
			putValue(pv, "scale", p.Scale)
			putValue(pv, "max", p.Max)
			putValue(pv, "min", p.Min)
			props[id] = jsonval.NewObject(pv)
		}
		obj["properties"] = jsonval.NewObject(props)
	}
	return jsonval.NewObject(obj)
}

func (t *PropertyTexture) toValue() jsonval.Value {
	obj := map[string]jsonval.Value{
		"class": jsonval.NewString(t.Class),
	}
	putString(obj, "name", t.Name)
	if len(t.Properties) > 0 {
		props := make(map[string]jsonval.Value, len(t.Properties))
		for id, p := range t.Properties {
			pv := map[string]jsonval.Value{
				"index": jsonval.NewInt(p.Index),
			}
			if p.TexCoord != 0 {
				pv["texCoord"] = jsonval.NewInt(p.TexCoord)
			}
			if len(p.Channels) > 0 {
				channels := make([]jsonval.Value, len(p.Channels))
				for i, ch := range p.Channels {
					channels[i] = jsonval.NewInt(ch)
				}
				pv["channels"] = jsonval.NewArray(channels...)
			}
			putValue(pv, "offset", p.Offset)
			putValue(pv, "scale", p.Scale)
			putValue(pv, "max", p.Max)
			putValue(pv, "min", p.Min)
			props[id] = jsonval.NewObject(pv)
		}
		obj["properties"] = jsonval.NewObject(props)
	}
	return jsonval.NewObject(obj)
}

func putString(obj map[string]jsonval.Value, name, s string) {
	if s != "" {
		obj[name] = jsonval.NewString(s)
	}
}

func putBool(obj map[string]jsonval.Value, name string, b bool) {
	if b {
		obj[name] = jsonval.NewBool(b)
	}
}

func putValue(obj map[string]jsonval.Value, name string, v jsonval.Value) {
	if v.IsDefined() {
		obj[name] = v
	}
}
