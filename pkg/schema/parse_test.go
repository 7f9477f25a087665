package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "schema": {
    "id": "building-schema",
    "classes": {
      "building": {
        "properties": {
          "height": {
            "type": "SCALAR",
            "componentType": "FLOAT32",
            "offset": 1.5,
            "scale": 2.0,
            "required": true
          },
          "color": {
            "type": "VEC3",
            "componentType": "UINT8",
            "normalized": true
          },
          "name": {
            "type": "STRING",
            "noData": "n/a"
          },
          "tags": {
            "type": "STRING",
            "array": true,
            "count": 3
          }
        }
      }
    },
    "enums": {
      "roofKind": {
        "valueType": "UINT16",
        "values": [
          {"name": "Flat", "value": 0},
          {"name": "Gabled", "value": 1}
        ]
      }
    }
  },
  "propertyTables": [
    {
      "class": "building",
      "count": 10,
      "properties": {
        "height": {"values": 0, "scale": 3.0}
      }
    }
  ],
  "propertyTextures": [
    {
      "class": "building",
      "properties": {
        "color": {"index": 0, "channels": [0, 1, 2]}
      }
    }
  ]
}`

func TestParseDocumentJSON(t *testing.T) {
	doc, err := ParseDocumentJSON([]byte(sampleJSON))
	require.NoError(t, err)
	require.NotNil(t, doc.Schema)
	require.Equal(t, "building-schema", doc.Schema.ID)

	class := doc.Schema.Classes["building"]
	require.NotNil(t, class)
	require.Len(t, class.Properties, 4)

	height := class.Properties["height"]
	require.Equal(t, "SCALAR", height.Type)
	require.Equal(t, "FLOAT32", height.ComponentType)
	require.True(t, height.Required)
	off, ok := height.Offset.Float64()
	require.True(t, ok)
	require.Equal(t, 1.5, off)

	color := class.Properties["color"]
	require.True(t, color.Normalized)
	require.False(t, color.Offset.IsDefined())

	tags := class.Properties["tags"]
	require.True(t, tags.Array)
	require.Equal(t, int64(3), tags.Count)

	require.Len(t, doc.Schema.Enums, 1)
	require.Equal(t, int64(1), doc.Schema.Enums["roofKind"].Values[1].Value)

	require.Len(t, doc.PropertyTables, 1)
	table := doc.PropertyTables[0]
	require.Equal(t, "building", table.Class)
	require.Equal(t, int64(10), table.Count)
	scale, ok := table.Properties["height"].ScaleValue().Float64()
	require.True(t, ok)
	require.Equal(t, 3.0, scale)

	require.Len(t, doc.PropertyTextures, 1)
	tex := doc.PropertyTextures[0].Properties["color"]
	require.Equal(t, []int64{0, 1, 2}, tex.Channels)
}

func TestParseDocumentYAML(t *testing.T) {
	yamlDoc := []byte(`
schema:
  id: test
  classes:
    vehicle:
      properties:
        speed:
          type: SCALAR
          componentType: UINT8
          normalized: true
          scale: 0.5
`)
	doc, err := ParseDocumentYAML(yamlDoc)
	require.NoError(t, err)
	speed := doc.Schema.Classes["vehicle"].Properties["speed"]
	require.Equal(t, "UINT8", speed.ComponentType)
	require.True(t, speed.Normalized)
	s, ok := speed.Scale.Float64()
	require.True(t, ok)
	require.Equal(t, 0.5, s)
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"root not object", `[1,2]`},
		{"property missing type", `{"schema":{"classes":{"c":{"properties":{"p":{}}}}}}`},
		{"negative count", `{"schema":{"classes":{"c":{"properties":{"p":{"type":"SCALAR","count":-1}}}}}}`},
		{"table missing class", `{"propertyTables":[{"count":1}]}`},
		{"non-integer channel", `{"propertyTextures":[{"class":"c","properties":{"p":{"index":0,"channels":[0.5]}}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocumentJSON([]byte(tt.json))
			require.Error(t, err)
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc, err := ParseDocumentJSON([]byte(sampleJSON))
	require.NoError(t, err)

	jsonOut, err := doc.EncodeJSON()
	require.NoError(t, err)
	back, err := ParseDocumentJSON(jsonOut)
	require.NoError(t, err)
	require.True(t, doc.ToValue().Equal(back.ToValue()), "json round trip")

	yamlOut, err := doc.EncodeYAML()
	require.NoError(t, err)
	back, err = ParseDocumentYAML(yamlOut)
	require.NoError(t, err)
	require.True(t, doc.ToValue().Equal(back.ToValue()), "yaml round trip")

	cborOut, err := doc.EncodeCBOR()
	require.NoError(t, err)
	back, err = ParseDocumentCBOR(cborOut)
	require.NoError(t, err)
	require.True(t, doc.ToValue().Equal(back.ToValue()), "cbor round trip")
}
