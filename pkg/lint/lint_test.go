package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilemeta/structmeta/pkg/log"
	"github.com/tilemeta/structmeta/pkg/propview"
	"github.com/tilemeta/structmeta/pkg/schema"
)

func parseDoc(t *testing.T, src string) *schema.Document {
	t.Helper()
	doc, err := schema.ParseDocumentJSON([]byte(src))
	require.NoError(t, err)
	return doc
}

func TestValidateCleanDocument(t *testing.T) {
	doc := parseDoc(t, `{
		"schema": {
			"id": "city",
			"classes": {
				"building": {
					"properties": {
						"height": {"type": "SCALAR", "componentType": "FLOAT32", "max": 500.0},
						"name": {"type": "STRING"}
					}
				}
			}
		},
		"propertyTables": [
			{"class": "building", "count": 10, "properties": {
				"height": {"values": 0, "max": 320.5}
			}}
		]
	}`)

	result := NewValidator().Validate(doc)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateBrokenDeclaration(t *testing.T) {
	doc := parseDoc(t, `{
		"schema": {
			"classes": {
				"building": {
					"properties": {
						"floors": {"type": "SCALAR", "componentType": "INT32", "scale": 2.0}
					}
				}
			}
		}
	}`)

	result := NewValidator().Validate(doc)
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "VIEW", result.Errors[0].Code)
	assert.Equal(t, propview.StatusErrorInvalidScale, result.Errors[0].Status)
	assert.Equal(t, "building", result.Errors[0].Class)
	assert.Equal(t, "floors", result.Errors[0].Property)
}

func TestValidateMissingSchema(t *testing.T) {
	result := NewValidator().Validate(&schema.Document{})
	require.False(t, result.Valid)
	assert.Equal(t, "SCHEMA", result.Errors[0].Code)
}

func TestValidateEnumHandling(t *testing.T) {
	doc := parseDoc(t, `{
		"schema": {
			"classes": {
				"tree": {
					"properties": {
						"species": {"type": "ENUM", "enumType": "speciesEnum"},
						"broken": {"type": "ENUM"}
					}
				}
			}
		}
	}`)

	result := NewValidator().Validate(doc)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "broken", result.Errors[0].Property)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "species", result.Warnings[0].Property)
}

func TestValidateUnknownClassAndProperty(t *testing.T) {
	doc := parseDoc(t, `{
		"schema": {
			"classes": {
				"building": {"properties": {"height": {"type": "SCALAR", "componentType": "FLOAT32"}}}
			}
		},
		"propertyTables": [
			{"class": "bridge", "count": 1},
			{"class": "building", "count": 1, "properties": {"width": {"values": 0}}}
		]
	}`)

	result := NewValidator().Validate(doc)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "CLASS", result.Errors[0].Code)
	assert.Equal(t, "propertyTables[0]", result.Errors[0].Context)
	assert.Equal(t, "PROPERTY", result.Errors[1].Code)
	assert.Equal(t, "propertyTables[1]", result.Errors[1].Context)
}

func TestValidateOverrideFailure(t *testing.T) {
	doc := parseDoc(t, `{
		"schema": {
			"classes": {
				"terrain": {
					"properties": {
						"elevation": {"type": "SCALAR", "componentType": "UINT16", "normalized": true}
					}
				}
			}
		},
		"propertyTextures": [
			{"class": "terrain", "properties": {
				"elevation": {"index": 0, "texCoord": 0, "channels": [0], "offset": "high"}
			}}
		]
	}`)

	result := NewValidator().Validate(doc)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, propview.StatusErrorInvalidOffset, result.Errors[0].Status)
	assert.Equal(t, "propertyTextures[0]", result.Errors[0].Context)
}

func TestValidateStrictRangeRule(t *testing.T) {
	doc := parseDoc(t, `{
		"schema": {
			"classes": {
				"building": {
					"properties": {
						"height": {"type": "SCALAR", "componentType": "FLOAT32", "max": 500.0}
					}
				}
			}
		}
	}`)

	result := NewValidator().Validate(doc)
	assert.True(t, result.Valid)

	strict := NewValidator()
	strict.Strict = true
	result = strict.Validate(doc)
	require.False(t, result.Valid)
	assert.Equal(t, propview.StatusErrorInvalidMax, result.Errors[0].Status)
}

func TestValidateEmitsEvents(t *testing.T) {
	doc := parseDoc(t, `{
		"schema": {
			"classes": {
				"building": {
					"properties": {
						"floors": {"type": "SCALAR", "componentType": "INT32", "offset": 1}
					}
				}
			}
		}
	}`)

	capture := &captureLogger{}
	v := NewValidator()
	v.Logger = capture
	v.RunID = "run-9"
	v.Source = "doc.json"
	v.Validate(doc)

	// One finding plus the run summary.
	require.Len(t, capture.events, 2)
	finding := capture.events[0]
	assert.Equal(t, log.SeverityError, finding.Severity)
	assert.Equal(t, log.StageResolve, finding.Stage)
	assert.Equal(t, "run-9", finding.RunID)
	assert.Equal(t, "floors", finding.Property)
	assert.Equal(t, int32(propview.StatusErrorInvalidOffset), finding.StatusCode)

	summary := capture.events[1]
	assert.Equal(t, log.StageRun, summary.Stage)
	assert.Equal(t, log.SeverityError, summary.Severity)
	assert.Equal(t, "doc.json", summary.Source)
}

type captureLogger struct {
	events []log.Event
}

func (c *captureLogger) Log(event log.Event) {
	c.events = append(c.events, event)
}
