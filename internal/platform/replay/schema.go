package replay

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://a11y-reporter.local/schema/recording-v1.json"

const recordingSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["steps"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string"},
    "steps": {"type": "array", "items": {"$ref": "#/definitions/step"}}
  },
  "definitions": {
    "bounds": {"type": "array", "items": {"type": "integer"}, "minItems": 4, "maxItems": 4},
    "step": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "connect": {"type": "boolean"},
        "interrupt": {"type": "boolean"},
        "event": {"$ref": "#/definitions/event"},
        "windows": {"type": "array", "items": {"$ref": "#/definitions/window"}},
        "root": {"$ref": "#/definitions/node"}
      }
    },
    "event": {
      "type": "object",
      "required": ["type"],
      "additionalProperties": false,
      "properties": {
        "type": {"type": ["integer", "string"]},
        "class": {"type": "string"},
        "package": {"type": "string"},
        "time": {"type": "integer"},
        "text": {"type": "array", "items": {"type": "string"}}
      }
    },
    "window": {
      "type": "object",
      "required": ["id"],
      "additionalProperties": false,
      "properties": {
        "id": {"type": "integer"},
        "type": {"type": "integer"},
        "layer": {"type": "integer"},
        "title": {"type": "string"},
        "bounds": {"$ref": "#/definitions/bounds"},
        "active": {"type": "boolean"},
        "focused": {"type": "boolean"}
      }
    },
    "node": {
      "type": "object",
      "required": ["class"],
      "additionalProperties": false,
      "properties": {
        "class": {"type": "string"},
        "package": {"type": "string"},
        "text": {"type": "string"},
        "description": {"type": "string"},
        "view_id": {"type": "string"},
        "bounds": {"$ref": "#/definitions/bounds"},
        "clickable": {"type": "boolean"},
        "focused": {"type": "boolean"},
        "children": {"type": "array", "items": {"$ref": "#/definitions/node"}}
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, strings.NewReader(recordingSchema)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}

// validateSchema checks a generically decoded document. YAML documents are
// normalised through JSON so the validator sees JSON types only.
func validateSchema(doc interface{}) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}
	normalized, err := toJSONValue(doc)
	if err != nil {
		return err
	}
	return s.Validate(normalized)
}

func toJSONValue(v interface{}) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("normalise document: %w", err)
	}
	var out interface{}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("normalise document: %w", err)
	}
	return out, nil
}
