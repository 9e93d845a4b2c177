// Package schema holds the JSON Schema for curlparse's JSON output and
// validates documents against it, so downstream consumers can check
// exported parse results before ingesting them.
package schema

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Document is the JSON Schema (draft-07) describing the output of
// `curlparse parse --output json`.
const Document = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "curlparse parse result",
  "type": "object",
  "required": ["command", "entries"],
  "properties": {
    "command": { "type": "string" },
    "time": { "type": "string" },
    "entries": {
      "type": "array",
      "items": { "$ref": "#/definitions/entry" }
    }
  },
  "definitions": {
    "entry": {
      "type": "object",
      "required": ["kind"],
      "properties": {
        "kind": { "enum": ["url", "method", "header", "data", "flag"] },
        "flag": { "type": "string" },
        "value": { "type": "string" },
        "url": { "$ref": "#/definitions/url" }
      },
      "allOf": [
        {
          "if": { "properties": { "kind": { "const": "url" } } },
          "then": { "required": ["url"] }
        },
        {
          "if": { "properties": { "kind": { "enum": ["method", "header", "data"] } } },
          "then": {
            "required": ["flag", "value"],
            "properties": { "value": { "minLength": 1 } }
          }
        },
        {
          "if": { "properties": { "kind": { "const": "flag" } } },
          "then": {
            "required": ["flag"],
            "properties": { "flag": { "minLength": 1 } }
          }
        }
      ]
    },
    "url": {
      "type": "object",
      "required": ["scheme", "host"],
      "properties": {
        "scheme": {
          "enum": ["https", "http", "ftp", "sftp", "tftp", "telnet", "ldap", "ws", "wss", "unknown"]
        },
        "userinfo": {
          "type": "object",
          "required": ["username", "password"],
          "properties": {
            "username": { "type": "string" },
            "password": { "type": "string" }
          }
        },
        "host": { "type": "string", "minLength": 1 },
        "path": { "type": "string" },
        "queries": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["key", "value"],
            "properties": {
              "key": { "type": "string", "minLength": 1 },
              "value": { "type": "string" }
            }
          }
        },
        "fragment": { "type": "string" }
      }
    }
  }
}`

// Validate checks a JSON document against the output schema. It returns
// the list of violation descriptions; an empty list means the document
// is valid.
func Validate(data []byte) ([]string, error) {
	schemaLoader := gojsonschema.NewStringLoader(Document)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return violations, nil
}
