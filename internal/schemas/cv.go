// Package schemas provides JSON Schema validation functionality for structured data artifacts.
package schemas

import (
	_ "embed"
)

//go:embed cv.schema.json
var cvSchema string

// CVSchema returns the JSON Schema of the CV content record.
func CVSchema() string {
	return cvSchema
}

// ValidateCV validates a JSON-encoded content record against the CV schema.
func ValidateCV(jsonContent []byte) error {
	return ValidateJSONString(cvSchema, string(jsonContent))
}
