package content

import (
	"fmt"
	"os"

	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
)

// LoadCV loads a content record from a YAML or JSON file.
func LoadCV(path string) (*types.CV, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   fmt.Errorf("%w: %w", ErrMissingInput, err),
		}
	}

	cv, err := ParseCV(data)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("invalid content record %s", path),
			Cause:   err,
		}
	}
	return cv, nil
}

// ParseCV parses, validates and converts a serialized content record.
// JSON is accepted as well since it is a subset of YAML.
func ParseCV(data []byte) (*types.CV, error) {
	if err := checkSize(data); err != nil {
		return nil, err
	}

	jsonContent, err := yamlToJSON(data)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateCV(jsonContent); err != nil {
		return nil, err
	}

	var rec record
	if err := unmarshalYAML(data, &rec); err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("record validation failed: %w", err)
	}

	return rec.toCV(), nil
}
