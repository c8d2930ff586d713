package content

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits a content record or post to 1MB.
var MaxInputSize = 1 << 20

func checkSize(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return nil
}

func unmarshalYAML(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	return nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	out, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return out, nil
}

// flexString accepts any YAML scalar; bare years such as 2012 decode as numbers.
type flexString string

func (s *flexString) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = flexString(t)
	default:
		*s = flexString(fmt.Sprint(t))
	}
	return nil
}

// flexList accepts either a sequence of scalars or a single scalar.
type flexList []string

func (l *flexList) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*l = nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, fmt.Sprint(item))
		}
		*l = out
	default:
		*l = flexList{fmt.Sprint(t)}
	}
	return nil
}
