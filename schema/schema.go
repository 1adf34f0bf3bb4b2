package schema

import (
	"fmt"
	"reflect"
)

// JSON represents a JSON Schema fragment.
type JSON struct {
	Type        string `json:"type,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	Default     any    `json:"default,omitempty"`
}

// String creates a JSON schema for a string type.
func String() JSON {
	return JSON{Type: "string"}
}

// Enum creates a JSON schema with enumerated values of any type.
func Enum(values ...any) JSON {
	return JSON{Enum: values}
}

// StringEnum creates a string schema restricted to the given names.
func StringEnum(desc string, names ...string) JSON {
	values := make([]any, len(names))
	for i, n := range names {
		values[i] = n
	}
	return JSON{
		Type:        "string",
		Description: desc,
		Enum:        values,
	}
}

// WithTitle returns a copy of the schema with the title set.
func (s JSON) WithTitle(title string) JSON {
	s.Title = title
	return s
}

// WithDefault returns a copy of the schema with the default value set.
func (s JSON) WithDefault(v any) JSON {
	s.Default = v
	return s
}

// Validate validates the given value against this JSON schema.
// It returns an error if the value does not conform to the schema.
func (s JSON) Validate(value any) error {
	if value == nil {
		if s.Type != "" {
			return fmt.Errorf("expected type %s, got nil", s.Type)
		}
		return nil
	}

	if s.Type != "" {
		if err := s.validateType(value); err != nil {
			return err
		}
	}

	if len(s.Enum) > 0 {
		return s.validateEnum(value)
	}

	return nil
}

// validateType checks if the value matches the expected type.
func (s JSON) validateType(value any) error {
	v := reflect.ValueOf(value)

	switch s.Type {
	case "string":
		if v.Kind() != reflect.String {
			return fmt.Errorf("expected string, got %T", value)
		}
	case "integer":
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		default:
			return fmt.Errorf("expected integer, got %T", value)
		}
	default:
		return fmt.Errorf("unsupported schema type: %s", s.Type)
	}

	return nil
}

// validateEnum validates that the value is one of the allowed enum values.
func (s JSON) validateEnum(value any) error {
	for _, enumVal := range s.Enum {
		if reflect.DeepEqual(value, enumVal) {
			return nil
		}
	}
	return fmt.Errorf("value %v is not one of the allowed values: %v", value, s.Enum)
}
