package enum

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/enumkit"
)

// Value holds a constant of the registered enumeration T and encodes as
// the constant's name.
//
// It implements encoding.TextMarshaler and encoding.TextUnmarshaler, which
// encoding/json uses for string values, and the yaml.v3 Marshaler and
// Unmarshaler interfaces:
//
//	type Paint struct {
//		Color enum.Value[Color] `json:"color" yaml:"color"`
//	}
type Value[T comparable] struct {
	V T
}

// Of wraps v.
func Of[T comparable](v T) Value[T] {
	return Value[T]{V: v}
}

// MarshalText encodes the canonical name of the wrapped constant.
func (v Value[T]) MarshalText() ([]byte, error) {
	s, ok := Registered[T]()
	if !ok {
		return nil, typeError("enum.Value.MarshalText", reflect.TypeFor[T]())
	}

	name, ok := s.NameOf(v.V)
	if !ok {
		return nil, enumkit.NewInvalidArgumentError("enum.Value.MarshalText",
			fmt.Errorf("value %v is not a constant of %s", v.V, s.TypeName()))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a constant name using the registered set.
func (v *Value[T]) UnmarshalText(text []byte) error {
	x, err := ValueOf[T](string(text))
	if err != nil {
		return err
	}
	v.V = x
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value[T]) MarshalYAML() (any, error) {
	b, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted.
func (v *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return enumkit.NewInvalidArgumentError("enum.Value.UnmarshalYAML",
			fmt.Errorf("line %d: expected a constant name, got a non-scalar node", node.Line))
	}
	return v.UnmarshalText([]byte(node.Value))
}

// String returns the constant's name, or its %v form if it has none.
func (v Value[T]) String() string {
	if b, err := v.MarshalText(); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", v.V)
}
