package cases

import (
	"errors"
	"reflect"

	"github.com/zero-day-ai/enumkit/enum"
)

// Factory creates an instance of a leaf type.
type Factory interface {
	Create(t reflect.Type) (any, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(t reflect.Type) (any, error)

// Create calls f(t).
func (f FactoryFunc) Create(t reflect.Type) (any, error) {
	return f(t)
}

// maxDepth bounds recursion through self-referencing types.
const maxDepth = 8

var (
	errorType = reflect.TypeFor[error]()

	// ErrPlaceholder is the value DefaultFactory assigns to error-typed fields.
	ErrPlaceholder = errors.New("placeholder")
)

// DefaultFactory builds placeholder instances:
//   - types registered with the enum package: the first declared constant
//   - numbers and bools: zero; strings: ""
//   - slices and maps: empty, non-nil
//   - structs: exported fields filled recursively
//   - pointers: a pointer to a filled value
//   - error: ErrPlaceholder
//
// Anything else (channels, funcs, other interfaces) stays at its zero value.
type DefaultFactory struct{}

// Create builds a placeholder value of type t.
func (DefaultFactory) Create(t reflect.Type) (any, error) {
	return build(t, 0).Interface(), nil
}

func build(t reflect.Type, depth int) reflect.Value {
	if depth > maxDepth {
		return reflect.Zero(t)
	}

	if first, ok := enum.FirstOf(t); ok {
		v := reflect.New(t).Elem()
		v.Set(reflect.ValueOf(first))
		return v
	}

	switch t.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0)
	case reflect.Map:
		return reflect.MakeMap(t)
	case reflect.Pointer:
		p := reflect.New(t.Elem())
		p.Elem().Set(build(t.Elem(), depth+1))
		return p
	case reflect.Struct:
		v := reflect.New(t).Elem()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			v.Field(i).Set(build(f.Type, depth+1))
		}
		return v
	case reflect.Interface:
		v := reflect.New(t).Elem()
		if t == errorType {
			v.Set(reflect.ValueOf(ErrPlaceholder))
		}
		return v
	default:
		return reflect.Zero(t)
	}
}
