package enum

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/zero-day-ai/enumkit"
	"github.com/zero-day-ai/enumkit/schema"
)

// Member is one named constant of an enumeration.
type Member[T comparable] struct {
	Name  string
	Value T
}

// M is shorthand for Member{Name: name, Value: value}.
func M[T comparable](name string, value T) Member[T] {
	return Member[T]{Name: name, Value: value}
}

// Set is a closed, ordered set of named constants of type T.
// The zero value is not usable; build sets with New.
type Set[T comparable] struct {
	typeName string
	members  []Member[T]
	byName   map[string]int
	byValue  map[T]int
}

// New builds a Set from members in declaration order.
//
// typeName identifies the enumeration in error messages. When empty, the Go
// type name of T is used. Names must be non-empty and unique; values may
// repeat, in which case the first declared name is the canonical one.
func New[T comparable](typeName string, members ...Member[T]) (*Set[T], error) {
	if typeName == "" {
		typeName = reflect.TypeFor[T]().String()
	}

	s := &Set[T]{
		typeName: typeName,
		members:  make([]Member[T], 0, len(members)),
		byName:   make(map[string]int, len(members)),
		byValue:  make(map[T]int, len(members)),
	}

	for i, m := range members {
		if m.Name == "" {
			return nil, enumkit.NewValidationError("enum.New",
				fmt.Errorf("constant #%d of %s has an empty name", i, typeName))
		}
		if _, dup := s.byName[m.Name]; dup {
			return nil, enumkit.NewValidationError("enum.New",
				fmt.Errorf("%w: %q in %s", enumkit.ErrDuplicateName, m.Name, typeName))
		}

		s.byName[m.Name] = len(s.members)
		if _, seen := s.byValue[m.Value]; !seen {
			s.byValue[m.Value] = len(s.members)
		}
		s.members = append(s.members, m)
	}

	return s, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// variable initialization.
func MustNew[T comparable](typeName string, members ...Member[T]) *Set[T] {
	s, err := New(typeName, members...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromStringer builds a Set whose names come from each value's String method.
func FromStringer[T interface {
	comparable
	fmt.Stringer
}](typeName string, values ...T) (*Set[T], error) {
	members := make([]Member[T], len(values))
	for i, v := range values {
		members[i] = Member[T]{Name: v.String(), Value: v}
	}
	return New(typeName, members...)
}

// Lookup returns the constant declared under name.
//
// The comparison is exact and case-sensitive. If no constant matches, the
// returned error is an *enumkit.Error of kind KindInvalidArgument wrapping
// enumkit.ErrNameNotFound.
func (s *Set[T]) Lookup(name string) (T, error) {
	if i, ok := s.byName[name]; ok {
		return s.members[i].Value, nil
	}
	var zero T
	return zero, NameError("enum.Lookup", s.typeName, name)
}

// MustLookup is like Lookup but panics if name is not declared.
func (s *Set[T]) MustLookup(name string) T {
	v, err := s.Lookup(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Contains reports whether a constant is declared under name.
func (s *Set[T]) Contains(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Ordinal returns the declaration index of the constant named name.
func (s *Set[T]) Ordinal(name string) (int, bool) {
	i, ok := s.byName[name]
	return i, ok
}

// NameOf returns the canonical name of v.
func (s *Set[T]) NameOf(v T) (string, bool) {
	i, ok := s.byValue[v]
	if !ok {
		return "", false
	}
	return s.members[i].Name, true
}

// First returns the first declared constant. It reports false for an empty set.
func (s *Set[T]) First() (T, bool) {
	if len(s.members) == 0 {
		var zero T
		return zero, false
	}
	return s.members[0].Value, true
}

// TypeName returns the name that identifies the enumeration.
func (s *Set[T]) TypeName() string {
	return s.typeName
}

// Len returns the number of declared constants.
func (s *Set[T]) Len() int {
	return len(s.members)
}

// Members returns a copy of the declared members in declaration order.
func (s *Set[T]) Members() []Member[T] {
	out := make([]Member[T], len(s.members))
	copy(out, s.members)
	return out
}

// Names returns the declared names in declaration order.
func (s *Set[T]) Names() []string {
	out := make([]string, len(s.members))
	for i, m := range s.members {
		out[i] = m.Name
	}
	return out
}

// Values returns the declared constants in declaration order.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.members))
	for i, m := range s.members {
		out[i] = m.Value
	}
	return out
}

// All iterates over name/value pairs in declaration order.
func (s *Set[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, m := range s.members {
			if !yield(m.Name, m.Value) {
				return
			}
		}
	}
}

// Schema describes the enumeration as a JSON schema string with the
// declared names as its allowed values.
func (s *Set[T]) Schema() schema.JSON {
	return schema.StringEnum("", s.Names()...).WithTitle(s.typeName)
}

// String returns the type name followed by the declared names,
// e.g. "Color{RED, GREEN, BLUE}".
func (s *Set[T]) String() string {
	return s.typeName + "{" + strings.Join(s.Names(), ", ") + "}"
}

// NameError builds the error reported when name is not a constant of
// typeName. op names the failing operation.
func NameError(op, typeName, name string) *enumkit.Error {
	return enumkit.NewInvalidArgumentError(op,
		fmt.Errorf("%w: %q is not a constant of %s", enumkit.ErrNameNotFound, name, typeName)).
		WithContext(map[string]any{
			"name": name,
			"type": typeName,
		})
}
