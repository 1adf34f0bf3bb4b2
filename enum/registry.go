package enum

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/zero-day-ai/enumkit"
)

// entry is the type-erased view of a *Set[T] held by the registry.
type entry interface {
	TypeName() string
	Len() int
	Names() []string
	lookupAny(name string) (any, error)
	firstAny() (any, bool)
}

func (s *Set[T]) lookupAny(name string) (any, error) {
	v, err := s.Lookup(name)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Set[T]) firstAny() (any, bool) {
	v, ok := s.First()
	if !ok {
		return nil, false
	}
	return v, true
}

// registry maps Go types to their enumeration sets.
var (
	registry = make(map[reflect.Type]entry)
	mu       sync.RWMutex
)

// Register makes s reachable from its Go type T.
// Registering a second set for the same type is an error.
func Register[T comparable](s *Set[T]) error {
	if s == nil {
		return enumkit.NewValidationError("enum.Register", fmt.Errorf("nil set"))
	}

	t := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if existing, ok := registry[t]; ok {
		return enumkit.NewValidationError("enum.Register",
			fmt.Errorf("type %s is already registered as %s", t, existing.TypeName()))
	}
	registry[t] = s
	return nil
}

// MustRegister is like Register but panics on error. It returns s so it
// can wrap a package-level MustNew.
func MustRegister[T comparable](s *Set[T]) *Set[T] {
	if err := Register(s); err != nil {
		panic(err)
	}
	return s
}

// Registered returns the set registered for T.
func Registered[T comparable]() (*Set[T], bool) {
	mu.RLock()
	e, ok := registry[reflect.TypeFor[T]()]
	mu.RUnlock()

	if !ok {
		return nil, false
	}
	s, ok := e.(*Set[T])
	return s, ok
}

// ValueOf returns the constant of the registered enumeration T named name.
func ValueOf[T comparable](name string) (T, error) {
	s, ok := Registered[T]()
	if !ok {
		var zero T
		return zero, typeError("enum.ValueOf", reflect.TypeFor[T]())
	}
	return s.Lookup(name)
}

// Lookup returns the constant named name of the enumeration registered for
// t. The returned value has dynamic type t.
func Lookup(t reflect.Type, name string) (any, error) {
	e, err := lookupEntry("enum.Lookup", t)
	if err != nil {
		return nil, err
	}
	return e.lookupAny(name)
}

// NamesOf returns the declared names of the enumeration registered for t.
func NamesOf(t reflect.Type) ([]string, error) {
	e, err := lookupEntry("enum.NamesOf", t)
	if err != nil {
		return nil, err
	}
	return e.Names(), nil
}

// FirstOf returns the first declared constant of the enumeration registered
// for t. It reports false if t is not registered or declares no constants.
func FirstOf(t reflect.Type) (any, bool) {
	mu.RLock()
	e, ok := registry[t]
	mu.RUnlock()

	if !ok {
		return nil, false
	}
	return e.firstAny()
}

// IsRegistered reports whether an enumeration is registered for t.
func IsRegistered(t reflect.Type) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registry[t]
	return ok
}

// Types returns the registered types sorted by their string form.
func Types() []reflect.Type {
	mu.RLock()
	out := make([]reflect.Type, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Clear resets the registry.
// This is primarily useful for testing.
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	registry = make(map[reflect.Type]entry)
}

func lookupEntry(op string, t reflect.Type) (entry, error) {
	if t == nil {
		return nil, enumkit.NewInvalidArgumentError(op, fmt.Errorf("nil type descriptor"))
	}

	mu.RLock()
	e, ok := registry[t]
	mu.RUnlock()

	if !ok {
		return nil, typeError(op, t)
	}
	return e, nil
}

func typeError(op string, t reflect.Type) *enumkit.Error {
	return enumkit.NewNotFoundError(op,
		fmt.Errorf("%w: %s", enumkit.ErrTypeNotRegistered, t)).
		WithContext(map[string]any{"type": t.String()})
}
