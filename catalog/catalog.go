// Package catalog loads enumerations declared in YAML files and looks up
// their constants by type name and constant name.
//
// A catalog file lists enumerations in order:
//
//	enums:
//	  - name: Color
//	    values: [RED, GREEN, BLUE]
//	  - name: Size
//	    values: [SMALL, LARGE]
//
// Lookups follow the rules of the enum package: exact, case-sensitive
// names, and errors wrapping enumkit.ErrNameNotFound on a miss. An unknown
// type name fails with enumkit.ErrTypeNotRegistered.
//
// Catalogs also evaluate CEL expressions over their constants; see Eval.
package catalog

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/zero-day-ai/enumkit"
	"github.com/zero-day-ai/enumkit/enum"
	"github.com/zero-day-ai/enumkit/schema"
)

// Constant is one declared value of a catalog enumeration.
type Constant struct {
	Type    string
	Name    string
	Ordinal int
}

// String returns the constant's name.
func (c Constant) String() string {
	return c.Name
}

// Catalog is an immutable collection of enumerations keyed by type name.
type Catalog struct {
	sets         map[string]*enum.Set[Constant]
	descriptions map[string]string
	order        []string

	envOnce sync.Once
	env     *cel.Env
	envErr  error
}

// New builds a catalog from definitions. Type names must be unique.
func New(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		sets:         make(map[string]*enum.Set[Constant], len(defs)),
		descriptions: make(map[string]string, len(defs)),
		order:        make([]string, 0, len(defs)),
	}

	for _, def := range defs {
		if _, dup := c.sets[def.Name]; dup {
			return nil, enumkit.NewConfigurationError("catalog.New",
				fmt.Errorf("%w: enum %q declared twice", enumkit.ErrInvalidConfig, def.Name))
		}

		members := make([]enum.Member[Constant], len(def.Values))
		for i, name := range def.Values {
			members[i] = enum.M(name, Constant{Type: def.Name, Name: name, Ordinal: i})
		}

		s, err := enum.New(def.Name, members...)
		if err != nil {
			return nil, err
		}

		c.sets[def.Name] = s
		c.descriptions[def.Name] = def.Description
		c.order = append(c.order, def.Name)
	}

	return c, nil
}

// Lookup returns the constant name of the enumeration typeName.
func (c *Catalog) Lookup(typeName, name string) (Constant, error) {
	s, err := c.set("catalog.Lookup", typeName)
	if err != nil {
		return Constant{}, err
	}
	return s.Lookup(name)
}

// Set returns the enumeration declared as typeName.
func (c *Catalog) Set(typeName string) (*enum.Set[Constant], bool) {
	s, ok := c.sets[typeName]
	return s, ok
}

// TypeNames returns the declared type names in file order.
func (c *Catalog) TypeNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Description returns the description declared for typeName.
func (c *Catalog) Description(typeName string) string {
	return c.descriptions[typeName]
}

// Schema returns the JSON schema of the enumeration typeName.
func (c *Catalog) Schema(typeName string) (schema.JSON, error) {
	s, err := c.set("catalog.Schema", typeName)
	if err != nil {
		return schema.JSON{}, err
	}
	js := s.Schema()
	js.Description = c.descriptions[typeName]
	return js, nil
}

func (c *Catalog) set(op, typeName string) (*enum.Set[Constant], error) {
	s, ok := c.sets[typeName]
	if !ok {
		return nil, enumkit.NewNotFoundError(op,
			fmt.Errorf("%w: %s", enumkit.ErrTypeNotRegistered, typeName)).
			WithContext(map[string]any{"type": typeName})
	}
	return s, nil
}
