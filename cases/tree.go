package cases

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/zero-day-ai/enumkit"
)

// Node is one type in a closed hierarchy. Nodes with children are abstract
// and never instantiated.
type Node struct {
	Name     string
	Type     reflect.Type
	Children []Node
}

// Leaf describes the concrete type T, named after the type.
func Leaf[T any]() Node {
	t := reflect.TypeFor[T]()
	return Node{Name: t.Name(), Type: t}
}

// Sealed describes an abstract node with the given children.
func Sealed(name string, children ...Node) Node {
	return Node{Name: name, Children: children}
}

// Leaves flattens the hierarchy below n, keeping only nodes without
// children, in depth-first declaration order. n itself is not included.
func (n Node) Leaves() []Node {
	var out []Node
	for _, c := range n.Children {
		if len(c.Children) == 0 {
			out = append(out, c)
		}
		out = append(out, c.Leaves()...)
	}
	return out
}

// Instances builds one value per selected leaf of root.
func Instances(root Node, opts ...Option) ([]any, error) {
	o := newOptions(opts)

	var out []any
	for _, leaf := range root.Leaves() {
		if !o.keep(leaf.Name) {
			continue
		}
		v, err := create(o.factory, leaf)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// RunTree runs fn as a subtest for each selected leaf of root, passing a
// freshly built instance of the leaf type.
func RunTree(t *testing.T, root Node, fn func(t *testing.T, v any), opts ...Option) {
	t.Helper()
	o := newOptions(opts)

	for _, leaf := range root.Leaves() {
		if !o.keep(leaf.Name) {
			continue
		}
		t.Run(leaf.Name, func(t *testing.T) {
			v, err := create(o.factory, leaf)
			if err != nil {
				t.Fatalf("create %s: %v", leaf.Name, err)
			}
			fn(t, v)
		})
	}
}

func create(f Factory, leaf Node) (any, error) {
	if leaf.Type == nil {
		return nil, enumkit.NewInvalidArgumentError("cases.Instances",
			fmt.Errorf("leaf %q has no type", leaf.Name))
	}
	return f.Create(leaf.Type)
}
