// Package protoenum looks up protobuf enum values by name through their
// runtime descriptors.
//
// Generated protobuf enums already carry a type descriptor, so no hand-built
// set is needed:
//
//	v, err := protoenum.Lookup(descriptorpb.FieldDescriptorProto_TYPE_INT64.Descriptor(), "TYPE_STRING")
//
// New adapts a generated enum type to an enum.Set so it can be registered
// and used with the rest of the enumkit packages.
package protoenum

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"github.com/zero-day-ai/enumkit"
	"github.com/zero-day-ai/enumkit/enum"
)

// Enum is the constraint satisfied by generated protobuf enum types.
type Enum interface {
	comparable
	protoreflect.Enum
}

// Lookup returns the value of ed declared under name. Matching is exact,
// against the value's short name (e.g. "TYPE_STRING").
func Lookup(ed protoreflect.EnumDescriptor, name string) (protoreflect.EnumValueDescriptor, error) {
	if ed == nil {
		return nil, enumkit.NewInvalidArgumentError("protoenum.Lookup", fmt.Errorf("nil enum descriptor"))
	}

	v := ed.Values().ByName(protoreflect.Name(name))
	if v == nil {
		return nil, enum.NameError("protoenum.Lookup", string(ed.FullName()), name)
	}
	return v, nil
}

// LookupByFullName resolves the enum type fullName in the global protobuf
// registry and returns its value named name.
func LookupByFullName(fullName, name string) (protoreflect.Enum, error) {
	et, err := protoregistry.GlobalTypes.FindEnumByName(protoreflect.FullName(fullName))
	if err != nil {
		if errors.Is(err, protoregistry.NotFound) {
			return nil, enumkit.NewNotFoundError("protoenum.LookupByFullName",
				fmt.Errorf("%w: %s", enumkit.ErrTypeNotRegistered, fullName)).
				WithContext(map[string]any{"type": fullName})
		}
		return nil, enumkit.NewInternalError("protoenum.LookupByFullName", err)
	}

	v, err := Lookup(et.Descriptor(), name)
	if err != nil {
		return nil, err
	}
	return et.New(v.Number()), nil
}

// New builds an enum.Set from the generated enum type E, in descriptor
// declaration order. Aliased values (allow_alias) keep every name; the first
// declared one is canonical.
func New[E Enum]() (*enum.Set[E], error) {
	var zero E
	if any(zero) == nil {
		return nil, enumkit.NewInvalidArgumentError("protoenum.New",
			fmt.Errorf("type parameter must be a concrete generated enum type"))
	}

	et := zero.Type()
	ed := et.Descriptor()
	values := ed.Values()

	members := make([]enum.Member[E], 0, values.Len())
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		e, ok := et.New(v.Number()).(E)
		if !ok {
			return nil, enumkit.NewInternalError("protoenum.New",
				fmt.Errorf("%s: enum type produced %T", ed.FullName(), et.New(v.Number())))
		}
		members = append(members, enum.M(string(v.Name()), e))
	}

	return enum.New(string(ed.FullName()), members...)
}

// Register builds the set for E and registers it with the enum registry.
func Register[E Enum]() (*enum.Set[E], error) {
	s, err := New[E]()
	if err != nil {
		return nil, err
	}
	if err := enum.Register(s); err != nil {
		return nil, err
	}
	return s, nil
}
