// Package enum provides closed sets of named constants and the lookup of a
// constant by its declared name.
//
// A Set is built once per enumeration and never changes afterwards:
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//	)
//
//	var Colors = enum.MustNew("Color",
//		enum.M("RED", Red),
//		enum.M("GREEN", Green),
//		enum.M("BLUE", Blue),
//	)
//
// # Lookup
//
// Set.Lookup returns the constant whose declared name equals the input.
// Matching is exact and case-sensitive; there is no fallback. A miss
// returns an *enumkit.Error of kind KindInvalidArgument that wraps
// enumkit.ErrNameNotFound and names both the input and the type:
//
//	c, err := Colors.Lookup("GREEN") // Green, nil
//	_, err = Colors.Lookup("green")  // enumkit: enum.Lookup (invalid_argument): name not found: "green" is not a constant of Color ...
//
// # Type Descriptors
//
// Sets can be registered under their Go type. The registered set is then
// reachable from the type alone, either statically or through a
// reflect.Type:
//
//	enum.MustRegister(Colors)
//
//	c, err := enum.ValueOf[Color]("BLUE")
//	v, err := enum.Lookup(reflect.TypeOf(Red), "BLUE") // v.(Color) == Blue
//
// Value wraps a registered enum type so struct fields decode from and
// encode to constant names in JSON, YAML and any encoding built on
// encoding.TextUnmarshaler.
//
// # Thread Safety
//
// A Set is immutable after construction and may be shared freely. The
// registry is guarded by a sync.RWMutex; registration is expected to happen
// during initialization.
package enum
