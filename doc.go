// Package enumkit looks up enumeration constants by their declared names.
//
// Go has no enum keyword, so an enumeration here is an explicit, immutable
// set of named constants built once per type. The lookup is exact and
// case-sensitive: asking for "green" when only GREEN is declared fails with
// an error that wraps ErrNameNotFound and carries both the offending name
// and the enumeration's type name.
//
// # Packages
//
//   - enum: the Set type, the lookup itself and a registry keyed by Go type
//   - protoenum: the same lookup over protobuf enum descriptors
//   - catalog: enumerations declared in YAML files, with CEL expressions
//   - cases: table-driven tests over every constant of an enumeration
//   - schema: JSON Schema fragments describing enumerations
//
// # Getting Started
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
//	c, err := Colors.Lookup("GREEN") // Green, nil
//	_, err = Colors.Lookup("green")  // errors.Is(err, enumkit.ErrNameNotFound)
//
// # Error Handling
//
// Failures are reported as *Error values carrying an operation, a kind and
// a context map. Use errors.Is with the sentinel errors, or IsKind to test
// the category:
//
//	if enumkit.IsKind(err, enumkit.KindInvalidArgument) {
//		// unknown constant name
//	}
package enumkit
