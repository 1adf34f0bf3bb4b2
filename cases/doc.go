// Package cases drives table tests from closed sets of constants and from
// closed type hierarchies.
//
// Run executes one subtest per constant of an enumeration, named after the
// constant:
//
//	func TestPaint(t *testing.T) {
//		cases.Run(t, Colors, func(t *testing.T, c Color) {
//			// ...
//		}, cases.WithNames("RED", "BLUE"), cases.WithMode(cases.Exclude))
//	}
//
// A closed hierarchy is described with Node values. Only leaves produce
// cases, in depth-first declaration order. Each leaf type is instantiated by
// a Factory; DefaultFactory fills placeholders (zero numbers, empty strings,
// empty slices and maps) and picks the first declared constant for types
// registered with the enum package.
package cases
