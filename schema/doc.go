// Package schema provides JSON Schema fragments for enumerations.
//
// An enumeration is described as a string schema whose "enum" keyword lists
// the declared constant names in declaration order:
//
//	colors := schema.StringEnum("primary colors", "RED", "GREEN", "BLUE")
//	data, _ := json.Marshal(colors)
//	// {"type":"string","description":"primary colors","enum":["RED","GREEN","BLUE"]}
//
// # Validation
//
// Validate checks a decoded value against the fragment. Enum membership is
// exact, matching the lookup rules of the enum package:
//
//	err := colors.Validate("GREEN") // nil
//	err = colors.Validate("green")  // error: not one of the allowed values
package schema
