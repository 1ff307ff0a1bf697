// Package parse parses GBLN text into ir value trees.
//
// # Usage
//
//	v, err := parse.Parse(data)
//
//	// keep comments, for rewriting a source file
//	comments := ir.NewComments()
//	v, err = parse.Parse(data, parse.ParseComments(comments))
//
// A document is exactly one value followed by the end of input. Parsing
// is strict: duplicate keys, trailing commas, values out of range for
// their declared width and strings longer than their bound are all
// errors, and an error never comes with a partial tree.
//
// Errors are *diag.Diagnostic values carrying the position of the
// offending token and, where one is certain, a suggestion:
//
//	v, err := parse.ParseString(`{n: 200i8}`)
//	// 1:5: integer out of range: 200 does not fit i8
//	//   hint: did you mean a wider integer width such as i16?
//
// # Widths
//
// A number without suffix is an I64, or a U64 when it is too large for
// an I64, and an F64 when it has a fraction or an exponent. A suffix
// selects the width explicitly: 5i8, 7u32, 1.5f32. A string may declare
// a bound on its length in code points: "abc"s8.
package parse
