// Package encode serializes GBLN value trees to text.
//
// # Usage
//
//	// compact, as written to IO files
//	s := encode.Compact(v)
//
//	// pretty, as written to source files
//	s = encode.Pretty(v, config.Source())
//
//	// streaming, with comments captured by the parser
//	err := encode.Encode(v, w,
//	    encode.EncodeConfig(config.Source()),
//	    encode.EncodeComments(comments))
//
// # Widths
//
// Numbers carry a suffix only where the parser would not infer their
// width: I64 and F64 are never suffixed, a U64 only when it fits in an
// I64, and every other width always is. Floats always print with a '.',
// an exponent or as inf/nan, so they read back as floats. Bounded strings
// carry their bound as "..."sN.
//
// Encoding a well formed tree never fails; Encode returns only the errors
// of the writer.
//
// # Related Packages
//
//   - github.com/gbln-format/go-gbln/ir - value trees
//   - github.com/gbln-format/go-gbln/parse - text to value trees
package encode
