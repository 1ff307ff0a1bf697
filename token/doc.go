// Package token provides tokenization of GBLN documents.
//
// A Tokenizer makes one forward pass over a byte slice and yields the
// punctuation tokens { } [ ] : , plus strings, numbers, the keywords true,
// false and null, bare identifiers (legal only as object keys) and a
// final TEOF.
//
// A suffix written directly after a number or a closing quote, as in
// 5i8, 1.5f32 or "abc"s8, is kept in Token.Suffix; the parser decides
// what it means.
//
// Comments run from '#' to the end of the line. They are not tokens:
// each token carries the comments that precede it in Token.Comments, and
// the TEOF token carries any comments at the end of the document.
//
// The package also provides the string quoting used by the encoder
// (Quote, NeedsQuote) and the unquoting used for paths.
package token
