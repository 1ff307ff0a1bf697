// Package format names the text notations the tools read and write and
// the on-disk shapes of GBLN files.
//
// A GBLN file has one of three shapes, told apart by suffix:
//
//	name.gbln        pretty source text
//	name.io.gbln     compact text
//	name.io.gbln.xz  compact text compressed with XZ
//
// Readers do not trust the suffix; see HasMagic.
package format
