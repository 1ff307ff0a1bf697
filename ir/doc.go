// Package ir provides the in-memory value tree of GBLN documents.
//
// # Overview
//
// Every GBLN document, whether parsed from text, read from an IO file or
// built programmatically, is a tree of *ir.Value. A Value is a tagged
// union whose Type selects the variant:
//
//   - integers: I8Type .. I64Type, U8Type .. U64Type
//   - floats: F32Type, F64Type
//   - StrType: a string with an optional length bound
//   - BoolType, NullType
//   - ObjectType: ordered fields with unique keys
//   - ArrayType: ordered elements
//
// Numbers always carry their width. Signed integers are held as int64,
// unsigned as uint64 and floats as float64; an F32 holds the float64 of a
// float32 so it is exact.
//
// # Creating Values
//
//	n := ir.FromI8(5)
//	s, err := ir.FromBoundedString("abc", 8)
//	obj := ir.NewObject()
//	err = obj.Insert("n", n)
//
// Width-generic constructors check ranges:
//
//	v, err := ir.FromInt(300, ir.I8Type) // IntOutOfRange
//
// # Ownership
//
// The tree is strict: a Value has at most one parent. Insert and Push move
// a child into its container. When they fail, the returned
// *RejectedError carries the child back, still unowned, so the caller
// decides what becomes of it. Inserting a value that already has a parent,
// or an ancestor of the container, is rejected; use Clone to copy.
//
// # Paths
//
// Path returns the location of a value: "" for the root, "a", "a.list[2]",
// with keys that are not plain identifiers quoted. GetPath resolves a
// path. The same paths key the Comments side table that the parser fills
// and the encoder reads.
//
// # Comparison
//
// Equal is strict and is what round trips preserve. Compare orders by
// content only, ignoring widths and bounds. Hash is consistent with Equal.
//
// # Thread Safety
//
// Values are not synchronized. Share them between goroutines only when no
// goroutine mutates them, or Clone per goroutine.
package ir
