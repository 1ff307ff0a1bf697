package parse

import (
	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"
)

// DefaultMaxDepth is the nesting limit used unless MaxDepth is given.
const DefaultMaxDepth = 512

type parseOpts struct {
	comments     *ir.Comments
	positions    map[*ir.Value]diag.Pos
	maxDepth     int
	maxStringLen int
}

type ParseOption func(*parseOpts)

// ParseComments retains the comments of the document in c, keyed by the
// path of the value they precede.
func ParseComments(c *ir.Comments) ParseOption {
	return func(o *parseOpts) { o.comments = c }
}

// ParsePositions records the position of every parsed value in m.
func ParsePositions(m map[*ir.Value]diag.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// MaxDepth limits the nesting of objects and arrays.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// MaxStringLen limits the length of strings that declare no bound of
// their own. The resulting values stay unbounded.
func MaxStringLen(n int) ParseOption {
	return func(o *parseOpts) { o.maxStringLen = n }
}
