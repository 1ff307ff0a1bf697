package main

import (
	"sort"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// lineIndex maps byte offsets of a document to protocol positions, whose
// characters count UTF-16 code units.
type lineIndex struct {
	content string
	starts  []int
}

func newLineIndex(content string) *lineIndex {
	li := &lineIndex{content: content, starts: []int{0}}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			li.starts = append(li.starts, i+1)
		}
	}
	return li
}

func (li *lineIndex) position(off int) protocol.Position {
	off = min(max(off, 0), len(li.content))
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > off }) - 1
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(li.content[li.starts[line]:off])),
	}
}

func (li *lineIndex) offset(p protocol.Position) int {
	if int(p.Line) >= len(li.starts) {
		return len(li.content)
	}
	off := li.starts[p.Line]
	for n := 0; n < int(p.Character) && off < len(li.content); {
		r, size := utf8.DecodeRuneInString(li.content[off:])
		if r == '\n' {
			break
		}
		n += runeUTF16(r)
		off += size
	}
	return off
}

func (li *lineIndex) span(off, n int) protocol.Range {
	return protocol.Range{Start: li.position(off), End: li.position(off + n)}
}

func (li *lineIndex) all() protocol.Range {
	return li.span(0, len(li.content))
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeUTF16(r)
	}
	return n
}

func runeUTF16(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
