package ir

// Comments holds the comments of a document next to its value tree,
// keyed by value path (see Value.Path). The tree itself carries no
// comments.
//
// A nil *Comments is valid and empty.
type Comments struct {
	// Leading maps a path to the comment lines immediately before the
	// field or element at that path.
	Leading map[string][]string

	// Trailing maps a container path to the comment lines before its
	// closing bracket.
	Trailing map[string][]string

	// Footer holds comment lines after the root value.
	Footer []string
}

// Lines are stored without the leading '#'.

func NewComments() *Comments {
	return &Comments{
		Leading:  map[string][]string{},
		Trailing: map[string][]string{},
	}
}

func (c *Comments) Empty() bool {
	return c == nil || (len(c.Leading) == 0 && len(c.Trailing) == 0 && len(c.Footer) == 0)
}

func (c *Comments) LeadingAt(path string) []string {
	if c == nil {
		return nil
	}
	return c.Leading[path]
}

func (c *Comments) TrailingAt(path string) []string {
	if c == nil {
		return nil
	}
	return c.Trailing[path]
}

func (c *Comments) AddLeading(path string, lines ...string) {
	if c.Leading == nil {
		c.Leading = map[string][]string{}
	}
	c.Leading[path] = append(c.Leading[path], lines...)
}

func (c *Comments) AddTrailing(path string, lines ...string) {
	if c.Trailing == nil {
		c.Trailing = map[string][]string{}
	}
	c.Trailing[path] = append(c.Trailing[path], lines...)
}

func (c *Comments) AddFooter(lines ...string) {
	c.Footer = append(c.Footer, lines...)
}
