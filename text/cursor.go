package text

// Cursor walks the code points of a text. Paired surrogates yield one
// supplementary code point; an unpaired surrogate yields its own value. A
// Cursor reads the text in place and can be restarted with Reset.
type Cursor struct {
	v   view
	pos int
}

// Next returns the next code point, or false once the text is exhausted.
func (c *Cursor) Next() (rune, bool) {
	if c.pos >= c.v.n {
		return 0, false
	}

	cp, w := c.v.codePointAt(c.pos)
	c.pos += w

	return cp, true
}

// Pos returns the unit index of the next code point.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining reports whether Next has more code points to return.
func (c *Cursor) Remaining() bool {
	return c.pos < c.v.n
}

// Reset rewinds the cursor to the first code point.
func (c *Cursor) Reset() {
	c.pos = 0
}
