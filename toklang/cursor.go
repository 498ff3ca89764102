package toklang

// Cursor owns the read position over the runes of a Source. The position
// only ever moves forward; end of input is reported as a missing value,
// never as an error.
type Cursor struct {
	source *Source
	runes  []rune
	offset int
	line   int
	column int
}

func NewCursor(source *Source) *Cursor {
	return &Cursor{
		source: source,
		runes:  []rune(source.Content),
		line:   1,
		column: 1,
	}
}

// Peek returns the rune at the current position without advancing.
func (c *Cursor) Peek() (rune, bool) {
	if c.offset >= len(c.runes) {
		return 0, false
	}
	return c.runes[c.offset], true
}

// PeekAt returns the rune at the given lookahead distance from the current
// position. PeekAt(0) is Peek.
func (c *Cursor) PeekAt(offset int) (rune, bool) {
	idx := c.offset + offset
	if idx < 0 || idx >= len(c.runes) {
		return 0, false
	}
	return c.runes[idx], true
}

// Advance returns the rune at the current position and moves past it. At
// end of input it reports false and the position does not move.
func (c *Cursor) Advance() (rune, bool) {
	if c.offset >= len(c.runes) {
		return 0, false
	}
	r := c.runes[c.offset]
	c.offset++
	if r == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return r, true
}

// Position is the current rune offset, in [0, input length].
func (c *Cursor) Position() int {
	return c.offset
}

func (c *Cursor) Pos() Pos {
	return Pos{
		Source: c.source,
		Offset: c.offset,
		Line:   c.line,
		Column: c.column,
	}
}
