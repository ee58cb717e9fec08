package reference

// cursor is a forward-only byte offset into an input string. Scanners that
// need lookahead use peek; nothing ever rewinds.
type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

// peek returns the byte under the cursor, or 0 at end of input.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) advance() { c.pos++ }

// runWhile advances over the longest run of bytes matching pred and returns
// its length.
func (c *cursor) runWhile(pred func(byte) bool) int {
	start := c.pos
	for !c.eof() && pred(c.src[c.pos]) {
		c.pos++
	}
	return c.pos - start
}

// ASCII character classes. Any byte >= 0x80 fails every class, so multi-byte
// runes are rejected at their first byte.

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLetter(c byte) bool { return isLower(c) || isUpper(c) }

func isLetterOrDigit(c byte) bool { return isLetter(c) || isDigit(c) }

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
