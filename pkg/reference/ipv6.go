package reference

// scanIPv6 reads a bracketed IPv6 address from the start of s; s[0] must be
// '['. It returns the byte length consumed including both brackets.
//
// The address is up to 8 groups of 1-4 hex digits separated by ':', with at
// most one '::' elision standing in for the missing groups. Zone suffixes
// and IPv4-mapped tails are not admitted.
func scanIPv6(s string) (int, *ParseError) {
	var (
		digits    int  // hex digits in the current group
		colons    int  // ':' seen so far
		elided    bool // a '::' has occurred
		lastColon bool
		closed    bool
	)
	i := 1
scan:
	for ; i < len(s); i++ {
		if i >= maxSegmentLen {
			return 0, newParseError(KindIPv6TooLong, i)
		}
		c := s[i]
		switch {
		case isHexDigit(c):
			digits++
			if digits > 4 {
				return 0, newParseError(KindIPv6TooManyHexDigits, i)
			}
			lastColon = false
		case c == ':':
			if lastColon {
				if elided {
					// ':::' or a second '::'
					return 0, newParseError(KindIPv6BadColon, i)
				}
				elided = true
			}
			colons++
			if colons > 7 {
				return 0, newParseError(KindIPv6TooManyGroups, i)
			}
			digits = 0
			lastColon = true
		case c == ']':
			closed = true
			break scan
		case c == '/':
			return 0, newParseError(KindIPv6MissingBracket, i)
		default:
			return 0, newParseError(KindIPv6InvalidChar, i)
		}
	}
	if !closed {
		return 0, newParseError(KindIPv6MissingBracket, i)
	}
	// 8 groups need 7 separating colons; anything shorter needs an elision
	if colons < 7 && !elided {
		return 0, newParseError(KindIPv6TooFewGroups, i)
	}
	return i + 1, nil
}
