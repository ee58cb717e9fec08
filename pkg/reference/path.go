package reference

const maxPathLen = NameTotalLengthMax

// narrowToPath commits an ambiguous leading segment as the first path
// component.
func narrowToPath(seg segment) *ParseError {
	switch seg.kind {
	case segHost:
		// the deciding byte was an uppercase letter
		return newParseError(KindPathUppercase, seg.decider)
	case segIPv6:
		return newParseError(KindPathInvalidChar, 0)
	}
	return nil
}

// scanPathFrom reads a whole path starting at start, which must sit on the
// first byte of a component. It returns the path length including the
// internal slashes.
func scanPathFrom(s string, start int) (int, *ParseError) {
	comp, err := scanHostOrPath(s[start:], segPath)
	if err != nil {
		return 0, err.shift(start)
	}
	return extendPath(s, start, comp.len)
}

// extendPath consumes ("/" component)* after an already-scanned prefix of
// length bytes beginning at start.
func extendPath(s string, start, length int) (int, *ParseError) {
	for {
		pos := start + length
		if pos >= len(s) || s[pos] != '/' {
			return length, nil
		}
		comp, err := scanHostOrPath(s[pos+1:], segPath)
		if err != nil {
			if err.Kind == KindPathMissing {
				// "a//b" and trailing "a/": the previous component ended at
				// a separator
				err.Kind = KindPathComponentEnd
			}
			return 0, err.shift(pos + 1)
		}
		length += 1 + comp.len
		if length > maxPathLen {
			return 0, newParseError(KindPathTooLong, start+maxPathLen)
		}
	}
}
