package reference

// suffixKind narrows what a colon suffix can still be. After the ambiguous
// leading segment a suffix starts as suffixPortOrTag: digits keep it
// ambiguous, any word byte other than a digit forces suffixTag. After a
// committed name the suffix starts as suffixTag.
type suffixKind uint8

const (
	suffixPortOrTag suffixKind = iota
	suffixPort
	suffixTag
)

// suffix is the result of one port-or-tag scan. firstTagChar is the offset
// of the byte that forced suffixTag, -1 if the bytes still admit a port.
type suffix struct {
	len          int
	kind         suffixKind
	firstTagChar int
}

const (
	maxTagLen  = 128
	maxPortLen = 255
)

// scanPortOrTag reads the run after a ':', stopping before '/', '@' or end
// of input. In suffixTag mode a '/' is an error rather than a stop: a tag
// cannot be followed by more path.
func scanPortOrTag(s string, mode suffixKind) (suffix, *ParseError) {
	sfx := suffix{kind: mode, firstTagChar: -1}
	i := 0
scan:
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
			// admitted by both port and tag
		case isLetter(c) || c == '_':
			if sfx.kind != suffixTag {
				sfx.kind = suffixTag
				sfx.firstTagChar = i
			}
		case c == '.' || c == '-':
			// not a valid first tag byte
			if i == 0 {
				return sfx, newParseError(suffixInvalidCharKind(mode), 0)
			}
			if sfx.kind != suffixTag {
				sfx.kind = suffixTag
				sfx.firstTagChar = i
			}
		case c == '/':
			if mode == suffixTag {
				return sfx, newParseError(KindTagInvalidChar, i)
			}
			break scan
		case c == '@':
			break scan
		default:
			return sfx, newParseError(suffixInvalidCharKind(mode), i)
		}
		if sfx.kind == suffixTag && i >= maxTagLen {
			return sfx, newParseError(KindTagTooLong, i)
		}
		if i >= maxPortLen {
			return sfx, newParseError(KindPortTooLong, i)
		}
	}
	if i == 0 {
		return sfx, newParseError(suffixMissingKind(mode), 0)
	}
	sfx.len = i
	return sfx, nil
}

func suffixMissingKind(mode suffixKind) Kind {
	if mode == suffixTag {
		return KindTagMissing
	}
	return KindPortMissing
}

func suffixInvalidCharKind(mode suffixKind) Kind {
	if mode == suffixTag {
		return KindTagInvalidChar
	}
	return KindPortInvalidChar
}
