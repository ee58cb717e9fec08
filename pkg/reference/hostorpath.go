package reference

// segmentKind narrows what a scanned segment can still be. A segment starts
// as segAny (or segPath when scanning after the first '/') and is forced to
// segHost by an uppercase letter, to segPath by an underscore, or to segIPv6
// by a leading '['. Uppercase and underscore are mutually exclusive.
type segmentKind uint8

const (
	segAny segmentKind = iota
	segHostOrPath
	segHost
	segPath
	segIPv6
)

// segment is the result of one host-or-path scan: the byte length consumed,
// the narrowest kind the bytes admit, and the offset of the byte that forced
// the narrowing (-1 while still ambiguous). The decider is where the error
// must point if the segment is later committed the other way.
type segment struct {
	len     int
	kind    segmentKind
	decider int
}

const maxSegmentLen = NameTotalLengthMax

// scanHostOrPath reads one domain-name or path-component run from the start
// of s, stopping before ':', '/', '@' or end of input. mode is segAny for
// the leading segment of a reference and segPath for later path components.
func scanHostOrPath(s string, mode segmentKind) (segment, *ParseError) {
	seg := segment{kind: mode, decider: -1}
	if len(s) == 0 || isSegmentStop(s[0]) {
		return seg, newParseError(missingKind(mode), 0)
	}
	if s[0] == '[' && mode == segAny {
		n, err := scanIPv6(s)
		if err != nil {
			return seg, err
		}
		return segment{len: n, kind: segIPv6, decider: 0}, nil
	}

	var lastDot, lastDash bool
	underscores := 0 // length of the current '_' run
	i := 0
scan:
	for ; i < len(s); i++ {
		if i >= maxSegmentLen {
			return seg, newParseError(tooLongKind(mode), i)
		}
		c := s[i]
		switch {
		case isLower(c) || isDigit(c):
			lastDot, lastDash, underscores = false, false, 0
		case isUpper(c):
			switch seg.kind {
			case segPath:
				return seg, newParseError(KindPathUppercase, i)
			case segAny, segHostOrPath:
				seg.kind = segHost
				seg.decider = i
			}
			lastDot, lastDash, underscores = false, false, 0
		case c == '_':
			// '_' only occurs in path separators, never in a host
			switch seg.kind {
			case segHost:
				return seg, newParseError(invalidCharKind(mode), i)
			case segAny, segHostOrPath:
				seg.kind = segPath
				if seg.decider < 0 {
					seg.decider = i
				}
			}
			if i == 0 || lastDot || lastDash || underscores >= 2 {
				return seg, newParseError(invalidCharKind(mode), i)
			}
			underscores++
		case c == '.':
			if i == 0 || lastDot || lastDash || underscores > 0 {
				return seg, newParseError(invalidCharKind(mode), i)
			}
			lastDot = true
		case c == '-':
			// dash runs are allowed; a dash may not follow '.' or '_'
			if i == 0 || lastDot || underscores > 0 {
				return seg, newParseError(invalidCharKind(mode), i)
			}
			lastDash = true
		case isSegmentStop(c):
			break scan
		default:
			return seg, newParseError(invalidCharKind(mode), i)
		}
	}
	if lastDot || lastDash || underscores > 0 {
		return seg, newParseError(componentEndKind(mode), i-1)
	}
	seg.len = i
	if seg.kind == segAny {
		seg.kind = segHostOrPath
	}
	return seg, nil
}

// isSegmentStop reports bytes that end a segment and start the next
// production.
func isSegmentStop(c byte) bool {
	return c == ':' || c == '/' || c == '@'
}

func missingKind(mode segmentKind) Kind {
	if mode == segPath {
		return KindPathMissing
	}
	return KindNameMissing
}

func invalidCharKind(mode segmentKind) Kind {
	if mode == segPath {
		return KindPathInvalidChar
	}
	return KindNameInvalidChar
}

func componentEndKind(mode segmentKind) Kind {
	if mode == segPath {
		return KindPathComponentEnd
	}
	return KindNameComponentEnd
}

func tooLongKind(mode segmentKind) Kind {
	if mode == segPath {
		return KindPathTooLong
	}
	return KindNameTooLong
}
