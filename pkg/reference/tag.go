package reference

// scanTag reads a tag after a name-terminating ':'. base is the absolute
// offset of the tag in the input.
func scanTag(s string, base int) (int, *ParseError) {
	sfx, err := scanPortOrTag(s, suffixTag)
	if err != nil {
		return 0, err.shift(base)
	}
	return sfx.len, nil
}

// narrowToTag commits an ambiguous colon suffix as a tag. The scan only
// enforces the tag cap once a tag-only byte is seen, so an all-digit suffix
// is re-checked here.
func narrowToTag(sfx suffix, base int) (int, *ParseError) {
	if sfx.len > maxTagLen {
		return 0, newParseError(KindTagTooLong, base+maxTagLen)
	}
	return sfx.len, nil
}
