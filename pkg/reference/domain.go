package reference

// HostKind reports which host production the domain of a reference matched.
type HostKind uint8

const (
	HostNone HostKind = iota
	HostDomainName
	HostIPv4
	HostIPv6
)

func (k HostKind) String() string {
	switch k {
	case HostDomainName:
		return "domain-name"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	default:
		return "none"
	}
}

// narrowToHost commits an ambiguous leading segment as the host of a domain.
// host is the segment text; seg is its scan result.
func narrowToHost(host string, seg segment) (HostKind, *ParseError) {
	switch seg.kind {
	case segIPv6:
		return HostIPv6, nil
	case segPath:
		// the deciding byte (an underscore) never occurs in a host
		return HostNone, newParseError(KindHostInvalidChar, seg.decider)
	}
	if isIPv4Shaped(host) {
		if err := validateIPv4(host); err != nil {
			return HostNone, err
		}
		return HostIPv4, nil
	}
	return HostDomainName, nil
}

// isIPv4Shaped reports whether host is four dot-separated all-digit groups.
// Dotted names with any other group count ("1.2.3") are ordinary domain
// names.
func isIPv4Shaped(host string) bool {
	dots := 0
	for i := 0; i < len(host); i++ {
		switch {
		case host[i] == '.':
			dots++
		case !isDigit(host[i]):
			return false
		}
	}
	return dots == 3
}

// validateIPv4 checks each octet of an IPv4-shaped host: 1-3 digits, value
// at most 255. An out-of-range octet is a hard failure, not a fallback to
// domain-name parsing.
func validateIPv4(host string) *ParseError {
	start, value := 0, 0
	for i := 0; i <= len(host); i++ {
		if i < len(host) && host[i] != '.' {
			value = value*10 + int(host[i]-'0')
			continue
		}
		if i-start > 3 || value > 255 {
			return newParseError(KindIPv4BadOctet, start)
		}
		start, value = i+1, 0
	}
	return nil
}

// narrowToPort commits an ambiguous colon suffix as a port. base is the
// absolute offset of the suffix in the input.
func narrowToPort(sfx suffix, base int) (int, *ParseError) {
	if sfx.kind == suffixTag {
		return 0, newParseError(KindPortInvalidChar, base+sfx.firstTagChar)
	}
	return sfx.len, nil
}
