package reference

import (
	"strings"

	"github.com/opencontainers/go-digest"
)

// NameTotalLengthMax is the maximum byte length of a reference name, the
// domain and path together.
const NameTotalLengthMax = 255

// Reference is a parsed image reference. Accessors return sub-slices of the
// original input; a Reference holds no copies, only spans. The zero value is
// not a valid reference; construct one with Parse.
type Reference struct {
	src      string
	hostKind HostKind
	hostLen  uint8
	portLen  uint8
	pathLen  uint8
	tagLen   uint8
	algLen   uint8
	encLen   uint16
}

// Parse parses s as an image reference, "name[:tag][@digest]", in one
// forward pass. The returned error is a *ParseError carrying the byte
// offset of the first violation and unwrapping to a package sentinel.
func Parse(s string) (Reference, error) {
	r, err := parse(s)
	if err != nil {
		return Reference{}, err
	}
	return r, nil
}

// ParseCanonical parses s and additionally requires a digest whose algorithm
// is registered, i.e. a content-addressed reference. A digestless input
// fails with ErrNameNotCanonical.
func ParseCanonical(s string) (Canonical, error) {
	r, err := parse(s)
	if err != nil {
		return Canonical{}, err
	}
	d, ok := r.Digest()
	if !ok {
		return Canonical{}, newParseError(KindNameNotCanonical, len(s))
	}
	if !digest.Algorithm(d.Algorithm()).Available() {
		return Canonical{}, newParseError(KindAlgorithmUnsupported, r.digestStart())
	}
	return Canonical{Reference: r}, nil
}

func parse(s string) (Reference, *ParseError) {
	r := Reference{src: s}
	if s == "" {
		return r, newParseError(KindNameEmpty, 0)
	}

	left, err := scanHostOrPath(s, segAny)
	if err != nil {
		return r, err
	}
	pos := left.len

	// optional colon suffix, still ambiguous between port and tag
	var right *suffix
	rightStart := -1
	if pos < len(s) && s[pos] == ':' {
		rightStart = pos + 1
		sfx, err := scanPortOrTag(s[rightStart:], suffixPortOrTag)
		if err != nil {
			return r, err.shift(rightStart)
		}
		right = &sfx
		pos = rightStart + sfx.len
	}

	// the byte after the suffix decides what the ambiguous pieces were
	switch {
	case pos == len(s) || s[pos] == '@':
		// no '/': the leading segment is the whole path and the colon
		// suffix, if any, was a tag
		if err := narrowToPath(left); err != nil {
			return r, err
		}
		r.pathLen = uint8(left.len)
		if right != nil {
			n, err := narrowToTag(*right, rightStart)
			if err != nil {
				return r, err
			}
			r.tagLen = uint8(n)
		}
	case s[pos] != '/':
		return r, newParseError(KindHostInvalidChar, pos)
	case right != nil:
		// host:port/...: both sides of the colon belong to the domain
		hk, err := narrowToHost(s[:left.len], left)
		if err != nil {
			return r, err
		}
		n, err := narrowToPort(*right, rightStart)
		if err != nil {
			return r, err
		}
		r.hostKind, r.hostLen, r.portLen = hk, uint8(left.len), uint8(n)
		plen, err := scanPathFrom(s, pos+1)
		if err != nil {
			return r, err
		}
		r.pathLen = uint8(plen)
		pos += 1 + plen
	case isDomainSegment(s[:left.len], left):
		hk, err := narrowToHost(s[:left.len], left)
		if err != nil {
			return r, err
		}
		r.hostKind, r.hostLen = hk, uint8(left.len)
		plen, err := scanPathFrom(s, pos+1)
		if err != nil {
			return r, err
		}
		r.pathLen = uint8(plen)
		pos += 1 + plen
	default:
		// "foo/bar": no domain, the leading segment starts the path
		if err := narrowToPath(left); err != nil {
			return r, err
		}
		plen, err := extendPath(s, 0, left.len)
		if err != nil {
			return r, err
		}
		r.pathLen = uint8(plen)
		pos = plen
	}

	if pos < len(s) && s[pos] == ':' {
		n, err := scanTag(s[pos+1:], pos+1)
		if err != nil {
			return r, err
		}
		r.tagLen = uint8(n)
		pos += 1 + n
	}
	if pos < len(s) && s[pos] == '@' {
		span, err := scanDigest(s[pos+1:], pos+1)
		if err != nil {
			return r, err
		}
		r.algLen = uint8(span.algLen)
		r.encLen = uint16(span.encLen)
		pos += 1 + span.algLen + 1 + span.encLen
	}
	if pos != len(s) {
		return r, newParseError(KindReferenceInvalidFormat, pos)
	}
	if r.nameLen() > NameTotalLengthMax {
		return r, newParseError(KindNameTooLong, NameTotalLengthMax)
	}
	return r, nil
}

// isDomainSegment decides a leading segment that is followed by '/' but
// carried no port: dotted names, the localhost literal and bracketed IPv6
// hosts are domains; anything else starts the path, so "foo/bar" is a
// two-component repository with no registry.
func isDomainSegment(seg string, left segment) bool {
	if left.kind == segIPv6 {
		return true
	}
	if seg == "localhost" {
		return true
	}
	return strings.Contains(seg, ".")
}

func (r Reference) String() string { return r.src }

// Name is the domain and path joined, without the tag or digest.
func (r Reference) Name() string { return r.src[:r.nameLen()] }

// Domain returns the registry host with its optional port. ok is false when
// the reference carries no domain; nothing is defaulted in its place.
func (r Reference) Domain() (domain string, ok bool) {
	if r.hostLen == 0 {
		return "", false
	}
	return r.src[:r.domainLen()], true
}

// Host is the domain without its port.
func (r Reference) Host() (host string, ok bool) {
	if r.hostLen == 0 {
		return "", false
	}
	return r.src[:r.hostLen], true
}

// HostKind reports which host production the domain matched; HostNone when
// there is no domain.
func (r Reference) HostKind() HostKind { return r.hostKind }

// Port is the domain's port digits, without the ':'.
func (r Reference) Port() (port string, ok bool) {
	if r.portLen == 0 {
		return "", false
	}
	start := int(r.hostLen) + 1
	return r.src[start : start+int(r.portLen)], true
}

// Path is the repository path, one or more '/'-joined components.
func (r Reference) Path() string {
	start := r.pathStart()
	return r.src[start : start+int(r.pathLen)]
}

// PathComponents splits the path on its slashes. This is the only accessor
// that allocates.
func (r Reference) PathComponents() []string {
	return strings.Split(r.Path(), "/")
}

// Tag returns the tag after the name-terminating ':'. ok is false when the
// reference has no tag.
func (r Reference) Tag() (tag string, ok bool) {
	if r.tagLen == 0 {
		return "", false
	}
	start := r.nameLen() + 1
	return r.src[start : start+int(r.tagLen)], true
}

// Digest returns the digest after the '@'. ok is false when the reference
// has no digest.
func (r Reference) Digest() (Digest, bool) {
	if r.encLen == 0 {
		return Digest{}, false
	}
	return Digest{src: r.src[r.digestStart():], algLen: int(r.algLen)}, true
}

func (r Reference) domainLen() int {
	n := int(r.hostLen)
	if r.portLen > 0 {
		n += 1 + int(r.portLen)
	}
	return n
}

func (r Reference) pathStart() int {
	if r.hostLen == 0 {
		return 0
	}
	return r.domainLen() + 1
}

func (r Reference) nameLen() int {
	return r.pathStart() + int(r.pathLen)
}

func (r Reference) digestStart() int {
	n := r.nameLen()
	if r.tagLen > 0 {
		n += 1 + int(r.tagLen)
	}
	return n + 1
}

// Canonical is a reference whose digest is present and verifiable.
type Canonical struct {
	Reference
}

// Digest returns the content-addressing digest; unlike Reference.Digest it
// cannot be absent.
func (c Canonical) Digest() Digest {
	d, _ := c.Reference.Digest()
	return d
}
