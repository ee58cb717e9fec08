package reference

import (
	// register the verifiable digest algorithms
	_ "crypto/sha256"
	_ "crypto/sha512"
	"strings"

	"github.com/opencontainers/go-digest"
)

const (
	maxAlgorithmLen = 255
	minEncodedLen   = 32
	maxEncodedLen   = 1024
)

// Digest is the digest section of a reference, a view over the input text
// after the '@'.
type Digest struct {
	src    string // "algorithm:encoded"
	algLen int
}

func (d Digest) String() string { return d.src }

// Algorithm is the text before the ':', e.g. "sha256" or "sha512+b64".
func (d Digest) Algorithm() string { return d.src[:d.algLen] }

// AlgorithmComponents splits the algorithm on its '+', '.', '_' and '-'
// separators.
func (d Digest) AlgorithmComponents() []string {
	return strings.FieldsFunc(d.Algorithm(), isAlgorithmSeparator)
}

// Encoded is the hex text after the ':'.
func (d Digest) Encoded() string { return d.src[d.algLen+1:] }

// Digest returns the go-digest rendering of d. The algorithm is not checked
// against the registry here; use Validate for that.
func (d Digest) Digest() digest.Digest { return digest.Digest(d.src) }

// Validate reports whether the algorithm is registered with the runtime.
// Parsing admits any grammar-level algorithm; content addressing needs one
// whose output the runtime can recompute.
func (d Digest) Validate() error {
	if !digest.Algorithm(d.Algorithm()).Available() {
		return newParseError(KindAlgorithmUnsupported, 0)
	}
	return nil
}

func isAlgorithmSeparator(r rune) bool {
	return r == '+' || r == '.' || r == '_' || r == '-'
}

// digestSpan is the scanned shape of a digest: algorithm and encoded byte
// lengths, the ':' between them implied.
type digestSpan struct {
	algLen int
	encLen int
}

// scanDigest reads algorithm ':' encoded from s, the text after '@'. base
// is the absolute offset of s in the reference. The whole remainder of the
// input must be consumed.
func scanDigest(s string, base int) (digestSpan, *ParseError) {
	var span digestSpan
	if len(s) == 0 {
		return span, newParseError(KindAlgorithmMissing, base)
	}
	cur := cursor{src: s}
	for {
		if !isLetter(cur.peek()) {
			return span, newParseError(KindAlgorithmInvalidChar, base+cur.pos)
		}
		cur.advance()
		cur.runWhile(isLetterOrDigit)
		if c := cur.peek(); !cur.eof() && isAlgorithmSeparator(rune(c)) {
			cur.advance()
			continue
		}
		break
	}
	span.algLen = cur.pos
	if span.algLen > maxAlgorithmLen {
		return span, newParseError(KindAlgorithmTooLong, base+maxAlgorithmLen)
	}
	if cur.eof() {
		return span, newParseError(KindEncodedMissing, base+cur.pos)
	}
	if cur.peek() != ':' {
		return span, newParseError(KindAlgorithmInvalidChar, base+cur.pos)
	}
	cur.advance()

	encStart := cur.pos
	span.encLen = cur.runWhile(isHexDigit)
	if !cur.eof() {
		return span, newParseError(KindEncodedInvalidChar, base+cur.pos)
	}
	switch {
	case span.encLen == 0:
		return span, newParseError(KindEncodedMissing, base+encStart)
	case span.encLen > maxEncodedLen:
		return span, newParseError(KindEncodedTooLong, base+encStart+maxEncodedLen)
	}

	algorithm, encoded := s[:span.algLen], s[encStart:]
	if a := digest.Algorithm(algorithm); a.Available() {
		if len(encoded) != a.Size()*2 {
			return span, newParseError(KindEncodedWrongLength, base+encStart+span.encLen-1)
		}
		// registered algorithms hash to lowercase hex
		if i := strings.IndexFunc(encoded, isUpperHexRune); i >= 0 {
			return span, newParseError(KindEncodedInvalidChar, base+encStart+i)
		}
	} else if span.encLen < minEncodedLen {
		return span, newParseError(KindEncodedTooShort, base+encStart+span.encLen)
	}
	return span, nil
}

func isUpperHexRune(r rune) bool { return 'A' <= r && r <= 'F' }
