package reference

import (
	"errors"
	"fmt"
)

// Sentinel errors, matchable with errors.Is. The wording of the first group
// follows the conventional distribution error strings so that callers and
// corpora keyed on those messages keep working.
var (
	// ErrReferenceInvalidFormat is the catch-all structural failure: a byte
	// that no production at the current position admits.
	ErrReferenceInvalidFormat = errors.New("invalid reference format")

	// ErrTagInvalidFormat means a tag is present but violates the tag
	// grammar, including the 128 character cap.
	ErrTagInvalidFormat = errors.New("invalid tag format")

	// ErrDigestInvalidFormat means the text after '@' violates the digest
	// grammar.
	ErrDigestInvalidFormat = errors.New("invalid digest format")

	// ErrDigestInvalidLength means the encoded section has a length the
	// declared (or any) algorithm cannot produce.
	ErrDigestInvalidLength = errors.New("invalid checksum digest length")

	// ErrDigestUnsupported means the digest algorithm is well formed but not
	// registered with the runtime, so its output cannot be verified.
	ErrDigestUnsupported = errors.New("unsupported digest algorithm")

	// ErrNameContainsUppercase rejects uppercase letters in the repository
	// path. Hosts may be uppercase, paths may not.
	ErrNameContainsUppercase = errors.New("repository name must be lowercase")

	// ErrNameEmpty rejects the empty input.
	ErrNameEmpty = errors.New("repository name must have at least one component")

	// ErrNameTooLong rejects names longer than NameTotalLengthMax bytes.
	ErrNameTooLong = fmt.Errorf("repository name must not be more than %d characters", NameTotalLengthMax)

	// ErrNameNotCanonical is returned by ParseCanonical when the input has
	// no digest.
	ErrNameNotCanonical = errors.New("repository name must be canonical")
)

// IPv6 failures are distinguishable from each other and from the generic
// format error.
var (
	ErrIPv6InvalidChar           = errors.New("invalid character in ipv6 address")
	ErrIPv6AddressTooLong        = errors.New("ipv6 address too long")
	ErrIPv6BadColon              = errors.New("unexpected colon in ipv6 address")
	ErrIPv6TooManyHexDigits      = errors.New("at most 4 hex digits allowed per ipv6 group")
	ErrIPv6TooManyGroups         = errors.New("too many groups in ipv6 address")
	ErrIPv6TooFewGroups          = errors.New("too few groups in ipv6 address")
	ErrIPv6MissingClosingBracket = errors.New("missing closing bracket in ipv6 address")
)

// Kind names the production that failed. Kinds are finer grained than the
// sentinel errors; every Kind maps onto exactly one sentinel.
type Kind uint8

const (
	KindReferenceInvalidFormat Kind = iota

	KindNameEmpty
	KindNameMissing
	KindNameInvalidChar
	KindNameComponentEnd
	KindNameTooLong
	KindNameNotCanonical

	KindHostInvalidChar
	KindIPv4BadOctet

	KindIPv6InvalidChar
	KindIPv6TooLong
	KindIPv6BadColon
	KindIPv6TooManyHexDigits
	KindIPv6TooManyGroups
	KindIPv6TooFewGroups
	KindIPv6MissingBracket

	KindPathMissing
	KindPathInvalidChar
	KindPathComponentEnd
	KindPathUppercase
	KindPathTooLong

	KindPortMissing
	KindPortInvalidChar
	KindPortTooLong

	KindTagMissing
	KindTagInvalidChar
	KindTagTooLong

	KindAlgorithmMissing
	KindAlgorithmInvalidChar
	KindAlgorithmTooLong
	KindAlgorithmUnsupported
	KindEncodedMissing
	KindEncodedInvalidChar
	KindEncodedTooShort
	KindEncodedTooLong
	KindEncodedWrongLength
)

var kindNames = map[Kind]string{
	KindReferenceInvalidFormat: "ReferenceInvalidFormat",
	KindNameEmpty:              "NameEmpty",
	KindNameMissing:            "NameMissing",
	KindNameInvalidChar:        "NameInvalidChar",
	KindNameComponentEnd:       "NameComponentEnd",
	KindNameTooLong:            "NameTooLong",
	KindNameNotCanonical:       "NameNotCanonical",
	KindHostInvalidChar:        "HostInvalidChar",
	KindIPv4BadOctet:           "IPv4BadOctet",
	KindIPv6InvalidChar:        "IPv6InvalidChar",
	KindIPv6TooLong:            "IPv6TooLong",
	KindIPv6BadColon:           "IPv6BadColon",
	KindIPv6TooManyHexDigits:   "IPv6TooManyHexDigits",
	KindIPv6TooManyGroups:      "IPv6TooManyGroups",
	KindIPv6TooFewGroups:       "IPv6TooFewGroups",
	KindIPv6MissingBracket:     "IPv6MissingBracket",
	KindPathMissing:            "PathMissing",
	KindPathInvalidChar:        "PathInvalidChar",
	KindPathComponentEnd:       "PathComponentEnd",
	KindPathUppercase:          "PathUppercase",
	KindPathTooLong:            "PathTooLong",
	KindPortMissing:            "PortMissing",
	KindPortInvalidChar:        "PortInvalidChar",
	KindPortTooLong:            "PortTooLong",
	KindTagMissing:             "TagMissing",
	KindTagInvalidChar:         "TagInvalidChar",
	KindTagTooLong:             "TagTooLong",
	KindAlgorithmMissing:       "AlgorithmMissing",
	KindAlgorithmInvalidChar:   "AlgorithmInvalidChar",
	KindAlgorithmTooLong:       "AlgorithmTooLong",
	KindAlgorithmUnsupported:   "AlgorithmUnsupported",
	KindEncodedMissing:         "EncodedMissing",
	KindEncodedInvalidChar:     "EncodedInvalidChar",
	KindEncodedTooShort:        "EncodedTooShort",
	KindEncodedTooLong:         "EncodedTooLong",
	KindEncodedWrongLength:     "EncodedWrongLength",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// sentinel returns the coarse error this kind belongs to.
func (k Kind) sentinel() error {
	switch k {
	case KindNameEmpty:
		return ErrNameEmpty
	case KindNameTooLong, KindPathTooLong:
		return ErrNameTooLong
	case KindNameNotCanonical:
		return ErrNameNotCanonical
	case KindPathUppercase:
		return ErrNameContainsUppercase
	case KindIPv6InvalidChar:
		return ErrIPv6InvalidChar
	case KindIPv6TooLong:
		return ErrIPv6AddressTooLong
	case KindIPv6BadColon:
		return ErrIPv6BadColon
	case KindIPv6TooManyHexDigits:
		return ErrIPv6TooManyHexDigits
	case KindIPv6TooManyGroups:
		return ErrIPv6TooManyGroups
	case KindIPv6TooFewGroups:
		return ErrIPv6TooFewGroups
	case KindIPv6MissingBracket:
		return ErrIPv6MissingClosingBracket
	case KindTagMissing, KindTagInvalidChar, KindTagTooLong:
		return ErrTagInvalidFormat
	case KindAlgorithmMissing, KindAlgorithmInvalidChar, KindAlgorithmTooLong,
		KindEncodedMissing, KindEncodedInvalidChar:
		return ErrDigestInvalidFormat
	case KindEncodedTooShort, KindEncodedTooLong, KindEncodedWrongLength:
		return ErrDigestInvalidLength
	case KindAlgorithmUnsupported:
		return ErrDigestUnsupported
	default:
		return ErrReferenceInvalidFormat
	}
}

// ParseError reports the first grammar violation in an input: which
// production failed and the byte offset of the offending byte. It unwraps to
// one of the package sentinels.
type ParseError struct {
	Kind   Kind
	Offset int
}

func newParseError(kind Kind, offset int) *ParseError {
	return &ParseError{Kind: kind, Offset: offset}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d", e.Kind.sentinel(), e.Kind, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

// shift rebases a scanner-relative offset onto the full input.
func (e *ParseError) shift(base int) *ParseError {
	e.Offset += base
	return e
}
