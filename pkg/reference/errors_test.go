package reference

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "ReferenceInvalidFormat", KindReferenceInvalidFormat.String())
	assert.Equal(t, "PathUppercase", KindPathUppercase.String())
	assert.Equal(t, "EncodedWrongLength", KindEncodedWrongLength.String())
	assert.Equal(t, "Kind(255)", Kind(255).String())
}

func TestKindSentinel(t *testing.T) {
	testcases := []struct {
		kind Kind
		want error
	}{
		{kind: KindReferenceInvalidFormat, want: ErrReferenceInvalidFormat},
		{kind: KindNameMissing, want: ErrReferenceInvalidFormat},
		{kind: KindNameInvalidChar, want: ErrReferenceInvalidFormat},
		{kind: KindHostInvalidChar, want: ErrReferenceInvalidFormat},
		{kind: KindIPv4BadOctet, want: ErrReferenceInvalidFormat},
		{kind: KindPortInvalidChar, want: ErrReferenceInvalidFormat},
		{kind: KindNameEmpty, want: ErrNameEmpty},
		{kind: KindNameTooLong, want: ErrNameTooLong},
		{kind: KindPathTooLong, want: ErrNameTooLong},
		{kind: KindNameNotCanonical, want: ErrNameNotCanonical},
		{kind: KindPathUppercase, want: ErrNameContainsUppercase},
		{kind: KindIPv6BadColon, want: ErrIPv6BadColon},
		{kind: KindIPv6MissingBracket, want: ErrIPv6MissingClosingBracket},
		{kind: KindTagMissing, want: ErrTagInvalidFormat},
		{kind: KindTagInvalidChar, want: ErrTagInvalidFormat},
		{kind: KindTagTooLong, want: ErrTagInvalidFormat},
		{kind: KindAlgorithmInvalidChar, want: ErrDigestInvalidFormat},
		{kind: KindEncodedInvalidChar, want: ErrDigestInvalidFormat},
		{kind: KindEncodedWrongLength, want: ErrDigestInvalidLength},
		{kind: KindEncodedTooShort, want: ErrDigestInvalidLength},
		{kind: KindAlgorithmUnsupported, want: ErrDigestUnsupported},
	}
	for _, tc := range testcases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.ErrorIs(t, newParseError(tc.kind, 0), tc.want)
		})
	}
}

func TestParseErrorError(t *testing.T) {
	err := newParseError(KindTagTooLong, 130)
	assert.Equal(t, "invalid tag format: TagTooLong at offset 130", err.Error())
	assert.True(t, errors.Is(err, ErrTagInvalidFormat))
}

func TestParseErrorShift(t *testing.T) {
	err := newParseError(KindEncodedMissing, 6).shift(10)
	assert.Equal(t, 16, err.Offset)
}
