package reference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDigest(t *testing.T) {
	testcases := []struct {
		input  string
		algLen int
		encLen int
	}{
		{input: "sha256:" + strings.Repeat("a", 64), algLen: 6, encLen: 64},
		{input: "sha512:" + strings.Repeat("b", 128), algLen: 6, encLen: 128},
		{input: "myhash+b64:" + strings.Repeat("0", 32), algLen: 10, encLen: 32},
		{input: "multihash.v1:" + strings.Repeat("f", 40), algLen: 12, encLen: 40},
		{input: "sha-256:" + strings.Repeat("0", 32), algLen: 7, encLen: 32},
	}
	for _, tc := range testcases {
		t.Run(subTestName(tc.input, true), func(t *testing.T) {
			span, err := scanDigest(tc.input, 0)
			require.Nil(t, err)
			assert.Equal(t, tc.algLen, span.algLen, "algLen")
			assert.Equal(t, tc.encLen, span.encLen, "encLen")
		})
	}
}

func TestScanDigest_Errors(t *testing.T) {
	testcases := []struct {
		input  string
		kind   Kind
		offset int
	}{
		{input: "", kind: KindAlgorithmMissing, offset: 0},
		{input: ":beef", kind: KindAlgorithmInvalidChar, offset: 0},
		{input: "6alg:" + strings.Repeat("0", 32), kind: KindAlgorithmInvalidChar, offset: 0},
		{input: "sha+:" + strings.Repeat("0", 32), kind: KindAlgorithmInvalidChar, offset: 4},
		{input: "sha 256:beef", kind: KindAlgorithmInvalidChar, offset: 3},
		{input: "sha256", kind: KindEncodedMissing, offset: 6},
		{input: "sha256:", kind: KindEncodedMissing, offset: 7},
		{input: "sha256:zz", kind: KindEncodedInvalidChar, offset: 7},
		{input: "foo:" + strings.Repeat("a", 30) + "!", kind: KindEncodedInvalidChar, offset: 34},
		{input: "foo:" + strings.Repeat("a", 31), kind: KindEncodedTooShort, offset: 35},
		{input: "foo:" + strings.Repeat("a", 1025), kind: KindEncodedTooLong, offset: 1028},
		{input: "sha256:" + strings.Repeat("a", 63), kind: KindEncodedWrongLength, offset: 69},
		{input: "sha256:" + strings.Repeat("a", 65), kind: KindEncodedWrongLength, offset: 71},
		{input: "sha256:" + strings.Repeat("A", 64), kind: KindEncodedInvalidChar, offset: 7},
		{input: "sha512:" + strings.Repeat("b", 64), kind: KindEncodedWrongLength, offset: 70},
	}
	for _, tc := range testcases {
		t.Run(subTestName(tc.input, false), func(t *testing.T) {
			_, err := scanDigest(tc.input, 0)
			require.NotNil(t, err)
			assert.Equal(t, tc.kind, err.Kind, "kind")
			assert.Equal(t, tc.offset, err.Offset, "offset")
		})
	}

	t.Run("base offset is added", func(t *testing.T) {
		_, err := scanDigest("sha256", 10)
		require.NotNil(t, err)
		assert.Equal(t, 16, err.Offset)
	})
}

func TestDigestAccessors(t *testing.T) {
	encoded := strings.Repeat("a", 64)
	ref, err := Parse("busybox@sha256:" + encoded)
	require.NoError(t, err)
	d, ok := ref.Digest()
	require.True(t, ok)

	assert.Equal(t, "sha256:"+encoded, d.String())
	assert.Equal(t, "sha256", d.Algorithm())
	assert.Equal(t, encoded, d.Encoded())
	assert.Equal(t, []string{"sha256"}, d.AlgorithmComponents())
	assert.Equal(t, "sha256:"+encoded, d.Digest().String())
	assert.NoError(t, d.Validate())
}

func TestDigestValidate_Unregistered(t *testing.T) {
	ref, err := Parse("busybox@myhash+b64:" + strings.Repeat("0", 32))
	require.NoError(t, err)
	d, ok := ref.Digest()
	require.True(t, ok)

	assert.Equal(t, []string{"myhash", "b64"}, d.AlgorithmComponents())
	assert.ErrorIs(t, d.Validate(), ErrDigestUnsupported)
}
