package reference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanPathFrom(t *testing.T) {
	testcases := []struct {
		input string
		start int
		len   int
	}{
		{input: "library/busybox", start: 0, len: 15},
		{input: "docker.io/library/busybox", start: 10, len: 15},
		{input: "x/a/b/c:tag", start: 2, len: 5},
		{input: "x/serving@sha", start: 2, len: 7},
		{input: "x/tensor__flow", start: 2, len: 12},
	}
	for _, tc := range testcases {
		t.Run(subTestName(tc.input, true), func(t *testing.T) {
			n, err := scanPathFrom(tc.input, tc.start)
			require.Nil(t, err)
			assert.Equal(t, tc.len, n)
		})
	}
}

func TestScanPathFrom_Errors(t *testing.T) {
	testcases := []struct {
		input  string
		start  int
		kind   Kind
		offset int
	}{
		{input: "x/", start: 2, kind: KindPathMissing, offset: 2},
		{input: "x/:tag", start: 2, kind: KindPathMissing, offset: 2},
		{input: "x/a//b", start: 2, kind: KindPathComponentEnd, offset: 4},
		{input: "x/a/b/", start: 2, kind: KindPathComponentEnd, offset: 6},
		{input: "x/a/Bad", start: 2, kind: KindPathUppercase, offset: 4},
		{input: "x/a/b-/c", start: 2, kind: KindPathComponentEnd, offset: 5},
	}
	for _, tc := range testcases {
		t.Run(subTestName(tc.input, false), func(t *testing.T) {
			_, err := scanPathFrom(tc.input, tc.start)
			require.NotNil(t, err)
			assert.Equal(t, tc.kind, err.Kind, "kind")
			assert.Equal(t, tc.offset, err.Offset, "offset")
		})
	}

	t.Run("path length is capped", func(t *testing.T) {
		input := strings.Repeat("a/", 200) + "a"
		_, err := scanPathFrom(input, 0)
		require.NotNil(t, err)
		assert.Equal(t, KindPathTooLong, err.Kind)
	})
}

func TestNarrowToPath(t *testing.T) {
	seg, err := scanHostOrPath("Upper", segAny)
	require.Nil(t, err)
	narrowErr := narrowToPath(seg)
	require.NotNil(t, narrowErr)
	assert.Equal(t, KindPathUppercase, narrowErr.Kind)
	assert.Equal(t, 0, narrowErr.Offset)

	seg, err = scanHostOrPath("[::1]", segAny)
	require.Nil(t, err)
	narrowErr = narrowToPath(seg)
	require.NotNil(t, narrowErr)
	assert.Equal(t, KindPathInvalidChar, narrowErr.Kind)

	seg, err = scanHostOrPath("busybox", segAny)
	require.Nil(t, err)
	assert.Nil(t, narrowToPath(seg))
}
