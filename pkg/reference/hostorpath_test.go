package reference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanHostOrPath(t *testing.T) {
	testcases := []struct {
		input   string
		mode    segmentKind
		len     int
		kind    segmentKind
		decider int
	}{
		{input: "example.com/rest", mode: segAny, len: 11, kind: segHostOrPath, decider: -1},
		{input: "busybox", mode: segAny, len: 7, kind: segHostOrPath, decider: -1},
		{input: "x:5000", mode: segAny, len: 1, kind: segHostOrPath, decider: -1},
		{input: "Example.com:443", mode: segAny, len: 11, kind: segHost, decider: 0},
		{input: "foo_bar/x", mode: segAny, len: 7, kind: segPath, decider: 3},
		{input: "a__b@", mode: segAny, len: 4, kind: segPath, decider: 1},
		{input: "xn--y.example", mode: segAny, len: 13, kind: segHostOrPath, decider: -1},
		{input: "a--b", mode: segAny, len: 4, kind: segHostOrPath, decider: -1},
		{input: "[::1]:5000", mode: segAny, len: 5, kind: segIPv6, decider: 0},
		{input: "serving", mode: segPath, len: 7, kind: segPath, decider: -1},
	}
	for _, tc := range testcases {
		t.Run(subTestName(tc.input, true), func(t *testing.T) {
			seg, err := scanHostOrPath(tc.input, tc.mode)
			require.Nil(t, err)
			assert.Equal(t, tc.len, seg.len, "len")
			assert.Equal(t, tc.kind, seg.kind, "kind")
			assert.Equal(t, tc.decider, seg.decider, "decider")
		})
	}
}

func TestScanHostOrPath_Errors(t *testing.T) {
	testcases := []struct {
		input  string
		mode   segmentKind
		kind   Kind
		offset int
	}{
		{input: "", mode: segAny, kind: KindNameMissing, offset: 0},
		{input: ":tag", mode: segAny, kind: KindNameMissing, offset: 0},
		{input: "/path", mode: segAny, kind: KindNameMissing, offset: 0},
		{input: "-a", mode: segAny, kind: KindNameInvalidChar, offset: 0},
		{input: ".a", mode: segAny, kind: KindNameInvalidChar, offset: 0},
		{input: "_a", mode: segAny, kind: KindNameInvalidChar, offset: 0},
		{input: "a..b", mode: segAny, kind: KindNameInvalidChar, offset: 2},
		{input: "a.-b", mode: segAny, kind: KindNameInvalidChar, offset: 2},
		{input: "a-.b", mode: segAny, kind: KindNameInvalidChar, offset: 2},
		{input: "a_-b", mode: segAny, kind: KindNameInvalidChar, offset: 2},
		{input: "a_.b", mode: segAny, kind: KindNameInvalidChar, offset: 2},
		{input: "a___b", mode: segAny, kind: KindNameInvalidChar, offset: 3},
		{input: "a-", mode: segAny, kind: KindNameComponentEnd, offset: 1},
		{input: "a_:x", mode: segAny, kind: KindNameComponentEnd, offset: 1},
		{input: "a%b", mode: segAny, kind: KindNameInvalidChar, offset: 1},
		{input: "A_b", mode: segAny, kind: KindNameInvalidChar, offset: 1},
		{input: "a_B", mode: segAny, kind: KindPathUppercase, offset: 2},
		{input: "fooBar", mode: segPath, kind: KindPathUppercase, offset: 3},
		{input: "[::1]", mode: segPath, kind: KindPathInvalidChar, offset: 0},
		{input: "", mode: segPath, kind: KindPathMissing, offset: 0},
		{input: strings.Repeat("a", 256), mode: segAny, kind: KindNameTooLong, offset: 255},
	}
	for _, tc := range testcases {
		t.Run(subTestName(tc.input, false), func(t *testing.T) {
			_, err := scanHostOrPath(tc.input, tc.mode)
			require.NotNil(t, err)
			assert.Equal(t, tc.kind, err.Kind, "kind")
			assert.Equal(t, tc.offset, err.Offset, "offset")
		})
	}
}
