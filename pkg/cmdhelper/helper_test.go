package cmdhelper_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SKalt/container-image-dist-ref/pkg/cmdhelper"
)

func TestFprintf(t *testing.T) {
	buf := &bytes.Buffer{}
	cmdhelper.Fprintf(buf, "a\tb")
	cmdhelper.Fprintf(buf, "c\n")
	assert.Equal(t, "a\tb\nc\n", buf.String())
}

func TestPrettifyJSON(t *testing.T) {
	got, err := cmdhelper.PrettifyJSON(map[string]string{"tag": "latest"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"tag\": \"latest\"\n}", string(got))

	got, err = cmdhelper.PrettifyJSON(`{"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(got))

	_, err = cmdhelper.PrettifyJSON([]byte("not json"))
	assert.Error(t, err)
}
