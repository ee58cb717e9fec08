package errdefs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SKalt/container-image-dist-ref/pkg/errdefs"
)

var (
	errBase = errors.New("base error")
	errTest = errors.New("this is a test")
)

func TestNewE(t *testing.T) {
	assert.NotErrorIs(t, errTest, errBase)

	e := errdefs.NewE(errBase, errTest)
	assert.ErrorIs(t, e, errBase)
	assert.ErrorIs(t, e, errTest)

	// already joined errors are returned as is
	assert.Equal(t, e, errdefs.NewE(errBase, e))
	assert.NoError(t, errdefs.NewE(errBase, nil))
}

func TestNewf(t *testing.T) {
	e := errdefs.Newf(errBase, "input %q rejected", "busybox")
	assert.ErrorIs(t, e, errBase)
	assert.Contains(t, e.Error(), `input "busybox" rejected`)
}
