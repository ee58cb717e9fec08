package reference_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/SKalt/container-image-dist-ref/pkg/reference/internal/oracle"
)

func TestGoldenCorpus(t *testing.T) {
	corpus, err := oracle.Load(afero.NewOsFs(), "testdata")
	require.NoError(t, err)
	require.NotEmpty(t, corpus.Rows)

	diffs, err := corpus.Run(context.Background(), 8)
	require.NoError(t, err)
	for _, diff := range diffs {
		t.Errorf("line %d: %s", diff.Line, diff)
	}
}

func TestGoldenInputs_Deterministic(t *testing.T) {
	inputs, err := oracle.LoadInputs(afero.NewOsFs(), "testdata/inputs.txt")
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	first := make(map[string]string, len(inputs))
	for _, input := range inputs {
		first[input] = oracle.Evaluate(input).Row()
	}

	eg := errgroup.Group{}
	eg.SetLimit(8)
	for _, input := range inputs {
		input := input
		eg.Go(func() error {
			for n := 0; n < 50; n++ {
				if got := oracle.Evaluate(input).Row(); got != first[input] {
					t.Errorf("input %q: got %q, first run said %q", input, got, first[input])
					return nil
				}
			}
			return nil
		})
	}
	assert.NoError(t, eg.Wait())
}
