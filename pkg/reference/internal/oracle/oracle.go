// Package oracle loads and runs the tab-separated conformance corpus that
// pins the parser's behavior, input by input, to known-good rows.
package oracle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/SKalt/container-image-dist-ref/pkg/errdefs"
	"github.com/SKalt/container-image-dist-ref/pkg/reference"
)

// ErrBadCorpus signals a corpus file that cannot be decoded.
var ErrBadCorpus = errors.New("malformed corpus")

// Corpus is a list of inputs with their expected parse outcomes, in file
// order.
type Corpus struct {
	Rows []reference.Fields
}

// Load reads dir/outputs.tsv from fsys: one expected row per line in the
// reference.FieldNames column order, fields escaped, blank lines and
// #-comments skipped.
func Load(fsys afero.Fs, dir string) (*Corpus, error) {
	name := path.Join(dir, "outputs.tsv")
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	corpus := &Corpus{}
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields, err := ParseRow(line)
		if err != nil {
			return nil, errdefs.Newf(ErrBadCorpus, "%s line %d: %v", name, lineno, err)
		}
		corpus.Rows = append(corpus.Rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return corpus, nil
}

// LoadInputs reads a plain input list from fsys: one escaped reference per
// line, blank lines and #-comments skipped.
func LoadInputs(fsys afero.Fs, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var inputs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, reference.UnescapeField(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return inputs, nil
}

// ParseRow decodes one escaped tab-separated corpus line.
func ParseRow(line string) (reference.Fields, error) {
	cols := strings.Split(line, "\t")
	if len(cols) != len(reference.FieldNames) {
		return reference.Fields{}, fmt.Errorf("want %d columns, got %d",
			len(reference.FieldNames), len(cols))
	}
	unescaped := lo.Map(cols, func(col string, _ int) string {
		return reference.UnescapeField(col)
	})
	return reference.Fields{
		Input:         unescaped[0],
		Name:          unescaped[1],
		Domain:        unescaped[2],
		Path:          unescaped[3],
		Tag:           unescaped[4],
		DigestAlgo:    unescaped[5],
		DigestEncoded: unescaped[6],
		Err:           unescaped[7],
	}, nil
}

// Diff is one disagreement between the corpus and the parser.
type Diff struct {
	Line int
	Want reference.Fields
	Got  reference.Fields
}

func (d Diff) String() string {
	return fmt.Sprintf("input %q:\n\twant: %s\n\tgot:  %s",
		d.Want.Input, d.Want.Row(), d.Got.Row())
}

// Run parses every corpus input on up to workers goroutines and returns the
// rows that disagree with their expectation, in corpus order.
func (c *Corpus) Run(ctx context.Context, workers int) ([]Diff, error) {
	got := make([]reference.Fields, len(c.Rows))
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, row := range c.Rows {
		i, row := i, row
		eg.Go(func() error {
			got[i] = Evaluate(row.Input)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	var diffs []Diff
	for i, row := range c.Rows {
		if got[i] != row {
			diffs = append(diffs, Diff{Line: i + 1, Want: row, Got: got[i]})
		}
	}
	return diffs, nil
}

// Evaluate runs one input through the parser and flattens the outcome.
func Evaluate(input string) reference.Fields {
	ref, err := reference.Parse(input)
	if err != nil {
		return reference.ErrorFields(input, err)
	}
	return ref.Fields()
}
