package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/SKalt/container-image-dist-ref/pkg/cmdhelper"
	"github.com/SKalt/container-image-dist-ref/pkg/reference"
	"github.com/SKalt/container-image-dist-ref/pkg/xlog"
)

// NewParseCommand returns a parse command.
func NewParseCommand() *ParseCommand {
	return &ParseCommand{}
}

// ParseCommand reads image references from stdin, one per line, and prints
// one tab-separated row per reference: input, name, domain, path, tag,
// digest algorithm, digest encoded and error. Tabs, newlines and carriage
// returns inside fields are backslash-escaped.
//
// By default only the first line is read and a parse failure exits 1 with
// the error description in the err column. With --all every line is
// processed and the exit code stays 0.
type ParseCommand struct {
	All    bool
	Header bool
}

// ToCLI returns a *cli.Command.
func (c *ParseCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse image references from stdin into tab-separated fields",
		UsageText: "echo docker.io/library/busybox:latest | distref parse",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdhelper.NoArgs()),
		Action:    c.Run,
	}
}

// Run implements *cli.Command Action function.
func (c *ParseCommand) Run(_ context.Context, cmd *cli.Command) error {
	scanner := bufio.NewScanner(cmd.Reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if c.Header {
		cmdhelper.Fprintf(cmd.Writer, "%s", strings.Join(reference.FieldNames, "\t"))
	}

	var firstErr error
	lines := 0
	for scanner.Scan() {
		input := scanner.Text()
		lines++
		fields := evaluate(input)
		cmdhelper.Fprintf(cmd.Writer, "%s", fields.Row())
		if fields.Err != "" && firstErr == nil {
			firstErr = fmt.Errorf("%s", fields.Err)
		}
		if !c.All {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	xlog.Debugf("parsed %d line(s)", lines)

	if !c.All && firstErr != nil {
		return cli.Exit("", 1)
	}
	return nil
}

// Flags returns a list of cli flags of the commands.
func (c *ParseCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "all",
			Aliases:     []string{"a"},
			Usage:       "parse every input line instead of only the first, always exiting 0",
			Value:       c.All,
			Destination: &c.All,
		},
		&cli.BoolFlag{
			Name:        "header",
			Usage:       "print the column names before the rows",
			Value:       c.Header,
			Destination: &c.Header,
		},
	}
}

func evaluate(input string) reference.Fields {
	ref, err := reference.Parse(input)
	if err != nil {
		xlog.Debugf("parse %q: %v", input, err)
		return reference.ErrorFields(input, err)
	}
	return ref.Fields()
}
