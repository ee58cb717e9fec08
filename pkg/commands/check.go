package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/SKalt/container-image-dist-ref/pkg/cmdhelper"
	"github.com/SKalt/container-image-dist-ref/pkg/errdefs"
	"github.com/SKalt/container-image-dist-ref/pkg/reference"
	"github.com/SKalt/container-image-dist-ref/pkg/xlog"
)

// NewCheckCommand returns a check command.
func NewCheckCommand() *CheckCommand {
	return &CheckCommand{}
}

// CheckCommand validates the image references given as arguments and prints
// a per-input status line. Any invalid input makes the command exit 1 after
// all inputs are reported.
type CheckCommand struct {
	Canonical  bool
	Descriptor bool
}

// ToCLI returns a *cli.Command.
func (c *CheckCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate image references given as arguments",
		UsageText: "distref check [--canonical] REFERENCE [REFERENCE...]",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdhelper.MinimumNArgs(1)),
		Action:    c.Run,
	}
}

// Run implements *cli.Command Action function.
func (c *CheckCommand) Run(_ context.Context, cmd *cli.Command) error {
	if c.Descriptor {
		// a descriptor is content-addressed, so it needs the digest
		c.Canonical = true
	}
	failed := false
	for _, input := range cmd.Args().Slice() {
		if err := c.check(cmd, input); err != nil {
			failed = true
			xlog.Debugf("check %q: %v", input, err)
			cmdhelper.Fprintf(cmd.Writer, "%s\terror: %s",
				reference.EscapeField(input), reference.ErrorDescription(err))
		}
	}
	if failed {
		return cli.Exit("", 1)
	}
	return nil
}

func (c *CheckCommand) check(cmd *cli.Command, input string) error {
	if !c.Canonical {
		ref, err := reference.Parse(input)
		if err != nil {
			return errdefs.Newf(err, "invalid reference %q", input)
		}
		cmdhelper.Fprintf(cmd.Writer, "%s\tok", reference.EscapeField(ref.String()))
		return nil
	}

	ref, err := reference.ParseCanonical(input)
	if err != nil {
		return errdefs.Newf(err, "invalid canonical reference %q", input)
	}
	if c.Descriptor {
		data, err := cmdhelper.PrettifyJSON(ref.Descriptor())
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", string(data))
		return nil
	}
	cmdhelper.Fprintf(cmd.Writer, "%s\tok", reference.EscapeField(ref.String()))
	return nil
}

// Flags returns a list of cli flags of the commands.
func (c *CheckCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "canonical",
			Usage:       "require a digest with a registered algorithm",
			Value:       c.Canonical,
			Destination: &c.Canonical,
		},
		&cli.BoolFlag{
			Name:        "descriptor",
			Usage:       "print an OCI descriptor instead of a status line (implies --canonical)",
			Value:       c.Descriptor,
			Destination: &c.Descriptor,
		},
	}
}
