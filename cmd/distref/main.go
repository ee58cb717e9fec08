// Package main is the entry of the application.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/SKalt/container-image-dist-ref/pkg/cmdhelper"
	"github.com/SKalt/container-image-dist-ref/pkg/commands"
	"github.com/SKalt/container-image-dist-ref/pkg/xlog"
)

func main() {
	debug := false
	app := cli.Command{
		Name:                  "distref",
		Usage:                 "distref parses and validates container image references",
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		HideHelpCommand:       true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "enable debug logging",
				Destination: &debug,
			},
		},
		Before: cli.BeforeFunc(func(_ context.Context, _ *cli.Command) error {
			if debug {
				xlog.SetLevel(slog.LevelDebug)
			}
			return nil
		}),
		Commands: []*cli.Command{
			commands.NewVersionCommand().ToCLI(),
			commands.NewParseCommand().ToCLI(),
			commands.NewCheckCommand().ToCLI(),
		},
		ExitErrHandler: func(_ context.Context, c *cli.Command, err error) {
			cli.HandleExitCoder(err)
			// anything that is not an ExitCoder is an internal fault
			cmdhelper.Fprintf(c.ErrWriter, "Error: %+v\n", err)
			os.Exit(2)
		},
	}
	//nolint:errcheck // already checked in root command ExitErrHandler
	_ = app.Run(context.Background(), os.Args)
}
