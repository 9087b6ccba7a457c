package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

// copyCmd holds the flags for the 'copy' subcommand.
type copyCmd struct {
	snapshotFlags
}

func (*copyCmd) Name() string     { return "copy" }
func (*copyCmd) Synopsis() string { return "copy the portfolio prompt to the clipboard" }
func (*copyCmd) Usage() string {
	return `promptgen copy [-i <portfolio.json>] [-d <date>]

  Copies the prompt printed by 'promptgen prompt' to the clipboard, ready to be
  pasted in a language model chat.
`
}

func (c *copyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return exitError(subcommands.ExitUsageError, "loading configuration", err)
	}
	text, status := c.build(cfg)
	if status != subcommands.ExitSuccess {
		return status
	}
	return copyPrompt(cfg, text)
}
