package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/portfoy/config"
	"github.com/etnz/portfoy/prompt"
	"github.com/google/subcommands"
	"github.com/phuslu/log"
)

// copiedMessage is shown once the prompt is in the clipboard.
const copiedMessage = "Prompt panoya kopyalandı!"

// promptCmd holds the flags for the 'prompt' subcommand.
type promptCmd struct {
	snapshotFlags
	preview bool
	copy    bool
}

func (*promptCmd) Name() string     { return "prompt" }
func (*promptCmd) Synopsis() string { return "print a language model prompt describing the portfolio" }
func (*promptCmd) Usage() string {
	return `promptgen prompt [-i <portfolio.json>] [-d <date>] [-preview] [-copy]

  Prints a prompt asking a language model for investment suggestions, built
  from the portfolio total value, risk level, allocation and value history.
`
}

func (c *promptCmd) SetFlags(f *flag.FlagSet) {
	c.snapshotFlags.SetFlags(f)
	f.BoolVar(&c.preview, "preview", false, "Render the prompt as markdown in the terminal.")
	f.BoolVar(&c.copy, "copy", false, "Also copy the prompt to the clipboard.")
}

func (c *promptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return exitError(subcommands.ExitUsageError, "loading configuration", err)
	}
	text, status := c.build(cfg)
	if status != subcommands.ExitSuccess {
		return status
	}

	if c.preview {
		printMarkdown(text)
	} else {
		fmt.Fprintln(stdout, text)
	}

	if c.copy {
		return copyPrompt(cfg, text)
	}
	return subcommands.ExitSuccess
}

// build renders the prompt of the input portfolio.
func (c *snapshotFlags) build(cfg *config.Config) (string, subcommands.ExitStatus) {
	on, err := c.On()
	if err != nil {
		return "", exitError(subcommands.ExitUsageError, "parsing date", err)
	}
	s, err := c.DecodeSnapshot(cfg)
	if err != nil {
		return "", exitError(subcommands.ExitFailure, "reading portfolio", err)
	}
	b := &prompt.Builder{Currency: cfg.Prompt.Currency, Window: cfg.Prompt.Window}
	text, err := b.Build(s, on)
	if err != nil {
		return "", exitError(subcommands.ExitFailure, "building prompt", err)
	}
	return text, subcommands.ExitSuccess
}

// copyPrompt writes text to the configured clipboard and tells the user how it went.
func copyPrompt(cfg *config.Config, text string) subcommands.ExitStatus {
	w, err := newClipboard(cfg)
	if err != nil {
		return exitError(subcommands.ExitUsageError, "opening clipboard", err)
	}
	if err := w.WriteText(text); err != nil {
		return exitError(subcommands.ExitFailure, "copying prompt to the clipboard", err)
	}
	log.Debug().Str("clipboard", cfg.Clipboard.Kind).Int("bytes", len(text)).Msg("prompt copied")
	fmt.Fprintln(stderr, copiedMessage)
	return subcommands.ExitSuccess
}
