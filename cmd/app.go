// Package cmd implements the CLI application to generate language model prompts from a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/portfoy"
	"github.com/etnz/portfoy/clipboard"
	"github.com/etnz/portfoy/config"
	"github.com/etnz/portfoy/date"
	"github.com/google/subcommands"
	"github.com/phuslu/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&promptCmd{}, "prompt")
	c.Register(&copyCmd{}, "prompt")
	c.Register(&riskCmd{}, "portfolio")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the TOML configuration file. Defaults to $"+config.EnvConfigFile+" or <user config dir>/portfoy/config.toml if it exists.")

var clipboardKind = flag.String("clipboard", "", "Clipboard used by copy commands: "+strings.Join(clipboard.Kinds, ", ")+". Overrides the configuration.")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "verbose logs")

// stdin, stdout and stderr are replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// newClipboard creates the clipboard writer, it is replaced in tests.
var newClipboard = func(cfg *config.Config) (clipboard.Writer, error) {
	return clipboard.New(cfg.Clipboard.Kind, stderr)
}

// configPaths returns the configuration files to load.
func configPaths() []string {
	if *configFile != "" {
		return []string{*configFile}
	}
	if env := os.Getenv(config.EnvConfigFile); env != "" {
		return []string{env}
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	path := filepath.Join(dir, "portfoy", "config.toml")
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return []string{path}
}

// LoadConfig loads the application configuration and sets up logging accordingly.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromFiles(configPaths()...)
	if err != nil {
		return nil, err
	}
	if *clipboardKind != "" {
		cfg.Clipboard.Kind = *clipboardKind
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	level := cfg.Logging.Level
	if *Verbose {
		level = "debug"
	}
	setupLogging(level)
	log.Debug().Strs("files", configPaths()).Str("currency", cfg.Prompt.Currency).Int("window", cfg.Prompt.Window).Msg("configuration loaded")
	return cfg, nil
}

// snapshotFlags are the flags shared by commands reading a portfolio.
type snapshotFlags struct {
	input string
	date  string
}

func (c *snapshotFlags) SetFlags(f *flag.FlagSet) {
	c.setInputFlag(f)
	f.StringVar(&c.date, "d", "", "Date of the report (YYYY-MM-DD). Defaults to today.")
}

func (c *snapshotFlags) setInputFlag(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "portfolio.json", "Portfolio JSON file, '-' reads from stdin.")
}

// DecodeSnapshot reads the portfolio snapshot from the input file.
func (c *snapshotFlags) DecodeSnapshot(cfg *config.Config) (portfoy.Snapshot, error) {
	r := stdin
	name := "stdin"
	if c.input != "-" {
		f, err := os.Open(c.input)
		if err != nil {
			return portfoy.Snapshot{}, fmt.Errorf("opening portfolio file: %w", err)
		}
		defer f.Close()
		r, name = f, c.input
	}
	s, err := portfoy.DecodeSnapshot(r, cfg.DecodeOptions())
	if err != nil {
		return portfoy.Snapshot{}, fmt.Errorf("decoding portfolio %q: %w", name, err)
	}
	log.Debug().Str("input", name).Int("allocations", len(s.Allocations)).Int("history", len(s.History)).Msg("portfolio decoded")
	return s, nil
}

// On returns the report date.
func (c *snapshotFlags) On() (date.Date, error) {
	if c.date == "" {
		return date.Today(), nil
	}
	return date.Parse(c.date)
}

// exitError prints err and returns the corresponding exit status.
func exitError(status subcommands.ExitStatus, what string, err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error %s: %v\n", what, err)
	return status
}
