// Command promptgen turns a portfolio JSON file into a prompt for a language model.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/portfoy/clipboard"
	"github.com/etnz/portfoy/cmd"
	"github.com/etnz/portfoy/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("promptgen")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
// Boolean flags have no predictor.
func completion() *complete.Command {
	global := map[string]complete.Predictor{
		"config":    predict.Files("*.toml"),
		"v":         nil,
		"clipboard": predict.Set(clipboard.Kinds),
	}
	snapshot := map[string]complete.Predictor{
		"i": predict.Files("*.json"),
		"d": predict.Something,
	}
	prompt := map[string]complete.Predictor{
		"preview": nil,
		"copy":    nil,
	}
	for k, v := range snapshot {
		prompt[k] = v
	}
	return &complete.Command{
		Flags: global,
		Sub: map[string]*complete.Command{
			"prompt": {Flags: prompt},
			"copy":   {Flags: snapshot},
			"risk":   {Flags: map[string]complete.Predictor{"i": predict.Files("*.json")}},
			"topic":  {Args: predict.Set(topics())},
			"help":   {Args: predict.Set{"prompt", "copy", "risk", "topic"}},
		},
	}
}

func topics() []string {
	all, _ := docs.All()
	return append(all, "*")
}
