package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/portfoy"
	"github.com/google/subcommands"
)

// riskCmd holds the flags for the 'risk' subcommand.
type riskCmd struct {
	snapshotFlags
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "display the portfolio allocation against its targets" }
func (*riskCmd) Usage() string {
	return `promptgen risk [-i <portfolio.json>]

  Displays the total value, the risk level and the allocation per asset type
  next to its target, as read (or computed) from the portfolio file.
`
}

// SetFlags registers the input only, the report has no date.
func (c *riskCmd) SetFlags(f *flag.FlagSet) { c.setInputFlag(f) }

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return exitError(subcommands.ExitUsageError, "loading configuration", err)
	}
	s, err := c.DecodeSnapshot(cfg)
	if err != nil {
		return exitError(subcommands.ExitFailure, "reading portfolio", err)
	}
	if err := s.Validate(); err != nil {
		return exitError(subcommands.ExitFailure, "reading portfolio", err)
	}
	printMarkdown(riskReport(s, cfg.Prompt.Currency))
	return subcommands.ExitSuccess
}

// riskReport renders the snapshot summary as markdown.
func riskReport(s portfoy.Snapshot, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portföy\n\n")
	fmt.Fprintf(&b, "- Toplam Değer: %s\n", portfoy.M(s.TotalValue, currency))
	fmt.Fprintf(&b, "- Risk Seviyesi: %s / 10\n\n", portfoy.Score(s.RiskLevel))
	fmt.Fprintf(&b, "| Varlık | Dağılım | Hedef | Fark |\n")
	fmt.Fprintf(&b, "|:---|---:|---:|---:|\n")
	for _, a := range s.Allocations {
		target := s.Targets.Lookup(a.Name)
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", a.Name, portfoy.Percent(a.Percentage), portfoy.Percent(target).Short(), portfoy.Percent(a.Percentage-target))
	}
	return b.String()
}
