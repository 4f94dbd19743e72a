package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockbook/stockbook/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the business overview" }
func (*dashboardCmd) Usage() string {
	return `sbk dashboard

  Prints the headline totals, the low-stock alerts, and the most recent
  sales.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, closeTracker, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeTracker()

	printMarkdown(renderer.DashboardMarkdown(tracker.Snapshot(), loadSettings().Currency))
	return subcommands.ExitSuccess
}
