package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/stockbook/stockbook/renderer"
)

type reportCmd struct {
	months int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the analytics report" }
func (*reportCmd) Usage() string {
	return `sbk report [-months <n>]

  Prints monthly sales-vs-purchases and profit figures over the trailing
  months, the inventory brand distribution, and the top performing models.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 6, "Number of trailing months to report, including the current one")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.months < 1 {
		fmt.Fprintln(os.Stderr, "Error: -months must be at least 1")
		return subcommands.ExitUsageError
	}

	tracker, closeTracker, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeTracker()

	snap := tracker.Snapshot()
	rollup := snap.MonthlyRollup(time.Now(), c.months)
	printMarkdown(renderer.ReportMarkdown(snap, rollup, loadSettings().Currency))
	return subcommands.ExitSuccess
}
