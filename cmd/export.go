package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the full ledger to a JSON file" }
func (*exportCmd) Usage() string {
	return `sbk export [-o <file>]

  Writes the three collections plus an export timestamp. Without -o, the
  file is named laptop-stock-data-<date>.json in the current directory.
  Use "-o -" to write to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to laptop-stock-data-<date>.json, - for stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, closeTracker, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeTracker()

	if c.output == "-" {
		if err := tracker.Export(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	name := c.output
	if name == "" {
		name = fmt.Sprintf("laptop-stock-data-%s.json", time.Now().Format("2006-01-02"))
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := tracker.Export(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported ledger to %s\n", name)
	return subcommands.ExitSuccess
}
