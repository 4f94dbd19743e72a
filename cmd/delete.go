package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockbook/stockbook"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a stock item from the inventory" }
func (*deleteCmd) Usage() string {
	return `sbk delete <id>

  Removes the stock item. Its historical purchase and sale records are kept
  and keep showing up in reports, labeled as referencing a missing item.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one item id")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	tracker, closeTracker, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeTracker()

	if err := tracker.Apply(stockbook.DeleteItem{ID: id}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %s\n", id)
	return subcommands.ExitSuccess
}
