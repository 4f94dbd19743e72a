package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockbook/stockbook"
)

type purchaseCmd struct {
	form stockbook.PurchaseForm
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "record stock bought from a supplier" }
func (*purchaseCmd) Usage() string {
	return `sbk purchase -laptop <id> -quantity <n> -price <unit price> [-supplier <name>] [-date <date>]

  Records an immutable purchase and increases the laptop's stock by the
  purchased quantity.

Usage Examples:
$ sbk purchase -laptop 1 -quantity 10 -price 65000 -supplier "Tech Distributors"
`
}

func (c *purchaseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.LaptopID, "laptop", "", "Id of the stock item bought (required)")
	f.StringVar(&c.form.Quantity, "quantity", "", "Number of units bought (required)")
	f.StringVar(&c.form.UnitPrice, "price", "", "Price paid per unit")
	f.StringVar(&c.form.Supplier, "supplier", "", "Supplier name")
	f.StringVar(&c.form.Date, "date", "", "Purchase date, e.g. 2025-08-30 (defaults to today)")
}

func (c *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cmd, err := c.form.Command()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	tracker, closeTracker, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeTracker()

	if err := tracker.Apply(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	currency := loadSettings().Currency
	fmt.Printf("Recorded purchase of %d units for %s\n",
		cmd.Quantity, cmd.UnitPrice.Mul(cmd.Quantity).Display(currency))
	return subcommands.ExitSuccess
}
