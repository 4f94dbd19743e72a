package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockbook/stockbook"
)

type sellCmd struct {
	form stockbook.SaleForm
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a laptop sale to a customer" }
func (*sellCmd) Usage() string {
	return `sbk sell -laptop <id> -quantity <n> -price <unit price> [-customer <name>] [-date <date>]

  Records an immutable sale and decreases the laptop's stock by the sold
  quantity. A sale exceeding the current stock is rejected and changes
  nothing.

Usage Examples:
$ sbk sell -laptop 1 -quantity 2 -price 75000 -customer "John Doe"
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.LaptopID, "laptop", "", "Id of the stock item sold (required)")
	f.StringVar(&c.form.Quantity, "quantity", "", "Number of units sold (required)")
	f.StringVar(&c.form.UnitPrice, "price", "", "Price charged per unit")
	f.StringVar(&c.form.Customer, "customer", "", "Customer name")
	f.StringVar(&c.form.Date, "date", "", "Sale date, e.g. 2025-08-30 (defaults to today)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		if errors.Is(err, stockbook.ErrInsufficientStock) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	currency := loadSettings().Currency
	fmt.Printf("Recorded sale of %d units for %s\n",
		cmd.Quantity, cmd.UnitPrice.Mul(cmd.Quantity).Display(currency))
	return subcommands.ExitSuccess
}
