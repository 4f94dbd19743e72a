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

type updateCmd struct {
	id   string
	form stockbook.ItemForm
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "replace a stock item's editable fields" }
func (*updateCmd) Usage() string {
	return `sbk update -id <id> -brand <brand> -model <model> -specs <specifications> [options]

  Replaces the item's mutable fields wholesale, keeping its id and the
  original dateAdded. All fields must be supplied.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the stock item to update (required)")
	f.StringVar(&c.form.Brand, "brand", "", "Brand name (required)")
	f.StringVar(&c.form.Model, "model", "", "Model name (required)")
	f.StringVar(&c.form.Specifications, "specs", "", "Free-text specification (required)")
	f.StringVar(&c.form.PurchasePrice, "purchase-price", "", "Purchase price per unit")
	f.StringVar(&c.form.SellingPrice, "selling-price", "", "Selling price per unit")
	f.StringVar(&c.form.Quantity, "quantity", "0", "Quantity in stock")
	f.StringVar(&c.form.MinStockLevel, "min-stock", "0", "Minimum stock level before a low-stock alert")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	cmd, err := c.form.Update(c.id)
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
		if errors.Is(err, stockbook.ErrNotFound) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %s\n", c.id)
	return subcommands.ExitSuccess
}
