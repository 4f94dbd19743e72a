package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stockbook/stockbook"
)

type addCmd struct {
	form stockbook.ItemForm
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new laptop to the inventory" }
func (*addCmd) Usage() string {
	return `sbk add -brand <brand> -model <model> -specs <specifications> [options]

  Adds a new stock item. Prices may be omitted and set later with update.

Usage Examples:
$ sbk add -brand Dell -model "XPS 13" -specs "Intel i7, 16GB RAM, 512GB SSD" -quantity 5 -min-stock 2 -purchase-price 65000 -selling-price 75000
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.Brand, "brand", "", "Brand name (required)")
	f.StringVar(&c.form.Model, "model", "", "Model name (required)")
	f.StringVar(&c.form.Specifications, "specs", "", "Free-text specification (required)")
	f.StringVar(&c.form.PurchasePrice, "purchase-price", "", "Purchase price per unit")
	f.StringVar(&c.form.SellingPrice, "selling-price", "", "Selling price per unit")
	f.StringVar(&c.form.Quantity, "quantity", "0", "Initial quantity in stock")
	f.StringVar(&c.form.MinStockLevel, "min-stock", "0", "Minimum stock level before a low-stock alert")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cmd, err := c.form.Add()
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
	fmt.Printf("Added %s %s to the inventory\n", cmd.Brand, cmd.Model)
	return subcommands.ExitSuccess
}
