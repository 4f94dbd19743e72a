package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/stockbook/stockbook"
)

// InventoryMarkdown renders the stock item collection as a markdown table.
func InventoryMarkdown(s *stockbook.Snapshot, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory")
	if len(s.Laptops) == 0 {
		doc.PlainText("No stock items yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"ID", "Laptop", "Specifications", "Purchase", "Selling", "Qty", "Status"},
	}
	for _, it := range s.Laptops {
		status := "In Stock"
		if it.IsLowStock() {
			status = "Low Stock"
		}
		table.Rows = append(table.Rows, []string{
			it.ID,
			it.Label(),
			it.Specifications,
			it.PurchasePrice.Display(currency),
			it.SellingPrice.Display(currency),
			fmt.Sprintf("%d", it.Quantity),
			status,
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%s, total value %s",
		count(len(s.Laptops), "item"), s.InventoryValue().Display(currency)))

	return doc.String()
}
