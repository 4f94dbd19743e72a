package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/stockbook/stockbook"
)

// maxAlerts bounds the low-stock and recent-sales lists on the dashboard.
const maxAlerts = 5

// DashboardMarkdown renders the business overview: headline totals, the
// low-stock alert list, and the most recent sales.
func DashboardMarkdown(s *stockbook.Snapshot, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Inventory Value", s.InventoryValue().Display(currency)},
			{"Total Purchases", s.TotalPurchaseValue().Display(currency)},
			{"Total Sales", s.TotalSalesValue().Display(currency)},
			{"Total Profit", s.TotalProfit().Display(currency)},
			{"Stock Items", fmt.Sprintf("%d", len(s.Laptops))},
			{"Purchase Records", fmt.Sprintf("%d", len(s.Purchases))},
			{"Sale Records", fmt.Sprintf("%d", len(s.Sales))},
		},
	})

	doc.H2("Low Stock Alert")
	low := s.LowStock()
	if len(low) == 0 {
		doc.PlainText("All items are well stocked.")
	} else {
		if len(low) > maxAlerts {
			low = low[:maxAlerts]
		}
		var lines []string
		for _, it := range low {
			lines = append(lines, fmt.Sprintf("%s: only %d left (minimum %d)",
				it.Label(), it.Quantity, it.MinStockLevel))
		}
		doc.BulletList(lines...)
	}

	doc.H2("Recent Sales")
	if len(s.Sales) == 0 {
		doc.PlainText("No sales recorded yet.")
		return doc.String()
	}
	recent := s.Sales
	if len(recent) > maxAlerts {
		recent = recent[len(recent)-maxAlerts:]
	}
	table := md.TableSet{Header: []string{"Date", "Laptop", "Customer", "Qty", "Amount"}}
	for i := len(recent) - 1; i >= 0; i-- {
		sa := recent[i]
		table.Rows = append(table.Rows, []string{
			sa.Date.Format("2006-01-02"),
			itemLabel(s, sa.LaptopID),
			sa.Customer,
			fmt.Sprintf("%d", sa.Quantity),
			sa.TotalAmount.Display(currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
