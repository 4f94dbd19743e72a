package renderer

import (
	"bytes"
	"fmt"
	"slices"

	md "github.com/nao1215/markdown"
	"github.com/stockbook/stockbook"
)

// topModels is how many top performing models the report shows.
const topModels = 5

// ReportMarkdown renders the analytics report: monthly sales-vs-purchases
// and profit trend over the rollup window, brand distribution, and the top
// performing models.
func ReportMarkdown(s *stockbook.Snapshot, rollup []stockbook.MonthlySummary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Analytics & Reports")
	doc.PlainText(fmt.Sprintf("Total sales %s, total purchases %s, profit %s (margin %.1f%%).",
		s.TotalSalesValue().Display(currency),
		s.TotalPurchaseValue().Display(currency),
		s.TotalProfit().Display(currency),
		s.ProfitMargin()))

	doc.H2("Sales vs Purchases")
	monthly := md.TableSet{Header: []string{"Month", "Sales", "Purchases"}}
	for _, m := range rollup {
		monthly.Rows = append(monthly.Rows, []string{
			m.Label(), m.Sales.Display(currency), m.Purchases.Display(currency),
		})
	}
	doc.Table(monthly)

	doc.H2("Profit Trend")
	trend := md.TableSet{Header: []string{"Month", "Profit"}}
	for _, m := range rollup {
		trend.Rows = append(trend.Rows, []string{m.Label(), m.Profit.Display(currency)})
	}
	doc.Table(trend)

	doc.H2("Inventory by Brand")
	dist := s.BrandDistribution()
	brands := md.TableSet{Header: []string{"Brand", "Units"}}
	brandNames := make([]string, 0, len(dist))
	for brand := range dist {
		brandNames = append(brandNames, brand)
	}
	slices.Sort(brandNames)
	for _, brand := range brandNames {
		brands.Rows = append(brands.Rows, []string{brand, fmt.Sprintf("%d", dist[brand])})
	}
	doc.Table(brands)

	doc.H2("Top Performing Models")
	top := md.TableSet{Header: []string{"#", "Laptop", "Units Sold", "Revenue"}}
	for i, p := range s.TopPerformers(topModels) {
		top.Rows = append(top.Rows, []string{
			fmt.Sprintf("%d", i+1),
			p.Label,
			fmt.Sprintf("%d", p.UnitsSold),
			p.Revenue.Display(currency),
		})
	}
	doc.Table(top)

	return doc.String()
}
