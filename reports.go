package stockbook

import (
	"fmt"
	"sort"
	"time"
)

// This file contains the derived analytics: pure, side-effect free functions
// over a Snapshot. Calling any of them twice on the same snapshot returns
// identical results.

// UnknownLabel names a purchase or sale record whose laptopId no longer
// resolves to a stock item.
const UnknownLabel = "Unknown Laptop"

// InventoryValue is the total value of stock on hand, Σ quantity × purchasePrice.
func (s *Snapshot) InventoryValue() Money {
	var total Money
	for _, it := range s.Laptops {
		total = total.Add(it.PurchasePrice.Mul(it.Quantity))
	}
	return total
}

// TotalPurchaseValue is the sum of all purchase record amounts.
func (s *Snapshot) TotalPurchaseValue() Money {
	var total Money
	for _, p := range s.Purchases {
		total = total.Add(p.TotalAmount)
	}
	return total
}

// TotalSalesValue is the sum of all sale record amounts.
func (s *Snapshot) TotalSalesValue() Money {
	var total Money
	for _, sa := range s.Sales {
		total = total.Add(sa.TotalAmount)
	}
	return total
}

// Profit returns the realized profit of a single sale, using the referenced
// item's current purchasePrice as the cost basis. Known limitation: editing
// an item's purchasePrice retroactively changes historical profit figures.
// Sales referencing a deleted item contribute zero.
func (s *Snapshot) Profit(sale SaleRecord) Money {
	it := s.Item(sale.LaptopID)
	if it == nil {
		return Money{}
	}
	return sale.UnitPrice.Sub(it.PurchasePrice).Mul(sale.Quantity)
}

// TotalProfit is the aggregate realized profit over all sales.
func (s *Snapshot) TotalProfit() Money {
	var total Money
	for _, sa := range s.Sales {
		total = total.Add(s.Profit(sa))
	}
	return total
}

// ProfitMargin is the total profit as a percentage of total sales value,
// or 0 when there are no sales.
func (s *Snapshot) ProfitMargin() float64 {
	return s.TotalProfit().Ratio(s.TotalSalesValue()) * 100
}

// LowStock returns the items whose quantity is at or below their configured
// minimum stock level, in collection order.
func (s *Snapshot) LowStock() []StockItem {
	var items []StockItem
	for _, it := range s.Laptops {
		if it.IsLowStock() {
			items = append(items, it)
		}
	}
	return items
}

// BrandDistribution maps each brand name to the summed quantity of its items.
func (s *Snapshot) BrandDistribution() map[string]int {
	dist := make(map[string]int)
	for _, it := range s.Laptops {
		dist[it.Brand] += it.Quantity
	}
	return dist
}

// Performer is a stock item ranked by the sale revenue attributable to it.
// Missing is true when the laptopId no longer resolves to an item; Label is
// then UnknownLabel.
type Performer struct {
	LaptopID  string
	Label     string
	Missing   bool
	UnitsSold int
	Revenue   Money
}

// TopPerformers ranks items descending by total sale revenue and truncates
// to k. Sales referencing deleted items still count, attributed to their
// original laptopId.
func (s *Snapshot) TopPerformers(k int) []Performer {
	byID := make(map[string]*Performer)
	var order []string

	for _, it := range s.Laptops {
		byID[it.ID] = &Performer{LaptopID: it.ID, Label: it.Label()}
		order = append(order, it.ID)
	}
	for _, sa := range s.Sales {
		p, ok := byID[sa.LaptopID]
		if !ok {
			p = &Performer{LaptopID: sa.LaptopID, Label: UnknownLabel, Missing: true}
			byID[sa.LaptopID] = p
			order = append(order, sa.LaptopID)
		}
		p.UnitsSold += sa.Quantity
		p.Revenue = p.Revenue.Add(sa.TotalAmount)
	}

	ranked := make([]Performer, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *byID[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	if k >= 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// MonthlySummary aggregates one calendar month of trading activity.
type MonthlySummary struct {
	Year      int
	Month     time.Month
	Sales     Money
	Purchases Money
	Profit    Money
}

// Label returns the month in "Jan 2006" form.
func (m MonthlySummary) Label() string {
	return fmt.Sprintf("%s %d", m.Month.String()[:3], m.Year)
}

// MonthlyRollup partitions purchases and sales by calendar month over the
// trailing months up to and including until's month, oldest first. Records
// outside the window are ignored.
func (s *Snapshot) MonthlyRollup(until time.Time, months int) []MonthlySummary {
	if months < 1 {
		return nil
	}

	index := func(t time.Time) int { return t.Year()*12 + int(t.Month()) - 1 }
	last := index(until)
	first := last - months + 1

	rollup := make([]MonthlySummary, months)
	for i := range rollup {
		m := first + i
		rollup[i] = MonthlySummary{Year: m / 12, Month: time.Month(m%12 + 1)}
	}
	bucket := func(t time.Time) *MonthlySummary {
		i := index(t)
		if i < first || i > last {
			return nil
		}
		return &rollup[i-first]
	}

	for _, p := range s.Purchases {
		if b := bucket(p.Date); b != nil {
			b.Purchases = b.Purchases.Add(p.TotalAmount)
		}
	}
	for _, sa := range s.Sales {
		if b := bucket(sa.Date); b != nil {
			b.Sales = b.Sales.Add(sa.TotalAmount)
			b.Profit = b.Profit.Add(s.Profit(sa))
		}
	}
	return rollup
}
