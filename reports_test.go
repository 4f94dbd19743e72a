package stockbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportSnapshot builds a fixed snapshot for analytics tests: two items, one
// sale referencing a deleted item.
func reportSnapshot() *Snapshot {
	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	return &Snapshot{
		Laptops: []StockItem{
			{ID: "a", Brand: "Dell", Model: "XPS 13", PurchasePrice: M(65000), SellingPrice: M(75000), Quantity: 5, MinStockLevel: 2},
			{ID: "b", Brand: "HP", Model: "Pavilion 15", PurchasePrice: M(45000), SellingPrice: M(52000), Quantity: 2, MinStockLevel: 3},
		},
		Purchases: []PurchaseRecord{
			{ID: "p1", LaptopID: "a", Quantity: 5, UnitPrice: M(65000), TotalAmount: M(325000), Date: jan},
			{ID: "p2", LaptopID: "b", Quantity: 2, UnitPrice: M(45000), TotalAmount: M(90000), Date: mar},
		},
		Sales: []SaleRecord{
			{ID: "s1", LaptopID: "a", Quantity: 2, UnitPrice: M(75000), TotalAmount: M(150000), Date: jan},
			{ID: "s2", LaptopID: "b", Quantity: 1, UnitPrice: M(52000), TotalAmount: M(52000), Date: mar},
			{ID: "s3", LaptopID: "gone", Quantity: 1, UnitPrice: M(30000), TotalAmount: M(30000), Date: mar},
		},
	}
}

func TestInventoryValue(t *testing.T) {
	s := reportSnapshot()
	// 5×65000 + 2×45000
	assert.True(t, s.InventoryValue().Equal(M(415000)), "got %s", s.InventoryValue())
}

func TestTotalValues(t *testing.T) {
	s := reportSnapshot()
	assert.True(t, s.TotalPurchaseValue().Equal(M(415000)))
	assert.True(t, s.TotalSalesValue().Equal(M(232000)))
}

func TestProfit(t *testing.T) {
	s := reportSnapshot()

	// (75000-65000)×2 = 20000 against the item's current purchase price.
	assert.True(t, s.Profit(s.Sales[0]).Equal(M(20000)))
	// (52000-45000)×1 = 7000.
	assert.True(t, s.Profit(s.Sales[1]).Equal(M(7000)))
	// Sale of a deleted item contributes nothing.
	assert.True(t, s.Profit(s.Sales[2]).IsZero())

	assert.True(t, s.TotalProfit().Equal(M(27000)))
}

func TestProfit_TracksCurrentPurchasePrice(t *testing.T) {
	s := reportSnapshot()
	before := s.TotalProfit()

	s.Laptops[0].PurchasePrice = M(70000)
	after := s.TotalProfit()

	assert.False(t, before.Equal(after), "profit follows the edited purchase price")
	assert.True(t, after.Equal(M(17000)))
}

func TestProfitMargin(t *testing.T) {
	s := reportSnapshot()
	assert.InDelta(t, 100*27000.0/232000.0, s.ProfitMargin(), 1e-9)

	empty := &Snapshot{}
	assert.Zero(t, empty.ProfitMargin(), "no sales means zero margin, not a division error")
}

func TestLowStock(t *testing.T) {
	s := reportSnapshot()
	low := s.LowStock()
	require.Len(t, low, 1)
	assert.Equal(t, "b", low[0].ID, "quantity 2 at minimum 3 is low")

	s.Laptops[0].Quantity = 2
	assert.Len(t, s.LowStock(), 2, "quantity equal to the minimum counts as low")
}

func TestBrandDistribution(t *testing.T) {
	s := reportSnapshot()
	s.Laptops = append(s.Laptops, StockItem{ID: "c", Brand: "Dell", Model: "Inspiron", Quantity: 3})

	assert.Equal(t, map[string]int{"Dell": 8, "HP": 2}, s.BrandDistribution())
}

func TestTopPerformers(t *testing.T) {
	s := reportSnapshot()
	ranked := s.TopPerformers(5)

	require.Len(t, ranked, 3)
	assert.Equal(t, "a", ranked[0].LaptopID)
	assert.True(t, ranked[0].Revenue.Equal(M(150000)))
	assert.Equal(t, 2, ranked[0].UnitsSold)
	assert.Equal(t, "b", ranked[1].LaptopID)

	// The deleted item's revenue is still ranked, under the fallback label.
	assert.Equal(t, "gone", ranked[2].LaptopID)
	assert.True(t, ranked[2].Missing)
	assert.Equal(t, UnknownLabel, ranked[2].Label)

	assert.Len(t, s.TopPerformers(2), 2, "k truncates the ranking")
	assert.Len(t, s.TopPerformers(-1), 3, "negative k means no truncation")
}

func TestTopPerformers_NoSales(t *testing.T) {
	s := &Snapshot{Laptops: []StockItem{
		{ID: "a", Brand: "Dell", Model: "XPS 13"},
	}}
	ranked := s.TopPerformers(5)
	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].Revenue.IsZero())
	assert.Equal(t, "Dell XPS 13", ranked[0].Label)
}

func TestMonthlyRollup(t *testing.T) {
	s := reportSnapshot()
	until := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	rollup := s.MonthlyRollup(until, 6)
	require.Len(t, rollup, 6)

	assert.Equal(t, "Jan 2026", rollup[0].Label())
	assert.Equal(t, "Jun 2026", rollup[5].Label())

	// January: purchase p1 and sale s1.
	assert.True(t, rollup[0].Purchases.Equal(M(325000)))
	assert.True(t, rollup[0].Sales.Equal(M(150000)))
	assert.True(t, rollup[0].Profit.Equal(M(20000)))

	// February: nothing.
	assert.True(t, rollup[1].Sales.IsZero())
	assert.True(t, rollup[1].Purchases.IsZero())

	// March: p2 plus sales s2 and s3. Profit counts only s2.
	assert.True(t, rollup[2].Purchases.Equal(M(90000)))
	assert.True(t, rollup[2].Sales.Equal(M(82000)))
	assert.True(t, rollup[2].Profit.Equal(M(7000)))
}

func TestMonthlyRollup_WindowExcludesOldRecords(t *testing.T) {
	s := reportSnapshot()
	until := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	rollup := s.MonthlyRollup(until, 3)
	require.Len(t, rollup, 3)
	assert.Equal(t, "Apr 2026", rollup[0].Label())

	// January's activity falls outside the trailing window.
	for _, m := range rollup {
		assert.True(t, m.Sales.IsZero(), "%s", m.Label())
		assert.True(t, m.Purchases.IsZero(), "%s", m.Label())
	}
}

func TestMonthlyRollup_YearBoundary(t *testing.T) {
	dec := time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)
	s := &Snapshot{
		Laptops: []StockItem{{ID: "a", Brand: "Dell", Model: "XPS 13", PurchasePrice: M(65000)}},
		Sales:   []SaleRecord{{ID: "s1", LaptopID: "a", Quantity: 1, UnitPrice: M(75000), TotalAmount: M(75000), Date: dec}},
	}

	until := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	rollup := s.MonthlyRollup(until, 3)
	require.Len(t, rollup, 3)
	assert.Equal(t, "Dec 2025", rollup[0].Label())
	assert.True(t, rollup[0].Sales.Equal(M(75000)))
	assert.Equal(t, "Feb 2026", rollup[2].Label())
}

// Analytics are pure: running them twice over the same snapshot must yield
// identical results and leave the snapshot untouched.
func TestAnalytics_Idempotent(t *testing.T) {
	s := reportSnapshot()
	ref := s.Clone()

	first := s.TopPerformers(5)
	_ = s.BrandDistribution()
	_ = s.LowStock()
	_ = s.MonthlyRollup(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), 6)
	second := s.TopPerformers(5)

	assert.Equal(t, first, second)
	assert.Equal(t, ref, s)
}
