package stockbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addTestItem applies an AddItem command and returns the new item's id.
func addTestItem(t *testing.T, l *Ledger, brand, model string, quantity, minStock int, purchase, selling Money) string {
	t.Helper()
	err := l.Apply(AddItem{itemFields: itemFields{
		Brand:          brand,
		Model:          model,
		Specifications: "test specification",
		PurchasePrice:  purchase,
		SellingPrice:   selling,
		Quantity:       quantity,
		MinStockLevel:  minStock,
	}})
	require.NoError(t, err)
	items := l.Snapshot().Laptops
	return items[len(items)-1].ID
}

func TestApply_AddItem(t *testing.T) {
	l := NewLedger()
	id := addTestItem(t, l, "Dell", "XPS 13", 5, 2, M(65000), M(75000))

	it := l.Item(id)
	require.NotNil(t, it)
	assert.Equal(t, "Dell", it.Brand)
	assert.Equal(t, 5, it.Quantity)
	assert.False(t, it.DateAdded.IsZero())
}

func TestApply_AddItem_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		fields itemFields
	}{
		{"empty brand", itemFields{Model: "XPS 13", Specifications: "i7"}},
		{"empty model", itemFields{Brand: "Dell", Specifications: "i7"}},
		{"blank specification", itemFields{Brand: "Dell", Model: "XPS 13", Specifications: "  "}},
		{"negative quantity", itemFields{Brand: "Dell", Model: "XPS 13", Specifications: "i7", Quantity: -1}},
		{"negative min stock", itemFields{Brand: "Dell", Model: "XPS 13", Specifications: "i7", MinStockLevel: -2}},
		{"negative purchase price", itemFields{Brand: "Dell", Model: "XPS 13", Specifications: "i7", PurchasePrice: M(-1)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			err := l.Apply(AddItem{itemFields: tc.fields})

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Empty(t, l.Snapshot().Laptops)
		})
	}
}

func TestApply_UpdateItem(t *testing.T) {
	l := NewLedger()
	id := addTestItem(t, l, "Dell", "XPS 13", 5, 2, M(65000), M(75000))
	added := l.Item(id).DateAdded

	err := l.Apply(UpdateItem{ID: id, itemFields: itemFields{
		Brand:          "Dell",
		Model:          "XPS 15",
		Specifications: "Intel i9, 32GB RAM",
		PurchasePrice:  M(90000),
		SellingPrice:   M(105000),
		Quantity:       4,
		MinStockLevel:  1,
	}})
	require.NoError(t, err)

	it := l.Item(id)
	assert.Equal(t, "XPS 15", it.Model)
	assert.Equal(t, 4, it.Quantity)
	assert.Equal(t, id, it.ID, "identity must be preserved")
	assert.Equal(t, added, it.DateAdded, "original dateAdded must be preserved")
}

func TestApply_UpdateItem_NotFound(t *testing.T) {
	l := NewLedger()
	err := l.Apply(UpdateItem{ID: "nope", itemFields: itemFields{
		Brand: "Dell", Model: "XPS 13", Specifications: "i7",
	}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApply_DeleteItem_KeepsRecords(t *testing.T) {
	l := NewLedger()
	id := addTestItem(t, l, "Dell", "XPS 13", 5, 2, M(65000), M(75000))
	require.NoError(t, l.Apply(RecordSale{LaptopID: id, Quantity: 2, UnitPrice: M(75000)}))

	require.NoError(t, l.Apply(DeleteItem{ID: id}))

	s := l.Snapshot()
	assert.Nil(t, s.Item(id))
	require.Len(t, s.Sales, 1, "historical records must not cascade-delete")
	assert.Equal(t, id, s.Sales[0].LaptopID)

	assert.ErrorIs(t, l.Apply(DeleteItem{ID: id}), ErrNotFound)
}

func TestApply_RecordPurchase(t *testing.T) {
	l := NewLedger()
	id := addTestItem(t, l, "Dell", "XPS 13", 5, 2, M(65000), M(75000))

	err := l.Apply(RecordPurchase{LaptopID: id, Quantity: 10, UnitPrice: M(1000), Supplier: "Tech Distributors"})
	require.NoError(t, err)

	s := l.Snapshot()
	assert.Equal(t, 15, s.Item(id).Quantity)
	require.Len(t, s.Purchases, 1)
	assert.True(t, s.Purchases[0].TotalAmount.Equal(M(10000)),
		"totalAmount must be quantity × unitPrice, got %s", s.Purchases[0].TotalAmount)
	assert.False(t, s.Purchases[0].Date.IsZero())
}

func TestApply_RecordPurchase_Invalid(t *testing.T) {
	l := NewLedger()
	id := addTestItem(t, l, "Dell", "XPS 13", 5, 2, M(65000), M(75000))

	testCases := []struct {
		name string
		cmd  RecordPurchase
	}{
		{"unknown item", RecordPurchase{LaptopID: "nope", Quantity: 1, UnitPrice: M(1)}},
		{"zero quantity", RecordPurchase{LaptopID: id, Quantity: 0, UnitPrice: M(1)}},
		{"negative price", RecordPurchase{LaptopID: id, Quantity: 1, UnitPrice: M(-1)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := l.Apply(tc.cmd)
			require.Error(t, err)

			s := l.Snapshot()
			assert.Empty(t, s.Purchases, "a rejected purchase must append nothing")
			assert.Equal(t, 5, s.Item(id).Quantity, "a rejected purchase must not change stock")
		})
	}
}

func TestApply_RecordSale(t *testing.T) {
	l := NewLedger()
	id := addTestItem(t, l, "Dell", "XPS 13", 5, 2, M(65000), M(75000))

	err := l.Apply(RecordSale{LaptopID: id, Quantity: 3, UnitPrice: M(75000), Customer: "John Doe"})
	require.NoError(t, err)

	s := l.Snapshot()
	assert.Equal(t, 2, s.Item(id).Quantity)
	require.Len(t, s.Sales, 1)
	assert.True(t, s.Sales[0].TotalAmount.Equal(M(225000)))
	assert.True(t, s.Item(id).IsLowStock(), "quantity 2 at minimum 2 is low stock")
}

func TestApply_RecordSale_InsufficientStock(t *testing.T) {
	l := NewLedger()
	id := addTestItem(t, l, "Dell", "XPS 13", 5, 2, M(65000), M(75000))
	before := l.Snapshot()

	err := l.Apply(RecordSale{LaptopID: id, Quantity: 10, UnitPrice: M(75000)})
	require.ErrorIs(t, err, ErrInsufficientStock)

	after := l.Snapshot()
	assert.Equal(t, before.Laptops, after.Laptops, "a rejected sale must not change stock")
	assert.Empty(t, after.Sales, "a rejected sale must append nothing")
}

func TestApply_RecordSale_NeverNegative(t *testing.T) {
	l := NewLedger()
	id := addTestItem(t, l, "Dell", "XPS 13", 1, 0, M(65000), M(75000))

	require.NoError(t, l.Apply(RecordSale{LaptopID: id, Quantity: 1, UnitPrice: M(75000)}))
	assert.Equal(t, 0, l.Item(id).Quantity)

	err := l.Apply(RecordSale{LaptopID: id, Quantity: 1, UnitPrice: M(75000)})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 0, l.Item(id).Quantity)
}

// TestConservation exercises an arbitrary sequence of purchases and sales and
// checks that the final quantity equals the initial quantity plus purchased
// units minus sold units.
func TestConservation(t *testing.T) {
	l := NewLedger()
	id := addTestItem(t, l, "Dell", "XPS 13", 5, 2, M(65000), M(75000))

	type op struct {
		purchase bool
		quantity int
		ok       bool
	}
	ops := []op{
		{purchase: true, quantity: 10, ok: true},  // 15
		{purchase: false, quantity: 4, ok: true},  // 11
		{purchase: false, quantity: 20, ok: false},
		{purchase: true, quantity: 2, ok: true},   // 13
		{purchase: false, quantity: 13, ok: true}, // 0
		{purchase: false, quantity: 1, ok: false},
	}

	bought, sold := 0, 0
	for _, o := range ops {
		var err error
		if o.purchase {
			err = l.Apply(RecordPurchase{LaptopID: id, Quantity: o.quantity, UnitPrice: M(1000)})
		} else {
			err = l.Apply(RecordSale{LaptopID: id, Quantity: o.quantity, UnitPrice: M(2000)})
		}
		if o.ok {
			require.NoError(t, err)
			if o.purchase {
				bought += o.quantity
			} else {
				sold += o.quantity
			}
		} else {
			require.Error(t, err)
		}
	}

	s := l.Snapshot()
	assert.Equal(t, 5+bought-sold, s.Item(id).Quantity)

	fromRecords := 0
	for _, p := range s.Purchases {
		fromRecords += p.Quantity
	}
	for _, sa := range s.Sales {
		fromRecords -= sa.Quantity
	}
	assert.Equal(t, s.Item(id).Quantity, 5+fromRecords, "records must account for every unit")
}

func TestSnapshot_Isolation(t *testing.T) {
	l := NewLedger()
	id := addTestItem(t, l, "Dell", "XPS 13", 5, 2, M(65000), M(75000))

	s := l.Snapshot()
	require.NoError(t, l.Apply(RecordSale{LaptopID: id, Quantity: 3, UnitPrice: M(75000)}))

	assert.Equal(t, 5, s.Item(id).Quantity, "snapshot must not see later mutations")
	assert.Empty(t, s.Sales)
}
