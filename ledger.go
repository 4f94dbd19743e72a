package stockbook

import (
	"slices"
)

// Ledger is the single source of truth for the three record collections.
//
// A sale or purchase always keeps the quantity invariant: an item's quantity
// equals its initial quantity plus the purchase quantities referencing it,
// minus the sale quantities referencing it. Deleting an item leaves its
// historical purchase and sale records in place as orphaned references.
type Ledger struct {
	laptops   []StockItem
	purchases []PurchaseRecord
	sales     []SaleRecord
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		laptops:   make([]StockItem, 0),
		purchases: make([]PurchaseRecord, 0),
		sales:     make([]SaleRecord, 0),
	}
}

// Item returns the stock item with this id, or nil if unknown.
func (l *Ledger) Item(id string) *StockItem {
	if i := l.itemIndex(id); i >= 0 {
		return &l.laptops[i]
	}
	return nil
}

func (l *Ledger) itemIndex(id string) int {
	return slices.IndexFunc(l.laptops, func(it StockItem) bool { return it.ID == id })
}

// Apply validates a command against the current state and, on success,
// mutates the ledger. A failed command leaves the ledger untouched: no new
// record, no quantity change.
func (l *Ledger) Apply(cmd Command) error {
	if err := cmd.Validate(l); err != nil {
		return err
	}
	cmd.apply(l)
	return nil
}

// Snapshot returns a complete, consistent, point-in-time copy of the three
// collections. Later mutations of the ledger do not show through.
func (l *Ledger) Snapshot() *Snapshot {
	return &Snapshot{
		Laptops:   slices.Clone(l.laptops),
		Purchases: slices.Clone(l.purchases),
		Sales:     slices.Clone(l.sales),
	}
}

// Reset replaces the ledger's collections wholesale with the snapshot's,
// as when loading a persisted snapshot or importing a data file.
func (l *Ledger) Reset(s *Snapshot) {
	l.laptops = slices.Clone(s.Laptops)
	l.purchases = slices.Clone(s.Purchases)
	l.sales = slices.Clone(s.Sales)
	if l.laptops == nil {
		l.laptops = make([]StockItem, 0)
	}
	if l.purchases == nil {
		l.purchases = make([]PurchaseRecord, 0)
	}
	if l.sales == nil {
		l.sales = make([]SaleRecord, 0)
	}
}
