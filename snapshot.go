package stockbook

import "slices"

// Snapshot is a complete, consistent, point-in-time copy of the ledger's
// three collections. It is the unit of persistence, import, and export, and
// the input to every derived analytics function.
type Snapshot struct {
	Laptops   []StockItem      `json:"laptops"`
	Purchases []PurchaseRecord `json:"purchases"`
	Sales     []SaleRecord     `json:"sales"`
}

// Item returns the stock item with this id, or nil. Purchase and sale
// records may reference ids of deleted items; callers must tolerate nil.
func (s *Snapshot) Item(id string) *StockItem {
	for i := range s.Laptops {
		if s.Laptops[i].ID == id {
			return &s.Laptops[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Laptops:   slices.Clone(s.Laptops),
		Purchases: slices.Clone(s.Purchases),
		Sales:     slices.Clone(s.Sales),
	}
}

// normalize replaces nil collections with empty ones, so that a snapshot
// decoded from a file with absent keys behaves like an empty ledger.
func (s *Snapshot) normalize() {
	if s.Laptops == nil {
		s.Laptops = make([]StockItem, 0)
	}
	if s.Purchases == nil {
		s.Purchases = make([]PurchaseRecord, 0)
	}
	if s.Sales == nil {
		s.Sales = make([]SaleRecord, 0)
	}
}
