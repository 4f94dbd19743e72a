package stockbook

import (
	"time"

	"github.com/google/uuid"
)

// StockItem is a laptop model tracked in the inventory.
//
// Quantity is mutated directly by edits and implicitly by purchase and sale
// records. PurchasePrice and SellingPrice may be zero, meaning "unset".
type StockItem struct {
	ID             string    `json:"id"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Specifications string    `json:"specifications"`
	PurchasePrice  Money     `json:"purchasePrice"`
	SellingPrice   Money     `json:"sellingPrice"`
	Quantity       int       `json:"quantity"`
	MinStockLevel  int       `json:"minStockLevel"`
	DateAdded      time.Time `json:"dateAdded"`
}

// Label returns the human readable name of the item, e.g. "Dell XPS 13".
func (it StockItem) Label() string { return it.Brand + " " + it.Model }

// IsLowStock reports whether the quantity is at or below the minimum stock level.
func (it StockItem) IsLowStock() bool { return it.Quantity <= it.MinStockLevel }

// PurchaseRecord is an immutable record of stock bought from a supplier.
// Creating one increases the referenced item's quantity; records are never
// edited or deleted afterwards.
type PurchaseRecord struct {
	ID          string    `json:"id"`
	LaptopID    string    `json:"laptopId"`
	Quantity    int       `json:"quantity"`
	UnitPrice   Money     `json:"unitPrice"`
	TotalAmount Money     `json:"totalAmount"`
	Supplier    string    `json:"supplier"`
	Date        time.Time `json:"date"`
}

// SaleRecord is an immutable record of stock sold to a customer.
// Creating one decreases the referenced item's quantity, guarded against
// driving it negative.
type SaleRecord struct {
	ID          string    `json:"id"`
	LaptopID    string    `json:"laptopId"`
	Quantity    int       `json:"quantity"`
	UnitPrice   Money     `json:"unitPrice"`
	TotalAmount Money     `json:"totalAmount"`
	Customer    string    `json:"customer"`
	Date        time.Time `json:"date"`
}

// newID returns a fresh collision-resistant record identity.
func newID() string { return uuid.NewString() }
