package stockbook

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// CommandType is a typed string for identifying ledger commands.
type CommandType string

// Command types used for identifying ledger mutations.
const (
	CmdAddItem        CommandType = "add-item"
	CmdUpdateItem     CommandType = "update-item"
	CmdDeleteItem     CommandType = "delete-item"
	CmdRecordPurchase CommandType = "record-purchase"
	CmdRecordSale     CommandType = "record-sale"
)

// Command is a tagged state transition processed by (*Ledger).Apply.
// Validate must detect every failure condition before apply runs, so that a
// rejected command produces no partial mutation.
type Command interface {
	What() CommandType
	Validate(l *Ledger) error
	apply(l *Ledger)
}

// itemFields groups the mutable fields shared by AddItem and UpdateItem.
type itemFields struct {
	Brand          string
	Model          string
	Specifications string
	PurchasePrice  Money
	SellingPrice   Money
	Quantity       int
	MinStockLevel  int
}

func (f itemFields) validate() error {
	if strings.TrimSpace(f.Brand) == "" {
		return invalidf("brand", "required field is empty")
	}
	if strings.TrimSpace(f.Model) == "" {
		return invalidf("model", "required field is empty")
	}
	if strings.TrimSpace(f.Specifications) == "" {
		return invalidf("specifications", "required field is empty")
	}
	if f.Quantity < 0 {
		return invalidf("quantity", "must not be negative, got %d", f.Quantity)
	}
	if f.MinStockLevel < 0 {
		return invalidf("minStockLevel", "must not be negative, got %d", f.MinStockLevel)
	}
	if f.PurchasePrice.IsNegative() {
		return invalidf("purchasePrice", "must not be negative, got %s", f.PurchasePrice)
	}
	if f.SellingPrice.IsNegative() {
		return invalidf("sellingPrice", "must not be negative, got %s", f.SellingPrice)
	}
	return nil
}

// AddItem creates a new stock item with a fresh identity.
// Prices may be zero, meaning "unset".
type AddItem struct {
	itemFields
}

func (c AddItem) What() CommandType { return CmdAddItem }

// Validate checks the required fields and ranges of the new item.
func (c AddItem) Validate(l *Ledger) error {
	return c.itemFields.validate()
}

func (c AddItem) apply(l *Ledger) {
	l.laptops = append(l.laptops, StockItem{
		ID:             newID(),
		Brand:          c.Brand,
		Model:          c.Model,
		Specifications: c.Specifications,
		PurchasePrice:  c.PurchasePrice,
		SellingPrice:   c.SellingPrice,
		Quantity:       c.Quantity,
		MinStockLevel:  c.MinStockLevel,
		DateAdded:      time.Now(),
	})
}

// UpdateItem replaces a stock item's mutable fields, keeping its id and
// original dateAdded.
type UpdateItem struct {
	ID string
	itemFields
}

func (c UpdateItem) What() CommandType { return CmdUpdateItem }

// Validate checks that the item exists and the replacement fields are valid.
func (c UpdateItem) Validate(l *Ledger) error {
	if l.Item(c.ID) == nil {
		return fmt.Errorf("cannot update item %q: %w", c.ID, ErrNotFound)
	}
	return c.itemFields.validate()
}

func (c UpdateItem) apply(l *Ledger) {
	i := l.itemIndex(c.ID)
	it := &l.laptops[i]
	it.Brand = c.Brand
	it.Model = c.Model
	it.Specifications = c.Specifications
	it.PurchasePrice = c.PurchasePrice
	it.SellingPrice = c.SellingPrice
	it.Quantity = c.Quantity
	it.MinStockLevel = c.MinStockLevel
}

// DeleteItem removes a stock item from the collection. Purchase and sale
// records referencing it are kept as orphaned references, acting as the raw
// audit trail.
type DeleteItem struct {
	ID string
}

func (c DeleteItem) What() CommandType { return CmdDeleteItem }

// Validate checks that the item exists.
func (c DeleteItem) Validate(l *Ledger) error {
	if l.Item(c.ID) == nil {
		return fmt.Errorf("cannot delete item %q: %w", c.ID, ErrNotFound)
	}
	return nil
}

func (c DeleteItem) apply(l *Ledger) {
	i := l.itemIndex(c.ID)
	l.laptops = slices.Delete(l.laptops, i, i+1)
}

// RecordPurchase appends an immutable purchase record and increments the
// referenced item's quantity. TotalAmount is fixed at quantity × unitPrice
// at recording time and never recomputed.
type RecordPurchase struct {
	LaptopID  string
	Quantity  int
	UnitPrice Money
	Supplier  string
	Date      time.Time // zero means now
}

func (c RecordPurchase) What() CommandType { return CmdRecordPurchase }

// Validate checks the referenced item and the quantity and price ranges.
func (c RecordPurchase) Validate(l *Ledger) error {
	if l.Item(c.LaptopID) == nil {
		return fmt.Errorf("cannot record purchase for item %q: %w", c.LaptopID, ErrNotFound)
	}
	if c.Quantity < 1 {
		return invalidf("quantity", "must be at least 1, got %d", c.Quantity)
	}
	if c.UnitPrice.IsNegative() {
		return invalidf("unitPrice", "must not be negative, got %s", c.UnitPrice)
	}
	return nil
}

func (c RecordPurchase) apply(l *Ledger) {
	date := c.Date
	if date.IsZero() {
		date = time.Now()
	}
	l.purchases = append(l.purchases, PurchaseRecord{
		ID:          newID(),
		LaptopID:    c.LaptopID,
		Quantity:    c.Quantity,
		UnitPrice:   c.UnitPrice,
		TotalAmount: c.UnitPrice.Mul(c.Quantity),
		Supplier:    c.Supplier,
		Date:        date,
	})
	l.laptops[l.itemIndex(c.LaptopID)].Quantity += c.Quantity
}

// RecordSale appends an immutable sale record and decrements the referenced
// item's quantity. A sale exceeding the current stock is rejected with
// ErrInsufficientStock and mutates nothing.
type RecordSale struct {
	LaptopID  string
	Quantity  int
	UnitPrice Money
	Customer  string
	Date      time.Time // zero means now
}

func (c RecordSale) What() CommandType { return CmdRecordSale }

// Validate checks the referenced item, the quantity and price ranges, and
// the available stock.
func (c RecordSale) Validate(l *Ledger) error {
	it := l.Item(c.LaptopID)
	if it == nil {
		return fmt.Errorf("cannot record sale for item %q: %w", c.LaptopID, ErrNotFound)
	}
	if c.Quantity < 1 {
		return invalidf("quantity", "must be at least 1, got %d", c.Quantity)
	}
	if c.UnitPrice.IsNegative() {
		return invalidf("unitPrice", "must not be negative, got %s", c.UnitPrice)
	}
	if it.Quantity < c.Quantity {
		return fmt.Errorf("cannot sell %d of %s, only %d in stock: %w",
			c.Quantity, it.Label(), it.Quantity, ErrInsufficientStock)
	}
	return nil
}

func (c RecordSale) apply(l *Ledger) {
	date := c.Date
	if date.IsZero() {
		date = time.Now()
	}
	l.sales = append(l.sales, SaleRecord{
		ID:          newID(),
		LaptopID:    c.LaptopID,
		Quantity:    c.Quantity,
		UnitPrice:   c.UnitPrice,
		TotalAmount: c.UnitPrice.Mul(c.Quantity),
		Customer:    c.Customer,
		Date:        date,
	})
	l.laptops[l.itemIndex(c.LaptopID)].Quantity -= c.Quantity
}
