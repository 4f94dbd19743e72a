package stockbook

import (
	"strconv"
	"strings"
	"time"
)

// The presentation layer supplies raw string input (form fields, CLI flags).
// Forms parse and validate those strings into typed commands, so every entry
// point into the ledger goes through the same checks.

// ItemForm is the raw input for creating or editing a stock item.
// Prices may be empty, meaning "unset" (zero).
type ItemForm struct {
	Brand          string
	Model          string
	Specifications string
	PurchasePrice  string
	SellingPrice   string
	Quantity       string
	MinStockLevel  string
}

func (f ItemForm) fields() (itemFields, error) {
	var out itemFields
	var err error
	out.Brand = strings.TrimSpace(f.Brand)
	out.Model = strings.TrimSpace(f.Model)
	out.Specifications = strings.TrimSpace(f.Specifications)
	if out.Quantity, err = parseCount("quantity", f.Quantity); err != nil {
		return out, err
	}
	if out.MinStockLevel, err = parseCount("minStockLevel", f.MinStockLevel); err != nil {
		return out, err
	}
	if out.PurchasePrice, err = parsePrice("purchasePrice", f.PurchasePrice); err != nil {
		return out, err
	}
	if out.SellingPrice, err = parsePrice("sellingPrice", f.SellingPrice); err != nil {
		return out, err
	}
	return out, nil
}

// Add parses the form into an AddItem command.
func (f ItemForm) Add() (AddItem, error) {
	fields, err := f.fields()
	return AddItem{itemFields: fields}, err
}

// Update parses the form into an UpdateItem command for the given id.
func (f ItemForm) Update(id string) (UpdateItem, error) {
	fields, err := f.fields()
	return UpdateItem{ID: id, itemFields: fields}, err
}

// PurchaseForm is the raw input for recording a purchase.
type PurchaseForm struct {
	LaptopID  string
	Quantity  string
	UnitPrice string
	Supplier  string
	Date      string // empty means now
}

// Command parses the form into a RecordPurchase command.
func (f PurchaseForm) Command() (RecordPurchase, error) {
	cmd := RecordPurchase{LaptopID: strings.TrimSpace(f.LaptopID), Supplier: strings.TrimSpace(f.Supplier)}
	var err error
	if cmd.Quantity, err = parseCount("quantity", f.Quantity); err != nil {
		return cmd, err
	}
	if cmd.UnitPrice, err = parsePrice("unitPrice", f.UnitPrice); err != nil {
		return cmd, err
	}
	if cmd.Date, err = parseDate("date", f.Date); err != nil {
		return cmd, err
	}
	return cmd, nil
}

// SaleForm is the raw input for recording a sale.
type SaleForm struct {
	LaptopID  string
	Quantity  string
	UnitPrice string
	Customer  string
	Date      string // empty means now
}

// Command parses the form into a RecordSale command.
func (f SaleForm) Command() (RecordSale, error) {
	cmd := RecordSale{LaptopID: strings.TrimSpace(f.LaptopID), Customer: strings.TrimSpace(f.Customer)}
	var err error
	if cmd.Quantity, err = parseCount("quantity", f.Quantity); err != nil {
		return cmd, err
	}
	if cmd.UnitPrice, err = parsePrice("unitPrice", f.UnitPrice); err != nil {
		return cmd, err
	}
	if cmd.Date, err = parseDate("date", f.Date); err != nil {
		return cmd, err
	}
	return cmd, nil
}

// parseCount parses a non-negative integer. Empty means 0.
func parseCount(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidf(field, "not an integer: %q", s)
	}
	if n < 0 {
		return 0, invalidf(field, "must not be negative, got %d", n)
	}
	return n, nil
}

// parsePrice parses a non-negative decimal amount. Empty means 0 ("unset").
func parsePrice(field, s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, nil
	}
	m, err := ParseMoney(s)
	if err != nil {
		return Money{}, invalidf(field, "not a number: %q", s)
	}
	if m.IsNegative() {
		return Money{}, invalidf(field, "must not be negative, got %s", m)
	}
	return m, nil
}

// parseDate accepts "2006-01-02" or RFC 3339. Empty means the zero time,
// which commands resolve to now at apply time.
func parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, invalidf(field, "not a date: %q", s)
}
