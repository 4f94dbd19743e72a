package stockbook

import "time"

// SeedSnapshot returns the fixed starter dataset used on first run, or when
// the persisted snapshot is missing or unreadable.
func SeedSnapshot() *Snapshot {
	now := time.Now()
	return &Snapshot{
		Laptops: []StockItem{
			{
				ID:             "1",
				Brand:          "Dell",
				Model:          "XPS 13",
				Specifications: "Intel i7, 16GB RAM, 512GB SSD",
				PurchasePrice:  M(65000),
				SellingPrice:   M(75000),
				Quantity:       5,
				MinStockLevel:  2,
				DateAdded:      now,
			},
			{
				ID:             "2",
				Brand:          "HP",
				Model:          "Pavilion 15",
				Specifications: "Intel i5, 8GB RAM, 256GB SSD",
				PurchasePrice:  M(45000),
				SellingPrice:   M(52000),
				Quantity:       8,
				MinStockLevel:  3,
				DateAdded:      now,
			},
			{
				ID:             "3",
				Brand:          "Lenovo",
				Model:          "ThinkPad X1",
				Specifications: "Intel i7, 32GB RAM, 1TB SSD",
				PurchasePrice:  M(85000),
				SellingPrice:   M(95000),
				Quantity:       3,
				MinStockLevel:  1,
				DateAdded:      now,
			},
		},
		Purchases: []PurchaseRecord{
			{
				ID:          "1",
				LaptopID:    "1",
				Quantity:    5,
				UnitPrice:   M(65000),
				TotalAmount: M(325000),
				Supplier:    "Tech Distributors",
				Date:        now,
			},
			{
				ID:          "2",
				LaptopID:    "2",
				Quantity:    8,
				UnitPrice:   M(45000),
				TotalAmount: M(360000),
				Supplier:    "Laptop World",
				Date:        now,
			},
		},
		Sales: []SaleRecord{
			{
				ID:          "1",
				LaptopID:    "1",
				Quantity:    2,
				UnitPrice:   M(75000),
				TotalAmount: M(150000),
				Customer:    "John Doe",
				Date:        now,
			},
			{
				ID:          "2",
				LaptopID:    "2",
				Quantity:    1,
				UnitPrice:   M(52000),
				TotalAmount: M(52000),
				Customer:    "Jane Smith",
				Date:        now,
			},
		},
	}
}
