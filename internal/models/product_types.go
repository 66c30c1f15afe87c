package models

import "time"

// Product type values used by the catalog screens.
const (
	ProductTypeFood     = "Food"
	ProductTypeVitamin  = "Vitamin"
	ProductTypeSupplies = "Pet Supplies"
)

// Product is the model for the 'products' table.
// The catalog is read-only for customers; 'count' is mutated only through
// the inventory reconciler. Rows are never deleted.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Slug        string    `json:"slug" db:"slug"`
	Name        string    `json:"name" db:"name"`
	Brand       string    `json:"brand" db:"brand"`
	ProductType string    `json:"productType" db:"product_type"`
	Price       float64   `json:"price" db:"price"`
	Cost        float64   `json:"cost" db:"cost"`
	Count       int       `json:"count" db:"count"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Profit is derived, never stored.
func (p Product) Profit() float64 {
	return p.Price - p.Cost
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Count > 0
}
