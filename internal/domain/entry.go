package domain

import "time"

// PurchaseEntry represents a single stock increase. Entries are
// append-only: once written they are never mutated or deleted.
type PurchaseEntry struct {
	ID           string
	ProductID    string
	Quantity     int64
	PurchaseDate time.Time
	CreatedAt    time.Time
}

// SaleEntry represents a single stock decrease. A sale entry exists
// only if the admission check passed at creation time.
type SaleEntry struct {
	ID        string
	ProductID string
	Quantity  int64
	SaleDate  time.Time
	CreatedAt time.Time
}
