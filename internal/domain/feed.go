package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRowType discriminates purchase rows from sale rows in the feed.
type LedgerRowType string

const (
	RowTypePurchase LedgerRowType = "purchase"
	RowTypeSale     LedgerRowType = "sale"
)

// LedgerRow is the generic projection of a purchase or sale entry,
// independent of how either is persisted.
type LedgerRow struct {
	ID        string
	Quantity  int64
	Type      LedgerRowType
	Date      time.Time
	UnitPrice decimal.Decimal
}

// ProjectPurchase maps a purchase entry into a ledger row priced at the
// product's current unit price.
func ProjectPurchase(e *PurchaseEntry, unitPrice decimal.Decimal) LedgerRow {
	return LedgerRow{
		ID:        e.ID,
		Quantity:  e.Quantity,
		Type:      RowTypePurchase,
		Date:      e.PurchaseDate,
		UnitPrice: unitPrice,
	}
}

// ProjectSale maps a sale entry into a ledger row.
func ProjectSale(e *SaleEntry, unitPrice decimal.Decimal) LedgerRow {
	return LedgerRow{
		ID:        e.ID,
		Quantity:  e.Quantity,
		Type:      RowTypeSale,
		Date:      e.SaleDate,
		UnitPrice: unitPrice,
	}
}

// MergeFeed concatenates projected purchase and sale rows into one
// sequence ordered ascending by date. Equal timestamps are broken by
// type (purchases first) and then by id, so the output is
// deterministic for any interleaving of inserts.
func MergeFeed(product *Product, purchases []*PurchaseEntry, sales []*SaleEntry) []LedgerRow {
	rows := make([]LedgerRow, 0, len(purchases)+len(sales))

	for _, p := range purchases {
		rows = append(rows, ProjectPurchase(p, product.Price))
	}

	for _, s := range sales {
		rows = append(rows, ProjectSale(s, product.Price))
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		if rows[i].Type != rows[j].Type {
			return rows[i].Type == RowTypePurchase
		}
		return rows[i].ID < rows[j].ID
	})

	return rows
}
