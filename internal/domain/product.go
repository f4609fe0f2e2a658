package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalogued item whose stock is tracked by the ledger.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
