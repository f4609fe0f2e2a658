package domain

import (
	"errors"
	"fmt"
)

var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")
	ErrProductInUse    = errors.New("product has ledger entries and cannot be deleted")

	// Ledger errors
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrStockExceeded   = errors.New("sale quantity exceeds current stock")
)

// StockExceededError is returned when a sale would drive stock below
// zero. It carries the offending values so the boundary can surface
// them to the client.
type StockExceededError struct {
	ProductID    string
	Attempted    int64
	CurrentStock int64
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("sale of %d exceeds current stock %d for product %s",
		e.Attempted, e.CurrentStock, e.ProductID)
}

// Is makes errors.Is(err, ErrStockExceeded) match.
func (e *StockExceededError) Is(target error) bool {
	return target == ErrStockExceeded
}
