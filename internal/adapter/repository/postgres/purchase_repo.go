package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/infrastructure/postgres/generated"
	"github.com/tomekh/stockledger/internal/usecase"
)

// PurchaseRepository implements usecase.PurchaseRepository.
type PurchaseRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPurchaseRepository creates a new PurchaseRepository.
func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends a purchase entry.
func (r *PurchaseRepository) Create(ctx context.Context, entry *domain.PurchaseEntry) error {
	_, err := r.queries.CreatePurchase(ctx, generated.CreatePurchaseParams{
		ID:           entry.ID,
		ProductID:    entry.ProductID,
		Quantity:     entry.Quantity,
		PurchaseDate: timeToPgTimestamptz(entry.PurchaseDate),
		CreatedAt:    timeToPgTimestamptz(entry.CreatedAt),
	})

	return err
}

// ListByProduct lists all purchase entries for a product in date order.
func (r *PurchaseRepository) ListByProduct(ctx context.Context, productID string) ([]*domain.PurchaseEntry, error) {
	rows, err := r.queries.ListPurchasesByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.PurchaseEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToPurchase(row))
	}

	return entries, nil
}

// SumQuantityByProduct returns the total purchased quantity for a product.
func (r *PurchaseRepository) SumQuantityByProduct(ctx context.Context, productID string) (int64, error) {
	return r.queries.SumPurchaseQuantityByProduct(ctx, productID)
}

// SumQuantityByProductTx returns the total purchased quantity within a transaction.
func (r *PurchaseRepository) SumQuantityByProductTx(ctx context.Context, tx usecase.Transaction, productID string) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.SumPurchaseQuantityByProduct(ctx, productID)
}

// CountByProduct returns the number of purchase entries for a product.
func (r *PurchaseRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	return r.queries.CountPurchasesByProduct(ctx, productID)
}

func rowToPurchase(row generated.Purchase) *domain.PurchaseEntry {
	return &domain.PurchaseEntry{
		ID:           row.ID,
		ProductID:    row.ProductID,
		Quantity:     row.Quantity,
		PurchaseDate: row.PurchaseDate.Time,
		CreatedAt:    row.CreatedAt.Time,
	}
}
