package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/infrastructure/postgres/generated"
	"github.com/tomekh/stockledger/internal/usecase"
)

// SaleRepository implements usecase.SaleRepository.
type SaleRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewSaleRepository creates a new SaleRepository.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends a sale entry within the admission transaction.
func (r *SaleRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.SaleEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateSale(ctx, generated.CreateSaleParams{
		ID:        entry.ID,
		ProductID: entry.ProductID,
		Quantity:  entry.Quantity,
		SaleDate:  timeToPgTimestamptz(entry.SaleDate),
		CreatedAt: timeToPgTimestamptz(entry.CreatedAt),
	})

	return err
}

// ListByProduct lists all sale entries for a product in date order.
func (r *SaleRepository) ListByProduct(ctx context.Context, productID string) ([]*domain.SaleEntry, error) {
	rows, err := r.queries.ListSalesByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.SaleEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToSale(row))
	}

	return entries, nil
}

// SumQuantityByProduct returns the total sold quantity for a product.
func (r *SaleRepository) SumQuantityByProduct(ctx context.Context, productID string) (int64, error) {
	return r.queries.SumSaleQuantityByProduct(ctx, productID)
}

// SumQuantityByProductTx returns the total sold quantity within a transaction.
func (r *SaleRepository) SumQuantityByProductTx(ctx context.Context, tx usecase.Transaction, productID string) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.SumSaleQuantityByProduct(ctx, productID)
}

// CountByProduct returns the number of sale entries for a product.
func (r *SaleRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	return r.queries.CountSalesByProduct(ctx, productID)
}

func rowToSale(row generated.Sale) *domain.SaleEntry {
	return &domain.SaleEntry{
		ID:        row.ID,
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		SaleDate:  row.SaleDate.Time,
		CreatedAt: row.CreatedAt.Time,
	}
}
