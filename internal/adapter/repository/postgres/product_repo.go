package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/infrastructure/postgres/generated"
	"github.com/tomekh/stockledger/internal/usecase"
)

// ProductRepository implements usecase.ProductRepository.
type ProductRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new product.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	_, err := r.queries.CreateProduct(ctx, generated.CreateProductParams{
		ID:        product.ID,
		Name:      product.Name,
		Price:     decimalToNumeric(product.Price),
		CreatedAt: timeToPgTimestamptz(product.CreatedAt),
		UpdatedAt: timeToPgTimestamptz(product.UpdatedAt),
	})

	return err
}

// GetByID retrieves a product by ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row, err := r.queries.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}

		return nil, err
	}

	return rowToProduct(row), nil
}

// GetByIDForUpdate retrieves a product by ID with a FOR UPDATE lock.
func (r *ProductRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Product, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetProductByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}

		return nil, err
	}

	return rowToProduct(row), nil
}

// Update updates a product's name and price.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.queries.UpdateProduct(ctx, generated.UpdateProductParams{
		ID:        product.ID,
		Name:      product.Name,
		Price:     decimalToNumeric(product.Price),
		UpdatedAt: timeToPgTimestamptz(product.UpdatedAt),
	})
}

// Delete removes a product.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteProduct(ctx, id)
}

// List lists products with pagination.
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*domain.Product, error) {
	rows, err := r.queries.ListProducts(ctx, generated.ListProductsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, rowToProduct(row))
	}

	return products, nil
}

func rowToProduct(row generated.Product) *domain.Product {
	return &domain.Product{
		ID:        row.ID,
		Name:      row.Name,
		Price:     numericToDecimal(row.Price),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
