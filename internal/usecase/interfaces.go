package usecase

import (
	"context"
	"time"

	"github.com/tomekh/stockledger/internal/domain"
)

// ProductRepository defines data access for products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Product, error)
}

// PurchaseRepository defines data access for purchase entries.
type PurchaseRepository interface {
	Create(ctx context.Context, entry *domain.PurchaseEntry) error
	ListByProduct(ctx context.Context, productID string) ([]*domain.PurchaseEntry, error)
	SumQuantityByProduct(ctx context.Context, productID string) (int64, error)
	SumQuantityByProductTx(ctx context.Context, tx Transaction, productID string) (int64, error)
	CountByProduct(ctx context.Context, productID string) (int64, error)
}

// SaleRepository defines data access for sale entries. Creation always
// happens inside the admission transaction.
type SaleRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.SaleEntry) error
	ListByProduct(ctx context.Context, productID string) ([]*domain.SaleEntry, error)
	SumQuantityByProduct(ctx context.Context, productID string) (int64, error)
	SumQuantityByProductTx(ctx context.Context, tx Transaction, productID string) (int64, error)
	CountByProduct(ctx context.Context, productID string) (int64, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
