package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// StockCacheTTL is how long a computed stock value may be served from
	// cache. The admission check never reads the cache.
	StockCacheTTL = 30 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)

// stockCacheKey builds the cache key for a product's stock value.
func stockCacheKey(productID string) string {
	return "stock:" + productID
}
