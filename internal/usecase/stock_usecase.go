package usecase

import (
	"context"
	"strconv"
)

// StockUseCase computes current stock for a product from its ledger
// entries. It performs no clamping: the reported value is the raw
// arithmetic result.
type StockUseCase struct {
	productRepo  ProductRepository
	purchaseRepo PurchaseRepository
	saleRepo     SaleRepository
	cache        Cache
}

// NewStockUseCase creates a new StockUseCase. cache may be nil to
// disable the read cache.
func NewStockUseCase(
	productRepo ProductRepository,
	purchaseRepo PurchaseRepository,
	saleRepo SaleRepository,
	cache Cache,
) *StockUseCase {
	return &StockUseCase{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		cache:        cache,
	}
}

// GetStock returns the current stock for a product, verifying the
// product exists. Reads through the cache when one is configured; the
// cache is invalidated by every purchase and sale write.
func (uc *StockUseCase) GetStock(ctx context.Context, productID string) (int64, error) {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return 0, err
	}

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, stockCacheKey(productID)); err == nil {
			if stock, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
				return stock, nil
			}
		}
	}

	stock, err := uc.ComputeStock(ctx, productID)
	if err != nil {
		return 0, err
	}

	if uc.cache != nil {
		// Best effort; a failed cache write never fails the read.
		_ = uc.cache.Set(ctx, stockCacheKey(productID), strconv.FormatInt(stock, 10), StockCacheTTL)
	}

	return stock, nil
}

// ComputeStock returns total purchased minus total sold for a product.
// Products with no entries have stock 0. Existence of the product is
// the caller's concern.
func (uc *StockUseCase) ComputeStock(ctx context.Context, productID string) (int64, error) {
	purchased, err := uc.purchaseRepo.SumQuantityByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}

	sold, err := uc.saleRepo.SumQuantityByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}

	return purchased - sold, nil
}

// computeStockTx recomputes stock inside an open transaction. Used by
// the sale admission check while the product row is locked.
func computeStockTx(
	ctx context.Context,
	tx Transaction,
	purchaseRepo PurchaseRepository,
	saleRepo SaleRepository,
	productID string,
) (int64, error) {
	purchased, err := purchaseRepo.SumQuantityByProductTx(ctx, tx, productID)
	if err != nil {
		return 0, err
	}

	sold, err := saleRepo.SumQuantityByProductTx(ctx, tx, productID)
	if err != nil {
		return 0, err
	}

	return purchased - sold, nil
}
