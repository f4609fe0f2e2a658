package usecase

import (
	"context"
	"time"

	"github.com/tomekh/stockledger/internal/domain"
)

// PurchaseUseCase records purchase entries.
type PurchaseUseCase struct {
	productRepo  ProductRepository
	purchaseRepo PurchaseRepository
	idGen        IDGenerator
	cache        Cache
}

// NewPurchaseUseCase creates a new PurchaseUseCase. cache may be nil.
func NewPurchaseUseCase(
	productRepo ProductRepository,
	purchaseRepo PurchaseRepository,
	idGen IDGenerator,
	cache Cache,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		idGen:        idGen,
		cache:        cache,
	}
}

// RecordPurchaseInput represents input for recording a purchase.
type RecordPurchaseInput struct {
	PurchaseDate *time.Time
	ProductID    string
	Quantity     int64
}

// RecordPurchase appends a purchase entry for an existing product.
func (uc *PurchaseUseCase) RecordPurchase(ctx context.Context, input RecordPurchaseInput) (*domain.PurchaseEntry, error) {
	if err := domain.ValidateQuantity(input.Quantity); err != nil {
		return nil, err
	}

	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	purchaseDate := now
	if input.PurchaseDate != nil {
		purchaseDate = input.PurchaseDate.UTC()
	}

	purchase := &domain.PurchaseEntry{
		ID:           uc.idGen.Generate(),
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		PurchaseDate: purchaseDate,
		CreatedAt:    now,
	}

	if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, stockCacheKey(input.ProductID))
	}

	return purchase, nil
}

// ListPurchasesByProduct lists purchase entries for a product.
func (uc *PurchaseUseCase) ListPurchasesByProduct(ctx context.Context, productID string) ([]*domain.PurchaseEntry, error) {
	return uc.purchaseRepo.ListByProduct(ctx, productID)
}
