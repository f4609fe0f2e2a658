package usecase

import (
	"context"

	"github.com/tomekh/stockledger/internal/domain"
)

// InventoryUseCase builds the merged purchase/sale feed for a product.
// The feed is recomputed fresh on every call; there is no cursor or
// streaming contract.
type InventoryUseCase struct {
	productRepo  ProductRepository
	purchaseRepo PurchaseRepository
	saleRepo     SaleRepository
}

// NewInventoryUseCase creates a new InventoryUseCase.
func NewInventoryUseCase(
	productRepo ProductRepository,
	purchaseRepo PurchaseRepository,
	saleRepo SaleRepository,
) *InventoryUseCase {
	return &InventoryUseCase{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
	}
}

// BuildFeed returns the chronological union of a product's purchase and
// sale entries. A product with no entries yields an empty feed, not an
// error.
func (uc *InventoryUseCase) BuildFeed(ctx context.Context, productID string) ([]domain.LedgerRow, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	purchases, err := uc.purchaseRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	sales, err := uc.saleRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return domain.MergeFeed(product, purchases, sales), nil
}
