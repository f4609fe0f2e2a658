package usecase

import (
	"context"
	"time"

	"github.com/tomekh/stockledger/internal/domain"
)

// SaleUseCase records sale entries. Every sale passes the admission
// check inside a transaction that holds a row lock on the product, so
// two concurrent sales of the same product serialize and stock can
// never go negative.
type SaleUseCase struct {
	txManager    TransactionManager
	retrier      Retrier
	productRepo  ProductRepository
	purchaseRepo PurchaseRepository
	saleRepo     SaleRepository
	idGen        IDGenerator
	cache        Cache
}

// NewSaleUseCase creates a new SaleUseCase. cache may be nil.
func NewSaleUseCase(
	txManager TransactionManager,
	retrier Retrier,
	productRepo ProductRepository,
	purchaseRepo PurchaseRepository,
	saleRepo SaleRepository,
	idGen IDGenerator,
	cache Cache,
) *SaleUseCase {
	return &SaleUseCase{
		txManager:    txManager,
		retrier:      retrier,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		idGen:        idGen,
		cache:        cache,
	}
}

// RecordSaleInput represents input for recording a sale.
type RecordSaleInput struct {
	SaleDate  *time.Time
	ProductID string
	Quantity  int64
}

// RecordSale admits and appends a sale entry. A rejected admission
// leaves the ledger untouched and returns a StockExceededError.
func (uc *SaleUseCase) RecordSale(ctx context.Context, input RecordSaleInput) (*domain.SaleEntry, error) {
	if err := domain.ValidateQuantity(input.Quantity); err != nil {
		return nil, err
	}

	var sale *domain.SaleEntry

	op := func() error {
		entry, err := uc.recordSaleTx(ctx, input)
		if err != nil {
			return err
		}
		sale = entry
		return nil
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, op)
	} else {
		err = op()
	}
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, stockCacheKey(input.ProductID))
	}

	return sale, nil
}

func (uc *SaleUseCase) recordSaleTx(ctx context.Context, input RecordSaleInput) (*domain.SaleEntry, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock the product row so concurrent admissions for the same
	// product serialize on the check-then-insert sequence.
	if _, err := uc.productRepo.GetByIDForUpdate(ctx, tx, input.ProductID); err != nil {
		return nil, err
	}

	stock, err := computeStockTx(ctx, tx, uc.purchaseRepo, uc.saleRepo, input.ProductID)
	if err != nil {
		return nil, err
	}

	if input.Quantity > stock {
		return nil, &domain.StockExceededError{
			ProductID:    input.ProductID,
			Attempted:    input.Quantity,
			CurrentStock: stock,
		}
	}

	now := time.Now().UTC()

	saleDate := now
	if input.SaleDate != nil {
		saleDate = input.SaleDate.UTC()
	}

	sale := &domain.SaleEntry{
		ID:        uc.idGen.Generate(),
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		SaleDate:  saleDate,
		CreatedAt: now,
	}

	if err := uc.saleRepo.Create(ctx, tx, sale); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return sale, nil
}

// ListSalesByProduct lists sale entries for a product.
func (uc *SaleUseCase) ListSalesByProduct(ctx context.Context, productID string) ([]*domain.SaleEntry, error) {
	return uc.saleRepo.ListByProduct(ctx, productID)
}
