package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/usecase"
	"github.com/tomekh/stockledger/internal/usecase/mocks"
)

func newProductFixture() (*usecase.ProductUseCase, *mocks.MockProductRepository, *mocks.MockPurchaseRepository, *mocks.MockSaleRepository) {
	productRepo := mocks.NewMockProductRepository()
	purchaseRepo := mocks.NewMockPurchaseRepository()
	saleRepo := mocks.NewMockSaleRepository()

	uc := usecase.NewProductUseCase(productRepo, purchaseRepo, saleRepo, mocks.NewMockIDGenerator())
	return uc, productRepo, purchaseRepo, saleRepo
}

func TestProductUseCase_CreateProduct_Success(t *testing.T) {
	t.Parallel()

	uc, productRepo, _, _ := newProductFixture()

	product, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{
		Name:  "Widget",
		Price: decimal.NewFromFloat(19.99),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if product.ID == "" {
		t.Fatal("expected product to be assigned an ID")
	}
	if product.CreatedAt.IsZero() || product.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}

	stored, err := productRepo.GetByID(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("expected product to be persisted: %v", err)
	}
	if !stored.Price.Equal(decimal.NewFromFloat(19.99)) {
		t.Fatalf("unexpected stored price: %s", stored.Price)
	}
}

func TestProductUseCase_CreateProduct_Validation(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newProductFixture()
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
		Name:  "",
		Price: decimal.NewFromInt(1),
	})
	if !errors.Is(err, domain.ErrInvalidProductName) {
		t.Fatalf("expected ErrInvalidProductName for empty name, got %v", err)
	}

	_, err = uc.CreateProduct(ctx, usecase.CreateProductInput{
		Name:  strings.Repeat("x", 256),
		Price: decimal.NewFromInt(1),
	})
	if !errors.Is(err, domain.ErrInvalidProductName) {
		t.Fatalf("expected ErrInvalidProductName for oversized name, got %v", err)
	}

	_, err = uc.CreateProduct(ctx, usecase.CreateProductInput{
		Name:  "Widget",
		Price: decimal.NewFromInt(-1),
	})
	if !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestProductUseCase_UpdateProduct(t *testing.T) {
	t.Parallel()

	uc, productRepo, _, _ := newProductFixture()
	seedProduct(t, productRepo, "prod-1")

	updated, err := uc.UpdateProduct(context.Background(), usecase.UpdateProductInput{
		ID:    "prod-1",
		Name:  "Widget Pro",
		Price: decimal.NewFromFloat(24.50),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Widget Pro" {
		t.Fatalf("expected updated name, got %s", updated.Name)
	}
	if !updated.Price.Equal(decimal.NewFromFloat(24.50)) {
		t.Fatalf("expected updated price, got %s", updated.Price)
	}
}

func TestProductUseCase_UpdateProduct_NotFound(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newProductFixture()

	_, err := uc.UpdateProduct(context.Background(), usecase.UpdateProductInput{
		ID:    "missing",
		Name:  "Widget",
		Price: decimal.NewFromInt(1),
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductUseCase_DeleteProduct_NoEntries(t *testing.T) {
	t.Parallel()

	uc, productRepo, _, _ := newProductFixture()
	seedProduct(t, productRepo, "prod-1")

	if err := uc.DeleteProduct(context.Background(), "prod-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := productRepo.GetByID(context.Background(), "prod-1"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatal("expected product to be deleted")
	}
}

func TestProductUseCase_DeleteProduct_RefusedWhileReferenced(t *testing.T) {
	t.Parallel()

	uc, productRepo, purchaseRepo, saleRepo := newProductFixture()
	ctx := context.Background()

	seedProduct(t, productRepo, "prod-1")
	err := purchaseRepo.Create(ctx, &domain.PurchaseEntry{
		ID: "purchase-1", ProductID: "prod-1", Quantity: 1,
	})
	if err != nil {
		t.Fatalf("failed to seed purchase: %v", err)
	}

	if err := uc.DeleteProduct(ctx, "prod-1"); !errors.Is(err, domain.ErrProductInUse) {
		t.Fatalf("expected ErrProductInUse with purchase entries, got %v", err)
	}

	seedProduct(t, productRepo, "prod-2")
	err = saleRepo.Create(ctx, nil, &domain.SaleEntry{
		ID: "sale-1", ProductID: "prod-2", Quantity: 1,
	})
	if err != nil {
		t.Fatalf("failed to seed sale: %v", err)
	}

	if err := uc.DeleteProduct(ctx, "prod-2"); !errors.Is(err, domain.ErrProductInUse) {
		t.Fatalf("expected ErrProductInUse with sale entries, got %v", err)
	}
}

func TestProductUseCase_ListProducts_SanitizesPagination(t *testing.T) {
	t.Parallel()

	productRepo := mocks.NewMockProductRepository()
	capturedLimit := 0
	capturedOffset := 0
	productRepo.ListFunc = func(_ context.Context, limit, offset int) ([]*domain.Product, error) {
		capturedLimit = limit
		capturedOffset = offset
		return nil, nil
	}

	uc := usecase.NewProductUseCase(
		productRepo,
		mocks.NewMockPurchaseRepository(),
		mocks.NewMockSaleRepository(),
		mocks.NewMockIDGenerator(),
	)

	if _, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Limit: -1, Offset: -1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if capturedLimit != 50 || capturedOffset != 0 {
		t.Fatalf("expected defaults 50/0, got limit=%d offset=%d", capturedLimit, capturedOffset)
	}
}
