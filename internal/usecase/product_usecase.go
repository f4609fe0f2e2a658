package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tomekh/stockledger/internal/domain"
)

// ProductUseCase handles product business logic.
type ProductUseCase struct {
	productRepo  ProductRepository
	purchaseRepo PurchaseRepository
	saleRepo     SaleRepository
	idGen        IDGenerator
}

// NewProductUseCase creates a new ProductUseCase.
func NewProductUseCase(
	productRepo ProductRepository,
	purchaseRepo PurchaseRepository,
	saleRepo SaleRepository,
	idGen IDGenerator,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		idGen:        idGen,
	}
}

// CreateProductInput represents input for creating a product.
type CreateProductInput struct {
	Name  string
	Price decimal.Decimal
}

// CreateProduct creates a new product.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if err := domain.ValidateProductName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidatePrice(input.Price); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	product := &domain.Product{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Price:     input.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// UpdateProductInput represents input for updating a product.
type UpdateProductInput struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// UpdateProduct applies an administrative edit to a product.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, input UpdateProductInput) (*domain.Product, error) {
	if err := domain.ValidateProductName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidatePrice(input.Price); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Price = input.Price
	product.UpdatedAt = time.Now().UTC()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product. Deletion is refused while any ledger
// entry still references the product; the schema enforces the same rule
// with ON DELETE RESTRICT.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}

	purchases, err := uc.purchaseRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}

	sales, err := uc.saleRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}

	if purchases > 0 || sales > 0 {
		return domain.ErrProductInUse
	}

	return uc.productRepo.Delete(ctx, id)
}

// ListProductsInput represents input for listing products.
type ListProductsInput struct {
	Limit  int
	Offset int
}

// ListProducts lists products with pagination.
func (uc *ProductUseCase) ListProducts(ctx context.Context, input ListProductsInput) ([]*domain.Product, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.productRepo.List(ctx, limit, offset)
}
