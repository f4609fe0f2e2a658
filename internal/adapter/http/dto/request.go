package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tomekh/stockledger/internal/usecase"
)

// CreateProductRequest represents a request to create a product.
type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateProductRequest) ToUseCaseInput() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		Name:  r.Name,
		Price: r.Price,
	}
}

// UpdateProductRequest represents a request to update a product.
type UpdateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateProductRequest) ToUseCaseInput(id string) usecase.UpdateProductInput {
	return usecase.UpdateProductInput{
		ID:    id,
		Name:  r.Name,
		Price: r.Price,
	}
}

// RecordPurchaseRequest represents a request to record a purchase entry.
type RecordPurchaseRequest struct {
	ProductID    string     `json:"product_id"`
	Quantity     int64      `json:"quantity"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordPurchaseRequest) ToUseCaseInput() usecase.RecordPurchaseInput {
	return usecase.RecordPurchaseInput{
		ProductID:    r.ProductID,
		Quantity:     r.Quantity,
		PurchaseDate: r.PurchaseDate,
	}
}

// RecordSaleRequest represents a request to record a sale entry.
type RecordSaleRequest struct {
	ProductID string     `json:"product_id"`
	Quantity  int64      `json:"quantity"`
	SaleDate  *time.Time `json:"sale_date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordSaleRequest) ToUseCaseInput() usecase.RecordSaleInput {
	return usecase.RecordSaleInput{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		SaleDate:  r.SaleDate,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest represents a request to create a user.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
