package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tomekh/stockledger/internal/domain"
)

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductFromDomain converts a domain product to a response.
func ProductFromDomain(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ProductsFromDomain converts domain products to responses.
func ProductsFromDomain(products []*domain.Product) []*ProductResponse {
	result := make([]*ProductResponse, len(products))
	for i, p := range products {
		result[i] = ProductFromDomain(p)
	}
	return result
}

// PurchaseResponse represents a purchase entry in API responses.
type PurchaseResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Quantity     int64     `json:"quantity"`
	PurchaseDate time.Time `json:"purchase_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// PurchaseFromDomain converts a domain purchase entry to a response.
func PurchaseFromDomain(e *domain.PurchaseEntry) *PurchaseResponse {
	return &PurchaseResponse{
		ID:           e.ID,
		ProductID:    e.ProductID,
		Quantity:     e.Quantity,
		PurchaseDate: e.PurchaseDate,
		CreatedAt:    e.CreatedAt,
	}
}

// PurchasesFromDomain converts domain purchase entries to responses.
func PurchasesFromDomain(entries []*domain.PurchaseEntry) []*PurchaseResponse {
	result := make([]*PurchaseResponse, len(entries))
	for i, e := range entries {
		result[i] = PurchaseFromDomain(e)
	}
	return result
}

// SaleResponse represents a sale entry in API responses.
type SaleResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	SaleDate  time.Time `json:"sale_date"`
	CreatedAt time.Time `json:"created_at"`
}

// SaleFromDomain converts a domain sale entry to a response.
func SaleFromDomain(e *domain.SaleEntry) *SaleResponse {
	return &SaleResponse{
		ID:        e.ID,
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
		SaleDate:  e.SaleDate,
		CreatedAt: e.CreatedAt,
	}
}

// SalesFromDomain converts domain sale entries to responses.
func SalesFromDomain(entries []*domain.SaleEntry) []*SaleResponse {
	result := make([]*SaleResponse, len(entries))
	for i, e := range entries {
		result[i] = SaleFromDomain(e)
	}
	return result
}

// StockResponse represents current stock in API responses.
type StockResponse struct {
	ProductID string `json:"product_id"`
	Stock     int64  `json:"stock"`
}

// FeedRowResponse represents one row of the inventory feed.
type FeedRowResponse struct {
	ID        string          `json:"id"`
	Quantity  int64           `json:"quantity"`
	Type      string          `json:"type"`
	Date      time.Time       `json:"date"`
	UnitPrice decimal.Decimal `json:"unit"`
}

// FeedFromDomain converts ledger rows to responses.
func FeedFromDomain(rows []domain.LedgerRow) []*FeedRowResponse {
	result := make([]*FeedRowResponse, len(rows))
	for i, row := range rows {
		result[i] = &FeedRowResponse{
			ID:        row.ID,
			Quantity:  row.Quantity,
			Type:      string(row.Type),
			Date:      row.Date,
			UnitPrice: row.UnitPrice,
		}
	}
	return result
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// ListProductsResponse wraps a page of products.
type ListProductsResponse struct {
	Products []*ProductResponse `json:"products"`
	Total    int64              `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// StockExceededResponse carries the admission check rejection details.
type StockExceededResponse struct {
	Error        string `json:"error"`
	ProductID    string `json:"product_id"`
	Attempted    int64  `json:"attempted"`
	CurrentStock int64  `json:"current_stock"`
}
