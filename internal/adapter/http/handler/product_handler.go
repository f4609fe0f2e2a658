package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomekh/stockledger/internal/adapter/http/dto"
	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/infrastructure/metrics"
	"github.com/tomekh/stockledger/internal/usecase"
)

// ProductService defines the behavior needed by ProductHandler.
type ProductService interface {
	CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, input usecase.UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]*domain.Product, error)
}

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	productUC ProductService
	metrics   *metrics.Metrics
}

// NewProductHandler creates a new ProductHandler. metrics may be nil.
func NewProductHandler(productUC ProductService, m *metrics.Metrics) *ProductHandler {
	return &ProductHandler{productUC: productUC, metrics: m}
}

// Create creates a new product.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	product, err := h.productUC.CreateProduct(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to create product")
		return
	}

	if h.metrics != nil {
		h.metrics.ProductsCreated.Inc()
	}

	writeJSON(w, http.StatusCreated, dto.ProductFromDomain(product))
}

// Get retrieves a product by ID.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing product ID", "")
		return
	}

	product, err := h.productUC.GetProduct(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get product")
		return
	}

	writeJSON(w, http.StatusOK, dto.ProductFromDomain(product))
}

// Update updates a product's name and price.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing product ID", "")
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	product, err := h.productUC.UpdateProduct(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeDomainError(w, err, "failed to update product")
		return
	}

	writeJSON(w, http.StatusOK, dto.ProductFromDomain(product))
}

// Delete deletes a product without ledger entries.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing product ID", "")
		return
	}

	if err := h.productUC.DeleteProduct(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete product")
		return
	}

	if h.metrics != nil {
		h.metrics.ProductsDeleted.Inc()
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	products, err := h.productUC.ListProducts(r.Context(), usecase.ListProductsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list products", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListProductsResponse{
		Products: dto.ProductsFromDomain(products),
		Total:    int64(len(products)),
	})
}
