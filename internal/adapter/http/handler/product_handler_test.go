package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/tomekh/stockledger/internal/adapter/http/dto"
	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/usecase"
)

type productServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateProductInput) (*domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	updateFn func(ctx context.Context, input usecase.UpdateProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, input usecase.ListProductsInput) ([]*domain.Product, error)
}

func (s *productServiceStub) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *productServiceStub) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *productServiceStub) UpdateProduct(ctx context.Context, input usecase.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, input)
}

func (s *productServiceStub) DeleteProduct(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *productServiceStub) ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]*domain.Product, error) {
	return s.listFn(ctx, input)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestProductHandler_Create_Success(t *testing.T) {
	product := &domain.Product{
		ID:    "prod-1",
		Name:  "Widget",
		Price: decimal.RequireFromString("19.99"),
	}

	var captured usecase.CreateProductInput
	handler := NewProductHandler(&productServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateProductInput) (*domain.Product, error) {
			captured = input
			return product, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.CreateProductRequest{
		Name:  "Widget",
		Price: decimal.RequireFromString("19.99"),
	})

	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Name != "Widget" || !captured.Price.Equal(decimal.RequireFromString("19.99")) {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.ProductResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "prod-1" {
		t.Fatalf("expected product ID prod-1, got %s", resp.ID)
	}
}

func TestProductHandler_Create_InvalidBody(t *testing.T) {
	handler := NewProductHandler(&productServiceStub{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	handler := NewProductHandler(&productServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/products/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductHandler_Delete_InUse(t *testing.T) {
	handler := NewProductHandler(&productServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrProductInUse
		},
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/products/prod-1", nil), "id", "prod-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestProductHandler_List(t *testing.T) {
	products := []*domain.Product{
		{ID: "prod-1", Name: "Widget"},
		{ID: "prod-2", Name: "Gadget"},
	}

	handler := NewProductHandler(&productServiceStub{
		listFn: func(ctx context.Context, input usecase.ListProductsInput) ([]*domain.Product, error) {
			if input.Limit != 20 || input.Offset != 0 {
				t.Fatalf("unexpected pagination: %+v", input)
			}
			return products, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListProductsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Total != 2 || len(resp.Products) != 2 {
		t.Fatalf("expected 2 products, got %+v", resp)
	}
}
