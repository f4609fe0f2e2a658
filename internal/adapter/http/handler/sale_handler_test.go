package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomekh/stockledger/internal/adapter/http/dto"
	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/usecase"
)

type saleServiceStub struct {
	recordFn func(ctx context.Context, input usecase.RecordSaleInput) (*domain.SaleEntry, error)
	listFn   func(ctx context.Context, productID string) ([]*domain.SaleEntry, error)
}

func (s *saleServiceStub) RecordSale(ctx context.Context, input usecase.RecordSaleInput) (*domain.SaleEntry, error) {
	return s.recordFn(ctx, input)
}

func (s *saleServiceStub) ListSalesByProduct(ctx context.Context, productID string) ([]*domain.SaleEntry, error) {
	return s.listFn(ctx, productID)
}

func TestSaleHandler_Create_Success(t *testing.T) {
	entry := &domain.SaleEntry{
		ID:        "sale-1",
		ProductID: "prod-1",
		Quantity:  4,
	}

	handler := NewSaleHandler(&saleServiceStub{
		recordFn: func(ctx context.Context, input usecase.RecordSaleInput) (*domain.SaleEntry, error) {
			if input.ProductID != "prod-1" || input.Quantity != 4 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return entry, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.RecordSaleRequest{ProductID: "prod-1", Quantity: 4})

	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.SaleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "sale-1" {
		t.Fatalf("expected sale ID sale-1, got %s", resp.ID)
	}
}

func TestSaleHandler_Create_StockExceeded(t *testing.T) {
	handler := NewSaleHandler(&saleServiceStub{
		recordFn: func(ctx context.Context, input usecase.RecordSaleInput) (*domain.SaleEntry, error) {
			return nil, &domain.StockExceededError{
				ProductID:    input.ProductID,
				Attempted:    input.Quantity,
				CurrentStock: 6,
			}
		},
	}, nil)

	body, _ := json.Marshal(dto.RecordSaleRequest{ProductID: "prod-1", Quantity: 7})

	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.StockExceededResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Attempted != 7 || resp.CurrentStock != 6 {
		t.Fatalf("expected rejection payload to carry quantities, got %+v", resp)
	}
}

func TestSaleHandler_Create_ProductNotFound(t *testing.T) {
	handler := NewSaleHandler(&saleServiceStub{
		recordFn: func(ctx context.Context, input usecase.RecordSaleInput) (*domain.SaleEntry, error) {
			return nil, domain.ErrProductNotFound
		},
	}, nil)

	body, _ := json.Marshal(dto.RecordSaleRequest{ProductID: "missing", Quantity: 1})

	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSaleHandler_ListByProduct(t *testing.T) {
	handler := NewSaleHandler(&saleServiceStub{
		listFn: func(ctx context.Context, productID string) ([]*domain.SaleEntry, error) {
			return []*domain.SaleEntry{{ID: "sale-1", ProductID: productID}}, nil
		},
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/products/prod-1/sales", nil), "id", "prod-1")
	rec := httptest.NewRecorder()

	handler.ListByProduct(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.SaleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp) != 1 || resp[0].ProductID != "prod-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
