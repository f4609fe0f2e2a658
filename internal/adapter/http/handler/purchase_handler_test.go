package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomekh/stockledger/internal/adapter/http/dto"
	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/usecase"
)

type purchaseServiceStub struct {
	recordFn func(ctx context.Context, input usecase.RecordPurchaseInput) (*domain.PurchaseEntry, error)
	listFn   func(ctx context.Context, productID string) ([]*domain.PurchaseEntry, error)
}

func (s *purchaseServiceStub) RecordPurchase(ctx context.Context, input usecase.RecordPurchaseInput) (*domain.PurchaseEntry, error) {
	return s.recordFn(ctx, input)
}

func (s *purchaseServiceStub) ListPurchasesByProduct(ctx context.Context, productID string) ([]*domain.PurchaseEntry, error) {
	return s.listFn(ctx, productID)
}

func TestPurchaseHandler_Create_Success(t *testing.T) {
	entry := &domain.PurchaseEntry{
		ID:        "purchase-1",
		ProductID: "prod-1",
		Quantity:  10,
	}

	handler := NewPurchaseHandler(&purchaseServiceStub{
		recordFn: func(ctx context.Context, input usecase.RecordPurchaseInput) (*domain.PurchaseEntry, error) {
			if input.ProductID != "prod-1" || input.Quantity != 10 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return entry, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.RecordPurchaseRequest{ProductID: "prod-1", Quantity: 10})

	req := httptest.NewRequest(http.MethodPost, "/purchases", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.PurchaseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "purchase-1" {
		t.Fatalf("expected purchase ID purchase-1, got %s", resp.ID)
	}
}

func TestPurchaseHandler_Create_InvalidQuantity(t *testing.T) {
	handler := NewPurchaseHandler(&purchaseServiceStub{
		recordFn: func(ctx context.Context, input usecase.RecordPurchaseInput) (*domain.PurchaseEntry, error) {
			return nil, domain.ErrInvalidQuantity
		},
	}, nil)

	body, _ := json.Marshal(dto.RecordPurchaseRequest{ProductID: "prod-1", Quantity: 0})

	req := httptest.NewRequest(http.MethodPost, "/purchases", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPurchaseHandler_Create_MalformedBody(t *testing.T) {
	handler := NewPurchaseHandler(&purchaseServiceStub{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/purchases", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestPurchaseHandler_ListByProduct(t *testing.T) {
	handler := NewPurchaseHandler(&purchaseServiceStub{
		listFn: func(ctx context.Context, productID string) ([]*domain.PurchaseEntry, error) {
			if productID != "prod-1" {
				t.Fatalf("unexpected product ID %s", productID)
			}
			return []*domain.PurchaseEntry{
				{ID: "purchase-1", ProductID: "prod-1", Quantity: 10},
				{ID: "purchase-2", ProductID: "prod-1", Quantity: 5},
			}, nil
		},
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/products/prod-1/purchases", nil), "id", "prod-1")
	rec := httptest.NewRecorder()

	handler.ListByProduct(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []dto.PurchaseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected two purchases, got %d", len(resp))
	}
}
