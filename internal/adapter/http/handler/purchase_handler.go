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

// PurchaseService defines the behavior needed by PurchaseHandler.
type PurchaseService interface {
	RecordPurchase(ctx context.Context, input usecase.RecordPurchaseInput) (*domain.PurchaseEntry, error)
	ListPurchasesByProduct(ctx context.Context, productID string) ([]*domain.PurchaseEntry, error)
}

// PurchaseHandler handles purchase ledger HTTP requests.
type PurchaseHandler struct {
	purchaseUC PurchaseService
	metrics    *metrics.Metrics
}

// NewPurchaseHandler creates a new PurchaseHandler. metrics may be nil.
func NewPurchaseHandler(purchaseUC PurchaseService, m *metrics.Metrics) *PurchaseHandler {
	return &PurchaseHandler{purchaseUC: purchaseUC, metrics: m}
}

// Create records a purchase entry.
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.purchaseUC.RecordPurchase(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to record purchase")
		return
	}

	if h.metrics != nil {
		h.metrics.PurchasesRecorded.Inc()
		h.metrics.EntryQuantity.WithLabelValues("purchase").Observe(float64(entry.Quantity))
	}

	writeJSON(w, http.StatusCreated, dto.PurchaseFromDomain(entry))
}

// ListByProduct lists purchase entries for a product.
func (h *PurchaseHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing product ID", "")
		return
	}

	entries, err := h.purchaseUC.ListPurchasesByProduct(r.Context(), productID)
	if err != nil {
		writeDomainError(w, err, "failed to list purchases")
		return
	}

	writeJSON(w, http.StatusOK, dto.PurchasesFromDomain(entries))
}
