package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomekh/stockledger/internal/adapter/http/dto"
	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/infrastructure/metrics"
	"github.com/tomekh/stockledger/internal/usecase"
)

// SaleService defines the behavior needed by SaleHandler.
type SaleService interface {
	RecordSale(ctx context.Context, input usecase.RecordSaleInput) (*domain.SaleEntry, error)
	ListSalesByProduct(ctx context.Context, productID string) ([]*domain.SaleEntry, error)
}

// SaleHandler handles sale ledger HTTP requests.
type SaleHandler struct {
	saleUC  SaleService
	metrics *metrics.Metrics
}

// NewSaleHandler creates a new SaleHandler. metrics may be nil.
func NewSaleHandler(saleUC SaleService, m *metrics.Metrics) *SaleHandler {
	return &SaleHandler{saleUC: saleUC, metrics: m}
}

// Create admits and records a sale entry. A sale that would exceed the
// current stock is rejected with 422 and leaves the ledger untouched.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	start := time.Now()
	entry, err := h.saleUC.RecordSale(r.Context(), req.ToUseCaseInput())
	if h.metrics != nil {
		h.metrics.SaleDuration.Observe(time.Since(start).Seconds())
	}

	if err != nil {
		if h.metrics != nil {
			reason := "error"
			if errors.Is(err, domain.ErrStockExceeded) {
				reason = "stock_exceeded"
			}
			h.metrics.SalesRejected.WithLabelValues(reason).Inc()
		}
		writeDomainError(w, err, "failed to record sale")
		return
	}

	if h.metrics != nil {
		h.metrics.SalesAdmitted.Inc()
		h.metrics.EntryQuantity.WithLabelValues("sale").Observe(float64(entry.Quantity))
	}

	writeJSON(w, http.StatusCreated, dto.SaleFromDomain(entry))
}

// ListByProduct lists sale entries for a product.
func (h *SaleHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing product ID", "")
		return
	}

	entries, err := h.saleUC.ListSalesByProduct(r.Context(), productID)
	if err != nil {
		writeDomainError(w, err, "failed to list sales")
		return
	}

	writeJSON(w, http.StatusOK, dto.SalesFromDomain(entries))
}
