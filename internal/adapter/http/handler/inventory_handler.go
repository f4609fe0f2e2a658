package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomekh/stockledger/internal/adapter/http/dto"
	"github.com/tomekh/stockledger/internal/domain"
)

// InventoryService defines the behavior needed by InventoryHandler.
type InventoryService interface {
	BuildFeed(ctx context.Context, productID string) ([]domain.LedgerRow, error)
}

// StockService defines the stock lookup behavior needed by InventoryHandler.
type StockService interface {
	GetStock(ctx context.Context, productID string) (int64, error)
}

// InventoryHandler serves the inventory feed and current stock.
type InventoryHandler struct {
	inventoryUC InventoryService
	stockUC     StockService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryUC InventoryService, stockUC StockService) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: inventoryUC,
		stockUC:     stockUC,
	}
}

// Feed returns the merged purchase and sale feed for a product, ordered
// by date ascending.
func (h *InventoryHandler) Feed(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing product ID", "")
		return
	}

	rows, err := h.inventoryUC.BuildFeed(r.Context(), productID)
	if err != nil {
		writeDomainError(w, err, "failed to build inventory feed")
		return
	}

	writeJSON(w, http.StatusOK, dto.FeedFromDomain(rows))
}

// Stock returns the current stock for a product.
func (h *InventoryHandler) Stock(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing product ID", "")
		return
	}

	stock, err := h.stockUC.GetStock(r.Context(), productID)
	if err != nil {
		writeDomainError(w, err, "failed to get stock")
		return
	}

	writeJSON(w, http.StatusOK, dto.StockResponse{
		ProductID: productID,
		Stock:     stock,
	})
}
