package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/tomekh/stockledger/internal/adapter/http/dto"
	"github.com/tomekh/stockledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError maps a domain error to a status code and writes it.
// A rejected sale admission gets its own payload carrying the attempted
// quantity and the stock at rejection time.
func writeDomainError(w http.ResponseWriter, err error, message string) {
	var stockErr *domain.StockExceededError
	if errors.As(err, &stockErr) {
		writeJSON(w, http.StatusUnprocessableEntity, dto.StockExceededResponse{
			Error:        "stock exceeded",
			ProductID:    stockErr.ProductID,
			Attempted:    stockErr.Attempted,
			CurrentStock: stockErr.CurrentStock,
		})
		return
	}

	writeError(w, mapDomainError(err), message, err.Error())
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrProductInUse):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStockExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrQuantityTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidProductName):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPasswordTooWeak):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
