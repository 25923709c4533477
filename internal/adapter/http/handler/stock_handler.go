package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfgops/stockledger/internal/adapter/http/dto"
	"github.com/mfgops/stockledger/internal/domain"
	"github.com/mfgops/stockledger/internal/usecase"
)

// StockHandler handles derived stock level HTTP requests.
type StockHandler struct {
	levelUC *usecase.LevelUseCase
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(levelUC *usecase.LevelUseCase) *StockHandler {
	return &StockHandler{levelUC: levelUC}
}

// ListLevels lists projected stock levels with optional filters.
func (h *StockHandler) ListLevels(w http.ResponseWriter, r *http.Request) {
	query := domain.LevelQuery{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
	}

	levels, err := h.levelUC.ListLevels(r.Context(), usecase.ListLevelsInput{
		Query:  query,
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list stock levels", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StockLevelsFromDomain(levels))
}

// GetLevel returns a single item's projected stock level.
func (h *StockHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		writeError(w, http.StatusBadRequest, "missing item ID", "")
		return
	}

	level, err := h.levelUC.GetLevel(r.Context(), itemID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get stock level", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.StockLevelFromDomain(level))
}

// GetBalance returns an item's current ledger balance. Unknown items have
// balance zero; absence is not an error here.
func (h *StockHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		writeError(w, http.StatusBadRequest, "missing item ID", "")
		return
	}

	balance, err := h.levelUC.CurrentBalance(r.Context(), itemID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"item":    itemID,
		"balance": balance,
	})
}
