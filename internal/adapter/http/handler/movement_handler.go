package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mfgops/stockledger/internal/adapter/http/dto"
	"github.com/mfgops/stockledger/internal/domain"
	"github.com/mfgops/stockledger/internal/usecase"
)

// MovementHandler handles movement-related HTTP requests.
type MovementHandler struct {
	ledgerUC *usecase.LedgerUseCase
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(ledgerUC *usecase.LedgerUseCase) *MovementHandler {
	return &MovementHandler{ledgerUC: ledgerUC}
}

// Create records a new stock movement.
func (h *MovementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	movement, err := h.ledgerUC.RecordMovement(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to record movement", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.MovementFromDomain(movement))
}

// List lists ledger movements, optionally filtered by item, type and search term.
func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	query := domain.MovementQuery{
		Search: r.URL.Query().Get("search"),
		Type:   r.URL.Query().Get("type"),
		ItemID: r.URL.Query().Get("item"),
	}

	movements, err := h.ledgerUC.ListMovements(r.Context(), usecase.ListMovementsInput{
		Query:  query,
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list movements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementsFromDomain(movements))
}
