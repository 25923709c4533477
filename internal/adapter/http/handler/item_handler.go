package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfgops/stockledger/internal/adapter/http/dto"
	"github.com/mfgops/stockledger/internal/usecase"
)

// ItemHandler handles item catalog HTTP requests.
type ItemHandler struct {
	itemUC *usecase.ItemUseCase
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemUC *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{itemUC: itemUC}
}

// Create creates a new item configuration.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	item, err := h.itemUC.CreateItem(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create item", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ItemFromDomain(item))
}

// Get retrieves an item configuration by ID.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing item ID", "")
		return
	}

	item, err := h.itemUC.GetItem(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get item", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ItemFromDomain(item))
}

// List lists item configurations.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemUC.ListItems(r.Context(), usecase.ListItemsInput{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list items", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ItemsFromDomain(items))
}
