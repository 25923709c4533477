package handler

import (
	"net/http"

	"github.com/mfgops/stockledger/internal/adapter/http/dto"
	"github.com/mfgops/stockledger/internal/usecase"
)

// LedgerHandler handles ledger-wide operations.
type LedgerHandler struct {
	ledgerUC *usecase.LedgerUseCase
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC *usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Verify replays every item's history and checks balance continuity.
// A broken chain yields 409 with the offending items listed.
func (h *LedgerHandler) Verify(w http.ResponseWriter, r *http.Request) {
	report, err := h.ledgerUC.VerifyChains(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to verify ledger", err.Error())
		return
	}

	status := http.StatusOK
	if !report.Consistent() {
		status = http.StatusConflict
	}

	writeJSON(w, status, dto.ChainReportFromUseCase(report))
}
