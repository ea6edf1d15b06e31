package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"rentledger-backend/internal/domain"
	"rentledger-backend/internal/service"
)

// FinanceHandler exposes the finance dashboard aggregates.
type FinanceHandler struct {
	finance service.FinanceService
}

func NewFinanceHandler(finance service.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

// Summary recalculates and returns the finance snapshot. Every call
// persists the refreshed aggregates, matching the dashboard's
// load-then-save behavior.
func (h *FinanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.finance.Recalculate(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

type addTransactionRequest struct {
	Type        domain.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description"`
	Date        string                 `json:"date"`
}

func (h *FinanceHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var req addTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrMalformedInput))
		return
	}

	snapshot, err := h.finance.AddTransaction(r.Context(), domain.Transaction{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, snapshot)
}
