package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"rentledger-backend/internal/domain"
	"rentledger-backend/internal/service"
)

// LedgerHandler exposes the ledger operations over JSON. It returns
// plain data only; rendering belongs to the client.
type LedgerHandler struct {
	ledger service.LedgerService
}

func NewLedgerHandler(ledger service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

type recordPaymentRequest struct {
	TenantID string               `json:"tenantId"`
	Amount   decimal.Decimal      `json:"amount"`
	Date     string               `json:"date"`
	Method   domain.PaymentMethod `json:"method"`
	Notes    string               `json:"notes"`
}

func (h *LedgerHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrMalformedInput))
		return
	}

	payment, err := h.ledger.RecordPayment(r.Context(), service.RecordPaymentInput{
		TenantID: req.TenantID,
		Amount:   req.Amount,
		Date:     req.Date,
		Method:   req.Method,
		Notes:    req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *LedgerHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")

	rows, err := h.ledger.ListTenants(r.Context(), search, status)
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []service.TenantRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *LedgerHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["id"]
	payments, err := h.ledger.ListPayments(r.Context(), tenantID)
	if err != nil {
		writeError(w, err)
		return
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *LedgerHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["id"]
	status, err := h.ledger.StatusOf(r.Context(), tenantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.TenantStatus{"status": status})
}

func (h *LedgerHandler) TenantReceipt(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["id"]
	receipt, err := h.ledger.ReceiptForTenant(r.Context(), tenantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (h *LedgerHandler) PaymentReceipt(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["id"]
	receipt, err := h.ledger.ReceiptForPayment(r.Context(), paymentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}
