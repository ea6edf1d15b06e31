package http

import (
	"net/http"

	"rentledger-backend/internal/domain"
	"rentledger-backend/internal/service"
)

// DashboardHandler serves the combined dashboard view so the client
// needs a single round trip for its landing page.
type DashboardHandler struct {
	ledger  service.LedgerService
	finance service.FinanceService
}

func NewDashboardHandler(ledger service.LedgerService, finance service.FinanceService) *DashboardHandler {
	return &DashboardHandler{ledger: ledger, finance: finance}
}

type dashboardResponse struct {
	Tenants []service.TenantRow     `json:"tenants"`
	Finance *domain.FinanceSnapshot `json:"finance"`
}

// Summary returns every tenant row together with the freshly
// recalculated finance snapshot. The same search and status query
// parameters as the tenant list apply.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
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

	snapshot, err := h.finance.Recalculate(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{Tenants: rows, Finance: snapshot})
}
