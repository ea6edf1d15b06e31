package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rentledger-backend/internal/service"
)

// NewRouter wires every API route. All business responses are JSON.
func NewRouter(ledger service.LedgerService, finance service.FinanceService) *mux.Router {
	ledgerHandler := NewLedgerHandler(ledger)
	financeHandler := NewFinanceHandler(finance)
	dashboardHandler := NewDashboardHandler(ledger, finance)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/tenants", ledgerHandler.ListTenants).Methods("GET")
	api.HandleFunc("/tenants/{id}/payments", ledgerHandler.ListPayments).Methods("GET")
	api.HandleFunc("/tenants/{id}/status", ledgerHandler.GetStatus).Methods("GET")
	api.HandleFunc("/tenants/{id}/receipt", ledgerHandler.TenantReceipt).Methods("GET")
	api.HandleFunc("/payments", ledgerHandler.RecordPayment).Methods("POST")
	api.HandleFunc("/payments/{id}/receipt", ledgerHandler.PaymentReceipt).Methods("GET")

	api.HandleFunc("/finance/summary", financeHandler.Summary).Methods("GET")
	api.HandleFunc("/finance/transactions", financeHandler.AddTransaction).Methods("POST")
	api.HandleFunc("/dashboard", dashboardHandler.Summary).Methods("GET")

	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}
