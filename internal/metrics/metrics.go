package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PaymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentledger_payments_recorded_total",
		Help: "Number of rent payments successfully recorded",
	})

	DuplicateSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentledger_duplicate_submissions_total",
		Help: "Number of payment submissions refused by the dedup window",
	})

	TransactionsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentledger_transactions_added_total",
		Help: "Number of finance transactions added",
	})

	FinanceRecalculations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentledger_finance_recalculations_total",
		Help: "Number of finance aggregate recalculations",
	})
)
