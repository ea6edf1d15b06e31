package jobs

import (
	"context"

	"rentledger-backend/internal/logger"
)

// RecalculateFinance refreshes the dashboard aggregates so the stored
// snapshot stays current even when nobody opens the dashboard.
func (jr *JobRunner) RecalculateFinance() {
	jr.runWithRecovery("RecalculateFinance", func() {
		ctx := context.Background()

		snapshot, err := jr.services.Finance.Recalculate(ctx)
		if err != nil {
			logger.Error("Failed to recalculate finance aggregates", "error", err)
			return
		}

		logger.Info("Recalculated finance aggregates",
			"rental_income", snapshot.RentalIncome,
			"expenses", snapshot.Expenses,
			"net_profit", snapshot.NetProfit,
			"transactions", len(snapshot.Transactions))
	})
}
