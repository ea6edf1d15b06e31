package jobs

import (
	"context"

	"rentledger-backend/internal/domain"
	"rentledger-backend/internal/logger"
)

// ReportOverdueTenants logs every tenant whose last payment is past
// the overdue threshold, for the nightly operations report.
func (jr *JobRunner) ReportOverdueTenants() {
	jr.runWithRecovery("ReportOverdueTenants", func() {
		ctx := context.Background()

		rows, err := jr.services.Ledger.ListTenants(ctx, "", string(domain.TenantStatusOverdue))
		if err != nil {
			logger.Error("Failed to list overdue tenants", "error", err)
			return
		}

		logger.Info("Overdue tenants report", "count", len(rows))
		for _, row := range rows {
			lastPaid := "never"
			if row.LastPayment != nil {
				lastPaid = row.LastPayment.Date
			}
			logger.Debug("Tenant overdue",
				"tenant_id", row.Tenant.ID,
				"name", row.Tenant.Name,
				"house", row.Tenant.House,
				"last_payment_date", lastPaid)
		}
	})
}
