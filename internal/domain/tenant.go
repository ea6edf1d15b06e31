package domain

import "github.com/shopspring/decimal"

// Tenant is read-only input to this service. The tenant collection is
// maintained by the tenant-management application; the ledger never
// writes it back.
type Tenant struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	House      string          `json:"house"`
	IDNumber   string          `json:"idNumber"`
	RentAmount decimal.Decimal `json:"rentAmount"`
}

// TenantStatus is the derived payment standing of a tenant.
type TenantStatus string

const (
	TenantStatusPaid       TenantStatus = "paid"
	TenantStatusOverdue    TenantStatus = "overdue"
	TenantStatusNoPayments TenantStatus = "no_payments"
)

// StatusFilterAll matches every tenant regardless of derived status.
const StatusFilterAll = "all"
