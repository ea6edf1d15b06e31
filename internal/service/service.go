package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"rentledger-backend/internal/domain"
)

// Clock supplies the current time. Services take one at construction
// so the dedup window and status derivation are testable; nil means
// time.Now.
type Clock func() time.Time

// RecordPaymentInput carries the user-supplied fields of a payment.
// A zero Amount counts as missing.
type RecordPaymentInput struct {
	TenantID string
	Amount   decimal.Decimal
	Date     string
	Method   domain.PaymentMethod
	Notes    string
}

// TenantRow is one dashboard row: the tenant plus derived state.
type TenantRow struct {
	Tenant      domain.Tenant       `json:"tenant"`
	Status      domain.TenantStatus `json:"status"`
	LastPayment *domain.Payment     `json:"lastPayment,omitempty"`
}

type LedgerService interface {
	RecordPayment(ctx context.Context, in RecordPaymentInput) (*domain.Payment, error)
	StatusOf(ctx context.Context, tenantID string) (domain.TenantStatus, error)
	LastPayment(ctx context.Context, tenantID string) (*domain.Payment, error)
	ListPayments(ctx context.Context, tenantID string) ([]domain.Payment, error)
	ListTenants(ctx context.Context, search, statusFilter string) ([]TenantRow, error)
	ReceiptForPayment(ctx context.Context, paymentID string) (*domain.Receipt, error)
	ReceiptForTenant(ctx context.Context, tenantID string) (*domain.Receipt, error)
}

// RevenueCalculator and ExpenseCalculator are optional pluggable
// strategies for the finance aggregates. When nil, the fallback
// formulas apply: sum of tenant rents and sum of expense-type
// transactions.
type RevenueCalculator func(rents []domain.RentRecord) decimal.Decimal

type ExpenseCalculator func(expenses []domain.Transaction) decimal.Decimal

type FinanceService interface {
	AddTransaction(ctx context.Context, tx domain.Transaction) (*domain.FinanceSnapshot, error)
	Recalculate(ctx context.Context) (*domain.FinanceSnapshot, error)
}
