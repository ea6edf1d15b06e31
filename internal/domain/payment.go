package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for user-supplied
// accounting dates.
const DateLayout = "2006-01-02"

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodMobile PaymentMethod = "mobile"
	PaymentMethodCheque PaymentMethod = "cheque"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBank, PaymentMethodMobile, PaymentMethodCheque:
		return true
	}
	return false
}

// PaymentCompleted is the only record status payments carry today.
const PaymentCompleted = "completed"

// Payment is append-only: created once, never edited or deleted.
// Date is the accounting date the user supplied; CreatedAt is the
// wall-clock insertion time and is used only for the
// duplicate-submission window.
type Payment struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenantId"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Method    PaymentMethod   `json:"method"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	Status    string          `json:"status"`
}
