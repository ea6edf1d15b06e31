package domain

import "github.com/shopspring/decimal"

// Receipt is the plain data behind a printable rent receipt. The
// receipt number is the payment id. Rendering is the caller's job.
type Receipt struct {
	ReceiptNo   string          `json:"receiptNo"`
	Property    string          `json:"property"`
	TenantName  string          `json:"tenantName"`
	House       string          `json:"house"`
	IDNumber    string          `json:"idNumber"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	PaymentDate string          `json:"paymentDate"`
	Notes       string          `json:"notes,omitempty"`
}
