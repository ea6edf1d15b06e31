package domain

import "github.com/shopspring/decimal"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is the finance-dashboard money movement record. It is
// not linked to Tenant or Payment; the two models coexist on purpose
// (see DESIGN.md).
type Transaction struct {
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// RentRecord is the shape handed to an injected revenue calculator:
// one active tenancy with its monthly rent.
type RentRecord struct {
	Amount   decimal.Decimal `json:"amount"`
	Property string          `json:"property"`
	Tenant   string          `json:"tenant"`
}

// FinanceSnapshot is the dashboard aggregate, persisted in full after
// every recalculation. NetProfit is derived but stored alongside the
// inputs.
type FinanceSnapshot struct {
	Transactions []Transaction   `json:"transactions"`
	RentalIncome decimal.Decimal `json:"rentalIncome"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetProfit    decimal.Decimal `json:"netProfit"`
}
