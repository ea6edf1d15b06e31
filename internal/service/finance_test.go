package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentledger-backend/internal/domain"
	"rentledger-backend/internal/repository/blob"
	"rentledger-backend/internal/storage"
)

func newTestFinance(t *testing.T, revenue RevenueCalculator, expense ExpenseCalculator) (FinanceService, storage.BlobStore) {
	t.Helper()
	bs := storage.NewMemoryStore()
	seedTenants(t, bs, testTenants())
	store := blob.NewStore(bs)
	svc := NewFinanceService(store.FinanceRepository, store.TenantRepository, revenue, expense)
	return svc, bs
}

func expenseTransaction(amount int64, description, date string) domain.Transaction {
	return domain.Transaction{
		Type:        domain.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(amount),
		Description: description,
		Date:        date,
	}
}

func TestFinanceService_Recalculate(t *testing.T) {
	ctx := context.Background()

	t.Run("Fallback rental income sums tenant rents", func(t *testing.T) {
		svc, _ := newTestFinance(t, nil, nil)

		snapshot, err := svc.Recalculate(ctx)
		require.NoError(t, err)
		assert.True(t, snapshot.RentalIncome.Equal(decimal.NewFromInt(1200)), "got %s", snapshot.RentalIncome)
		assert.True(t, snapshot.Expenses.IsZero())
		assert.True(t, snapshot.NetProfit.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("Fallback expenses sum expense transactions only", func(t *testing.T) {
		svc, _ := newTestFinance(t, nil, nil)

		_, err := svc.AddTransaction(ctx, expenseTransaction(300, "Plumbing", "2024-01-10"))
		require.NoError(t, err)
		_, err = svc.AddTransaction(ctx, domain.Transaction{
			Type:        domain.TransactionTypeIncome,
			Amount:      decimal.NewFromInt(9000),
			Description: "Deposit",
			Date:        "2024-01-11",
		})
		require.NoError(t, err)

		snapshot, err := svc.Recalculate(ctx)
		require.NoError(t, err)
		assert.True(t, snapshot.Expenses.Equal(decimal.NewFromInt(300)))
		assert.True(t, snapshot.NetProfit.Equal(decimal.NewFromInt(900)))
	})

	t.Run("Net profit may be negative", func(t *testing.T) {
		svc, _ := newTestFinance(t, nil, nil)

		_, err := svc.AddTransaction(ctx, expenseTransaction(5000, "Roof replacement", "2024-01-10"))
		require.NoError(t, err)

		snapshot, err := svc.Recalculate(ctx)
		require.NoError(t, err)
		assert.True(t, snapshot.NetProfit.Equal(decimal.NewFromInt(-3800)))
	})

	t.Run("Injected calculators take precedence over fallbacks", func(t *testing.T) {
		var gotRents []domain.RentRecord
		revenue := func(rents []domain.RentRecord) decimal.Decimal {
			gotRents = rents
			return decimal.NewFromInt(42)
		}
		var gotExpenses []domain.Transaction
		expense := func(expenses []domain.Transaction) decimal.Decimal {
			gotExpenses = expenses
			return decimal.NewFromInt(7)
		}
		svc, _ := newTestFinance(t, revenue, expense)

		_, err := svc.AddTransaction(ctx, expenseTransaction(300, "Plumbing", "2024-01-10"))
		require.NoError(t, err)

		snapshot, err := svc.Recalculate(ctx)
		require.NoError(t, err)
		assert.True(t, snapshot.RentalIncome.Equal(decimal.NewFromInt(42)))
		assert.True(t, snapshot.Expenses.Equal(decimal.NewFromInt(7)))
		assert.True(t, snapshot.NetProfit.Equal(decimal.NewFromInt(35)))

		require.Len(t, gotRents, 2)
		assert.Equal(t, "Alice Wanjiku", gotRents[0].Tenant)
		assert.Equal(t, "A1", gotRents[0].Property)
		require.Len(t, gotExpenses, 1)
		assert.Equal(t, "Plumbing", gotExpenses[0].Description)
	})

	t.Run("Every run persists the whole snapshot", func(t *testing.T) {
		svc, bs := newTestFinance(t, nil, nil)

		_, err := svc.Recalculate(ctx)
		require.NoError(t, err)

		data, err := bs.Read(ctx, storage.KeyFinance)
		require.NoError(t, err)
		var stored domain.FinanceSnapshot
		require.NoError(t, json.Unmarshal(data, &stored))
		assert.True(t, stored.RentalIncome.Equal(decimal.NewFromInt(1200)))
		assert.True(t, stored.NetProfit.Equal(decimal.NewFromInt(1200)))
	})
}

func TestFinanceService_AddTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("New transactions are prepended", func(t *testing.T) {
		svc, _ := newTestFinance(t, nil, nil)

		_, err := svc.AddTransaction(ctx, expenseTransaction(100, "First", "2024-01-01"))
		require.NoError(t, err)
		snapshot, err := svc.AddTransaction(ctx, expenseTransaction(200, "Second", "2024-01-02"))
		require.NoError(t, err)

		require.Len(t, snapshot.Transactions, 2)
		assert.Equal(t, "Second", snapshot.Transactions[0].Description)
		assert.Equal(t, "First", snapshot.Transactions[1].Description)
	})

	t.Run("Aggregates refresh on add", func(t *testing.T) {
		svc, _ := newTestFinance(t, nil, nil)

		snapshot, err := svc.AddTransaction(ctx, expenseTransaction(250, "Repairs", "2024-01-05"))
		require.NoError(t, err)
		assert.True(t, snapshot.Expenses.Equal(decimal.NewFromInt(250)))
		assert.True(t, snapshot.NetProfit.Equal(decimal.NewFromInt(950)))
	})

	t.Run("Malformed transactions are refused", func(t *testing.T) {
		svc, _ := newTestFinance(t, nil, nil)

		tests := []struct {
			name string
			tx   domain.Transaction
		}{
			{"unknown type", domain.Transaction{Type: "transfer", Amount: decimal.NewFromInt(10), Description: "x", Date: "2024-01-01"}},
			{"missing amount", domain.Transaction{Type: domain.TransactionTypeExpense, Description: "x", Date: "2024-01-01"}},
			{"missing description", domain.Transaction{Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(10), Date: "2024-01-01"}},
			{"missing date", domain.Transaction{Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(10), Description: "x"}},
			{"unparsable date", domain.Transaction{Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(10), Description: "x", Date: "Jan 1"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.AddTransaction(ctx, tt.tx)
				assert.ErrorIs(t, err, domain.ErrMalformedInput)
			})
		}

		snapshot, err := svc.Recalculate(ctx)
		require.NoError(t, err)
		assert.Empty(t, snapshot.Transactions)
	})
}
