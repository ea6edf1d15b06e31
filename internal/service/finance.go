package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"rentledger-backend/internal/domain"
	"rentledger-backend/internal/logger"
	"rentledger-backend/internal/metrics"
	"rentledger-backend/internal/repository"
)

type financeService struct {
	financeRepo repository.FinanceRepository
	tenantRepo  repository.TenantRepository
	revenue     RevenueCalculator // optional, nil means fallback
	expense     ExpenseCalculator // optional, nil means fallback
	log         *slog.Logger
}

func NewFinanceService(financeRepo repository.FinanceRepository, tenantRepo repository.TenantRepository, revenue RevenueCalculator, expense ExpenseCalculator) FinanceService {
	return &financeService{
		financeRepo: financeRepo,
		tenantRepo:  tenantRepo,
		revenue:     revenue,
		expense:     expense,
		log:         logger.WithService("finance"),
	}
}

func (s *financeService) AddTransaction(ctx context.Context, tx domain.Transaction) (*domain.FinanceSnapshot, error) {
	if !tx.Type.Valid() {
		return nil, fmt.Errorf("%w: transaction type must be income or expense", domain.ErrMalformedInput)
	}
	if tx.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount is required", domain.ErrMalformedInput)
	}
	if tx.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrMalformedInput)
	}
	if tx.Date == "" {
		return nil, fmt.Errorf("%w: date is required", domain.ErrMalformedInput)
	}
	if _, err := time.Parse(domain.DateLayout, tx.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrMalformedInput)
	}

	snapshot, err := s.financeRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	// New transactions go to the front; the dashboard shows newest first.
	snapshot.Transactions = append([]domain.Transaction{tx}, snapshot.Transactions...)

	if err := s.recalculate(ctx, snapshot); err != nil {
		return nil, err
	}
	metrics.TransactionsAdded.Inc()
	s.log.Info("Added transaction", "type", tx.Type, "amount", tx.Amount, "description", tx.Description)
	return snapshot, nil
}

func (s *financeService) Recalculate(ctx context.Context) (*domain.FinanceSnapshot, error) {
	snapshot, err := s.financeRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.recalculate(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// recalculate refreshes the aggregates on snapshot and persists the
// whole blob. Rental income and expenses come from the injected
// calculators when present, otherwise from the fallback sums.
func (s *financeService) recalculate(ctx context.Context, snapshot *domain.FinanceSnapshot) error {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return err
	}

	if s.revenue != nil {
		snapshot.RentalIncome = s.revenue(rentRecords(tenants))
	} else {
		income := decimal.Zero
		for _, t := range tenants {
			income = income.Add(t.RentAmount)
		}
		snapshot.RentalIncome = income
	}

	expenseTxs := filterExpenses(snapshot.Transactions)
	if s.expense != nil {
		snapshot.Expenses = s.expense(expenseTxs)
	} else {
		expenses := decimal.Zero
		for _, tx := range expenseTxs {
			expenses = expenses.Add(tx.Amount)
		}
		snapshot.Expenses = expenses
	}

	// May be negative; there is no floor.
	snapshot.NetProfit = snapshot.RentalIncome.Sub(snapshot.Expenses)

	if err := s.financeRepo.Save(ctx, snapshot); err != nil {
		return err
	}
	metrics.FinanceRecalculations.Inc()
	return nil
}

func rentRecords(tenants []domain.Tenant) []domain.RentRecord {
	records := make([]domain.RentRecord, 0, len(tenants))
	for _, t := range tenants {
		records = append(records, domain.RentRecord{
			Amount:   t.RentAmount,
			Property: t.House,
			Tenant:   t.Name,
		})
	}
	return records
}

func filterExpenses(txs []domain.Transaction) []domain.Transaction {
	var out []domain.Transaction
	for _, tx := range txs {
		if tx.Type == domain.TransactionTypeExpense {
			out = append(out, tx)
		}
	}
	return out
}
