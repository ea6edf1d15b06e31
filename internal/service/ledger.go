package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"rentledger-backend/internal/domain"
	"rentledger-backend/internal/logger"
	"rentledger-backend/internal/metrics"
	"rentledger-backend/internal/repository"
)

// dedupWindow is how long an identical (tenant, amount, date) triple
// is refused after being recorded. It guards against double-clicks,
// not against backdated re-entry days later.
const dedupWindow = 5 * time.Second

// overdueAfterDays is the age of the last payment, in whole days,
// beyond which a tenant counts as overdue.
const overdueAfterDays = 30

type ledgerService struct {
	tenantRepo  repository.TenantRepository
	paymentRepo repository.PaymentRepository
	property    string
	now         Clock
	log         *slog.Logger

	// recordMu makes the duplicate scan and the append one critical
	// section; without it two concurrent identical submissions can
	// both pass the scan before either record lands.
	recordMu sync.Mutex
}

func NewLedgerService(tenantRepo repository.TenantRepository, paymentRepo repository.PaymentRepository, property string, now Clock) LedgerService {
	if now == nil {
		now = time.Now
	}
	return &ledgerService{
		tenantRepo:  tenantRepo,
		paymentRepo: paymentRepo,
		property:    property,
		now:         now,
		log:         logger.WithService("ledger"),
	}
}

func (s *ledgerService) RecordPayment(ctx context.Context, in RecordPaymentInput) (*domain.Payment, error) {
	if in.TenantID == "" {
		return nil, fmt.Errorf("%w: tenant id is required", domain.ErrMalformedInput)
	}
	if in.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount is required", domain.ErrMalformedInput)
	}
	if in.Date == "" {
		return nil, fmt.Errorf("%w: payment date is required", domain.ErrMalformedInput)
	}
	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, fmt.Errorf("%w: payment date must be YYYY-MM-DD", domain.ErrMalformedInput)
	}
	if !in.Method.Valid() {
		return nil, fmt.Errorf("%w: payment method must be one of cash, bank, mobile, cheque", domain.ErrMalformedInput)
	}

	s.recordMu.Lock()
	defer s.recordMu.Unlock()

	now := s.now()

	existing, err := s.paymentRepo.ListByTenant(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if p.Amount.Equal(in.Amount) && p.Date == in.Date && now.Sub(p.CreatedAt) < dedupWindow {
			metrics.DuplicateSubmissions.Inc()
			s.log.Warn("Refused duplicate payment submission",
				"tenant_id", in.TenantID, "amount", in.Amount, "date", in.Date)
			return nil, fmt.Errorf("%w: payment already recorded for this tenant, amount and date", domain.ErrDuplicateSubmission)
		}
	}

	payment := &domain.Payment{
		ID:        newPaymentID(now),
		TenantID:  in.TenantID,
		Amount:    in.Amount,
		Date:      in.Date,
		Method:    in.Method,
		Notes:     in.Notes,
		CreatedAt: now,
		Status:    domain.PaymentCompleted,
	}

	if err := s.paymentRepo.Append(ctx, payment); err != nil {
		return nil, err
	}

	metrics.PaymentsRecorded.Inc()
	s.log.Info("Recorded payment",
		"payment_id", payment.ID, "tenant_id", payment.TenantID,
		"amount", payment.Amount, "date", payment.Date, "method", payment.Method)
	return payment, nil
}

// newPaymentID builds a payment id from a millisecond timestamp and a
// random suffix, so ids sort by creation time and collide only if two
// ids are drawn in the same millisecond with the same random part.
func newPaymentID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

func (s *ledgerService) StatusOf(ctx context.Context, tenantID string) (domain.TenantStatus, error) {
	payments, err := s.paymentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return "", err
	}
	return s.deriveStatus(payments), nil
}

// deriveStatus works off the most recently appended payment, not the
// one with the greatest date. A backdated payment recorded after a
// current one therefore drives the status; this mirrors the historical
// behavior on purpose (see DESIGN.md).
func (s *ledgerService) deriveStatus(payments []domain.Payment) domain.TenantStatus {
	if len(payments) == 0 {
		return domain.TenantStatusNoPayments
	}
	last := payments[len(payments)-1]
	paidOn, err := time.ParseInLocation(domain.DateLayout, last.Date, time.UTC)
	if err != nil {
		// An unparsable date never ages into overdue.
		return domain.TenantStatusPaid
	}
	daysSince := int(math.Floor(s.now().UTC().Sub(paidOn).Hours() / 24))
	if daysSince > overdueAfterDays {
		return domain.TenantStatusOverdue
	}
	return domain.TenantStatusPaid
}

func (s *ledgerService) LastPayment(ctx context.Context, tenantID string) (*domain.Payment, error) {
	payments, err := s.paymentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, nil
	}
	last := payments[len(payments)-1]
	return &last, nil
}

func (s *ledgerService) ListPayments(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	return s.paymentRepo.ListByTenant(ctx, tenantID)
}

// ListTenants returns dashboard rows filtered by a case-insensitive
// substring search over name, id number and house, and by derived
// status. Input order is preserved.
func (s *ledgerService) ListTenants(ctx context.Context, search, statusFilter string) ([]TenantRow, error) {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if statusFilter == "" {
		statusFilter = domain.StatusFilterAll
	}
	term := strings.ToLower(search)

	var rows []TenantRow
	for _, t := range tenants {
		if !matchesSearch(t, term) {
			continue
		}
		payments, err := s.paymentRepo.ListByTenant(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		status := s.deriveStatus(payments)
		if statusFilter != domain.StatusFilterAll && string(status) != statusFilter {
			continue
		}
		row := TenantRow{Tenant: t, Status: status}
		if len(payments) > 0 {
			last := payments[len(payments)-1]
			row.LastPayment = &last
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func matchesSearch(t domain.Tenant, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), term) ||
		strings.Contains(strings.ToLower(t.IDNumber), term) ||
		strings.Contains(strings.ToLower(t.House), term)
}

func (s *ledgerService) ReceiptForPayment(ctx context.Context, paymentID string) (*domain.Receipt, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return s.buildReceipt(ctx, payment)
}

// ReceiptForTenant issues a receipt for the tenant's most recently
// appended payment.
func (s *ledgerService) ReceiptForTenant(ctx context.Context, tenantID string) (*domain.Receipt, error) {
	payment, err := s.LastPayment(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: no payments for tenant %s", domain.ErrNotFound, tenantID)
	}
	return s.buildReceipt(ctx, payment)
}

func (s *ledgerService) buildReceipt(ctx context.Context, payment *domain.Payment) (*domain.Receipt, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, payment.TenantID)
	if err != nil {
		// A payment may reference a since-deleted tenant; no receipt then.
		return nil, err
	}
	return &domain.Receipt{
		ReceiptNo:   payment.ID,
		Property:    s.property,
		TenantName:  tenant.Name,
		House:       tenant.House,
		IDNumber:    tenant.IDNumber,
		Amount:      payment.Amount,
		Method:      payment.Method,
		PaymentDate: payment.Date,
		Notes:       payment.Notes,
	}, nil
}
