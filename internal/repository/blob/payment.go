package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"rentledger-backend/internal/domain"
	"rentledger-backend/internal/repository"
	"rentledger-backend/internal/storage"
)

// paymentRepository owns the payments blob. The collection is loaded
// once, kept in memory for the life of the process, and rewritten in
// full on every append. If a write fails the appended record stays in
// memory: the session keeps serving from it, per the storage contract.
type paymentRepository struct {
	store storage.BlobStore

	mu       sync.Mutex
	loaded   bool
	payments []domain.Payment
}

func NewPaymentRepository(bs storage.BlobStore) repository.PaymentRepository {
	return &paymentRepository{store: bs}
}

// load populates the in-memory collection on first use. Callers must
// hold mu.
func (r *paymentRepository) load(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	data, err := r.store.Read(ctx, storage.KeyPayments)
	if errors.Is(err, storage.ErrKeyNotFound) {
		r.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading payments: %v", domain.ErrStorageUnavailable, err)
	}
	var payments []domain.Payment
	if err := json.Unmarshal(data, &payments); err != nil {
		return fmt.Errorf("failed to decode payments blob: %w", err)
	}
	r.payments = payments
	r.loaded = true
	return nil
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.Payment, len(r.payments))
	copy(out, r.payments)
	return out, nil
}

// ListByTenant returns a tenant's payments in append order. Insertion
// order is the ordering contract: status derivation depends on it.
func (r *paymentRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	var out []domain.Payment
	for _, p := range r.payments {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return nil, err
	}
	for i := range r.payments {
		if r.payments[i].ID == id {
			p := r.payments[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: payment %s", domain.ErrNotFound, id)
}

func (r *paymentRepository) Append(ctx context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(ctx); err != nil {
		return err
	}
	r.payments = append(r.payments, *payment)
	data, err := json.Marshal(r.payments)
	if err != nil {
		return fmt.Errorf("failed to encode payments blob: %w", err)
	}
	if err := r.store.Write(ctx, storage.KeyPayments, data); err != nil {
		return fmt.Errorf("%w: writing payments: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
