package repository

import (
	"context"

	"rentledger-backend/internal/domain"
)

type TenantRepository interface {
	List(ctx context.Context) ([]domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
}

type PaymentRepository interface {
	List(ctx context.Context) ([]domain.Payment, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error)
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	Append(ctx context.Context, payment *domain.Payment) error
}

type FinanceRepository interface {
	Load(ctx context.Context) (*domain.FinanceSnapshot, error)
	Save(ctx context.Context, snapshot *domain.FinanceSnapshot) error
}
