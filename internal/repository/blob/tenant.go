package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"rentledger-backend/internal/domain"
	"rentledger-backend/internal/repository"
	"rentledger-backend/internal/storage"
)

type tenantRepository struct {
	store storage.BlobStore
}

func NewTenantRepository(bs storage.BlobStore) repository.TenantRepository {
	return &tenantRepository{store: bs}
}

// List re-reads the blob on every call: the tenant collection is owned
// by the tenant-management application, which may rewrite it while
// this service is running.
func (r *tenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	data, err := r.store.Read(ctx, storage.KeyTenants)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading tenants: %v", domain.ErrStorageUnavailable, err)
	}
	var tenants []domain.Tenant
	if err := json.Unmarshal(data, &tenants); err != nil {
		return nil, fmt.Errorf("failed to decode tenants blob: %w", err)
	}
	return tenants, nil
}

func (r *tenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	tenants, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tenants {
		if tenants[i].ID == id {
			return &tenants[i], nil
		}
	}
	return nil, fmt.Errorf("%w: tenant %s", domain.ErrNotFound, id)
}
