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

type financeRepository struct {
	store storage.BlobStore
}

func NewFinanceRepository(bs storage.BlobStore) repository.FinanceRepository {
	return &financeRepository{store: bs}
}

func (r *financeRepository) Load(ctx context.Context) (*domain.FinanceSnapshot, error) {
	data, err := r.store.Read(ctx, storage.KeyFinance)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return &domain.FinanceSnapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading finance data: %v", domain.ErrStorageUnavailable, err)
	}
	var snapshot domain.FinanceSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode finance blob: %w", err)
	}
	return &snapshot, nil
}

func (r *financeRepository) Save(ctx context.Context, snapshot *domain.FinanceSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode finance blob: %w", err)
	}
	if err := r.store.Write(ctx, storage.KeyFinance, data); err != nil {
		return fmt.Errorf("%w: writing finance data: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
