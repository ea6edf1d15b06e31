// Package blob implements the repositories over a whole-blob key-value
// store: each collection is one JSON blob, read at first use and
// rewritten in full after every mutation.
package blob

import (
	"rentledger-backend/internal/repository"
	"rentledger-backend/internal/storage"
)

type Store struct {
	repository.TenantRepository
	repository.PaymentRepository
	repository.FinanceRepository
}

func NewStore(bs storage.BlobStore) *Store {
	return &Store{
		TenantRepository:  NewTenantRepository(bs),
		PaymentRepository: NewPaymentRepository(bs),
		FinanceRepository: NewFinanceRepository(bs),
	}
}
