package storage

import (
	"context"
	"errors"
)

// Blob keys used by the ledger. The store is treated as an opaque
// durable key-value map: collections are read and rewritten whole,
// one JSON blob per key.
const (
	KeyTenants  = "tenants"
	KeyPayments = "payments"
	KeyFinance  = "financeData"
)

// ErrKeyNotFound is returned by Read when a key has never been
// written. Callers treat it as an empty collection.
var ErrKeyNotFound = errors.New("storage: key not found")

// BlobStore is the storage collaborator port. Write replaces the
// whole blob for a key; there are no partial updates and no
// versioning, so the last writer wins.
type BlobStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}
