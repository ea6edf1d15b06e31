package domain

import "errors"

var (
	// ErrDuplicateSubmission is returned when a payment matching an
	// existing (tenant, amount, date) triple is re-submitted within
	// the dedup window. The caller must re-act explicitly; nothing is
	// retried.
	ErrDuplicateSubmission = errors.New("duplicate submission")

	// ErrMalformedInput is returned when a required field is missing
	// or unparsable. No state is mutated.
	ErrMalformedInput = errors.New("malformed input")

	// ErrStorageUnavailable is returned when the blob store is absent
	// or failing. In-memory state remains the source of truth for the
	// session.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotFound is returned when a tenant or payment lookup misses.
	ErrNotFound = errors.New("not found")
)
