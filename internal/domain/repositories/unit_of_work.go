package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations. Finalizing a
// disbursement case must move it from pending to completed with no
// externally observable intermediate state.
type UnitOfWork interface {
	// Do executes the given function within a transaction scope
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
