package ports

import (
	"context"

	"github.com/pagoservicios/payments-api/internal/core/domain"
)

// RecordService is the CRUD contract each entity service satisfies.
type RecordService[T domain.Record] interface {
	// List returns all rows, or domain.ErrNoRecords when the set is empty.
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record *T) (*T, error)
	Get(ctx context.Context, id uint) (*T, error)
	// Update fails with domain.ErrIDMismatch when the record's own id does
	// not equal id, and with domain.ErrNotFound when no row exists.
	Update(ctx context.Context, id uint, record *T) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// PaymentService adds idempotent creation on top of the CRUD contract.
type PaymentService interface {
	RecordService[domain.Payment]
	// CreateIdempotent behaves like Create but, when key is non-empty and
	// was seen before, returns the originally created payment instead of
	// inserting a second row.
	CreateIdempotent(ctx context.Context, key string, payment *domain.Payment) (*domain.Payment, bool, error)
}

// IdempotencyStore remembers which idempotency keys have produced a payment.
type IdempotencyStore interface {
	// Lookup returns the payment id recorded for key, if any.
	Lookup(ctx context.Context, key string) (uint, bool, error)
	Remember(ctx context.Context, key string, paymentID uint) error
}
