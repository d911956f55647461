package ports

import (
	"context"

	"github.com/pagoservicios/payments-api/internal/core/domain"
)

// RecordRepository defines the persistence operations shared by every
// domain record type. One instantiation exists per entity.
type RecordRepository[T domain.Record] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, record *T) error
	// Get returns domain.ErrNotFound when no row exists for id.
	Get(ctx context.Context, id uint) (*T, error)
	// Replace overwrites the stored row wholesale.
	Replace(ctx context.Context, record *T) error
	// Delete returns domain.ErrNotFound when no row exists for id.
	Delete(ctx context.Context, id uint) error
}

// PaymentRepository extends the generic contract with the cascade rule:
// Delete removes the payment and its detail rows as a single transaction.
type PaymentRepository interface {
	RecordRepository[domain.Payment]
}
