package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pagoservicios/payments-api/internal/core/domain"
	"github.com/pagoservicios/payments-api/internal/core/ports"
)

// PaymentService layers idempotent creation over the generic
// CRUD service. The cascade delete itself lives in the repository so the
// detail rows and the payment row go away in one transaction.
type PaymentService struct {
	*RecordService[domain.Payment]
	idem   ports.IdempotencyStore
	logger zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, idem ports.IdempotencyStore, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		RecordService: NewRecordService[domain.Payment](repo, "payment", logger),
		idem:          idem,
		logger:        logger,
	}
}

// CreateIdempotent creates a payment. When key was already seen, the payment
// created by the first request is returned and the replayed flag is true.
func (s *PaymentService) CreateIdempotent(ctx context.Context, key string, payment *domain.Payment) (*domain.Payment, bool, error) {
	if key != "" {
		id, found, err := s.idem.Lookup(ctx, key)
		if err != nil {
			return nil, false, err
		}
		if found {
			existing, err := s.Get(ctx, id)
			if err != nil {
				return nil, false, err
			}
			s.logger.Info().Str("idempotency_key", key).Uint("payment_id", id).Msg("idempotent replay")
			return existing, true, nil
		}
	}

	created, err := s.Create(ctx, payment)
	if err != nil {
		return nil, false, err
	}
	if key != "" {
		if err := s.idem.Remember(ctx, key, created.ID); err != nil {
			// The payment is committed; a failed marker only costs a
			// possible duplicate on retry.
			s.logger.Error().Err(err).Str("idempotency_key", key).Msg("failed to record idempotency key")
		}
	}

	return created, false, nil
}
