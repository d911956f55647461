package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pagoservicios/payments-api/internal/core/domain"
	"github.com/pagoservicios/payments-api/internal/core/ports"
)

// RecordService implements the CRUD contract for one entity type on top of
// its repository. It owns no entity-specific rules; those live in wrappers
// such as PaymentService.
type RecordService[T domain.Record] struct {
	repo   ports.RecordRepository[T]
	entity string
	logger zerolog.Logger
}

func NewRecordService[T domain.Record](repo ports.RecordRepository[T], entity string, logger zerolog.Logger) *RecordService[T] {
	return &RecordService[T]{repo: repo, entity: entity, logger: logger}
}

func (s *RecordService[T]) List(ctx context.Context) ([]T, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		s.logger.Warn().Str("entity", s.entity).Msg("list returned no records")
		return nil, domain.ErrNoRecords
	}
	return records, nil
}

func (s *RecordService[T]) Create(ctx context.Context, record *T) (*T, error) {
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *RecordService[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.Get(ctx, id)
}

// Update verifies the body id against the path id, confirms the row exists
// and then replaces it wholesale.
func (s *RecordService[T]) Update(ctx context.Context, id uint, record *T) (*T, error) {
	if (*record).RecordID() != id {
		s.logger.Warn().Str("entity", s.entity).Uint("path_id", id).Uint("body_id", (*record).RecordID()).Msg("update id mismatch")
		return nil, domain.ErrIDMismatch
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.Replace(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *RecordService[T]) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("entity", s.entity).Uint("id", id).Msg("record deleted")
	return nil
}
