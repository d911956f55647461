package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pagoservicios/payments-api/internal/core/domain"
)

// RecordRepository is the gorm-backed implementation of the generic CRUD
// contract, instantiated once per entity type.
type RecordRepository[T domain.Record] struct {
	db *gorm.DB
}

func NewRecordRepository[T domain.Record](db *gorm.DB) *RecordRepository[T] {
	return &RecordRepository[T]{db: db}
}

func (r *RecordRepository[T]) List(ctx context.Context) ([]T, error) {
	var records []T
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

func (r *RecordRepository[T]) Create(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}

func (r *RecordRepository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return &record, nil
}

// Replace overwrites the stored row wholesale with the given record.
func (r *RecordRepository[T]) Replace(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("replace record: %w", err)
	}
	return nil
}

func (r *RecordRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
