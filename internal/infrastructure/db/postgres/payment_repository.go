package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pagoservicios/payments-api/internal/core/domain"
)

// PaymentRepository specializes the generic repository with the cascade
// rule: deleting a payment removes its detail rows and the payment row as a
// single transaction, or neither.
type PaymentRepository struct {
	*RecordRepository[domain.Payment]
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		RecordRepository: NewRecordRepository[domain.Payment](db),
		db:               db,
	}
}

// Delete removes the detail rows first and then the payment row. When the
// payment does not exist the transaction rolls back, so detail rows with a
// dangling payment reference are never silently dropped either.
func (r *PaymentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_id = ?", id).Delete(&domain.PaymentDetail{}).Error; err != nil {
			return fmt.Errorf("delete payment details: %w", err)
		}
		res := tx.Delete(&domain.Payment{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete payment: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
