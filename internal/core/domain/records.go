package domain

import "time"

// Payment states. The reference data allows at most 10 characters.
const (
	PaymentPending = "pendiente"
	PaymentPaid    = "pagado"
	PaymentOverdue = "vencido"
)

// Record is implemented by every persisted entity with a surrogate integer
// identity. Services use it to compare the body id against the path id.
type Record interface {
	RecordID() uint
}

// Client is an independent entity referenced by payments and balances.
type Client struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null" validate:"required"`
	Phone string `json:"phone" gorm:"not null" validate:"required"`
}

func (c Client) RecordID() uint { return c.ID }

// Package is a purchasable service package.
type Package struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2)" validate:"required"`
}

func (p Package) RecordID() uint { return p.ID }

// PaymentConcept labels what a payment line item is for.
type PaymentConcept struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null" validate:"required"`
}

func (c PaymentConcept) RecordID() uint { return c.ID }

// Payment owns zero or more PaymentDetail rows. Deleting a payment removes
// its detail rows in the same transaction.
type Payment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ClientID  uint      `json:"client_id" gorm:"not null" validate:"required"`
	PackageID uint      `json:"package_id" gorm:"not null" validate:"required"`
	Total     float64   `json:"total" gorm:"type:decimal(10,2)" validate:"required"`
	DueDate   time.Time `json:"due_date" gorm:"not null" validate:"required"`
	Status    string    `json:"status" gorm:"size:10;not null" validate:"required"`
}

func (p Payment) RecordID() uint { return p.ID }

// PaymentDetail is a line item of a payment. Its lifetime is bound to the
// owning payment.
type PaymentDetail struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	PaymentID uint    `json:"payment_id" gorm:"index;not null" validate:"required"`
	ConceptID uint    `json:"concept_id" gorm:"not null" validate:"required"`
	Amount    float64 `json:"amount" gorm:"type:decimal(10,2)" validate:"required"`
}

func (d PaymentDetail) RecordID() uint { return d.ID }

// Balance is an independent ledger entry per client. It carries no cascade
// tie to payments.
type Balance struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	ClientID uint      `json:"client_id" gorm:"not null" validate:"required"`
	Amount   float64   `json:"amount" gorm:"type:decimal(10,2)" validate:"required"`
	LoadedAt time.Time `json:"loaded_at" gorm:"not null" validate:"required"`
}

func (b Balance) RecordID() uint { return b.ID }
