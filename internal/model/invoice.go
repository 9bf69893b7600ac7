package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice status values. Status is always derived from the payment total —
// never set directly by a client.
const (
	InvoicePending = "PENDING"
	InvoicePartial = "PARTIAL"
	InvoicePaid    = "PAID"
)

// Invoice is a billing obligation owned by an Organization. The invoice row
// plus its payments form one consistency unit: every payment write locks the
// invoice and recomputes Status inside the same transaction.
type Invoice struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DueDate        time.Time       `gorm:"not null"`
	Status         string          `gorm:"type:varchar(10);not null;default:'PENDING'"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Payments []Payment `gorm:"foreignKey:InvoiceID"`
}
