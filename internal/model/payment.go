package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment method values.
const (
	MethodCash     = "CASH"
	MethodPix      = "PIX"
	MethodBankSlip = "BANK_SLIP"
	MethodCredit   = "CREDIT"
	MethodDebit    = "DEBIT"
	MethodOthers   = "OTHERS"
)

// Payment is an amount applied against an Invoice. Identity is immutable;
// amount, date and method may be edited, which re-derives the parent
// invoice status.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentDate   time.Time       `gorm:"not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	InvoiceID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
