package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"         validate:"required,gt=0"`
	PaymentDate   time.Time       `json:"payment_date"   validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=CASH PIX BANK_SLIP CREDIT DEBIT OTHERS"`
	InvoiceID     string          `json:"invoice_id"     validate:"required,uuid"`
}

// UpdatePaymentRequest carries no invoice reference: the parent invoice is
// always resolved from the stored payment row.
type UpdatePaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"         validate:"required,gt=0"`
	PaymentDate   time.Time       `json:"payment_date"   validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=CASH PIX BANK_SLIP CREDIT DEBIT OTHERS"`
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	InvoiceID     string          `json:"invoice_id"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}
