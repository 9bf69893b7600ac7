package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest never carries a status: new invoices are always
// PENDING and every later status is derived from the payment total.
type CreateInvoiceRequest struct {
	Amount         decimal.Decimal `json:"amount"          validate:"required,gt=0"`
	DueDate        time.Time       `json:"due_date"        validate:"required"`
	OrganizationID string          `json:"organization_id" validate:"required,uuid"`
}

type UpdateInvoiceRequest struct {
	Amount  decimal.Decimal `json:"amount"   validate:"required,gt=0"`
	DueDate time.Time       `json:"due_date" validate:"required"`
}

type InvoiceResponse struct {
	ID             string            `json:"id"`
	Amount         decimal.Decimal   `json:"amount"`
	DueDate        string            `json:"due_date"`
	Status         string            `json:"status"`
	OrganizationID string            `json:"organization_id"`
	TotalPaid      decimal.Decimal   `json:"total_paid"`
	Payments       []PaymentResponse `json:"payments,omitempty"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}
