package service

import (
	"context"
	"fmt"

	"github.com/feliperufini/felskys-manager-api/internal/apierror"
	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/infra"
	"github.com/feliperufini/felskys-manager-api/internal/model"
	"github.com/feliperufini/felskys-manager-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeriveStatus computes the invoice status from its amount and the sum of its
// payments. Status is never stored independently of this rule: PENDING while
// nothing is paid, PARTIAL below the amount, PAID at exactly the amount.
// A total above the amount is a conflict — overpayment is never clamped.
func DeriveStatus(amount, totalPaid decimal.Decimal) (string, error) {
	switch {
	case totalPaid.IsZero():
		return model.InvoicePending, nil
	case totalPaid.LessThan(amount):
		return model.InvoicePartial, nil
	case totalPaid.Equal(amount):
		return model.InvoicePaid, nil
	default:
		return "", apierror.Conflict(fmt.Sprintf(
			"O total pago (%s) excede o valor da fatura (%s).",
			totalPaid.StringFixed(2), amount.StringFixed(2)))
	}
}

type InvoiceService interface {
	Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	List(ctx context.Context) ([]dto.InvoiceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateInvoiceRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	// StatementPDF renders the invoice statement and returns the file path.
	StatementPDF(ctx context.Context, id uuid.UUID) (string, error)
}

type invoiceService struct {
	repo           repository.InvoiceRepository
	paymentRepo    repository.PaymentRepository
	orgRepo        repository.OrganizationRepository
	pdfStoragePath string
}

func NewInvoiceService(
	repo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	orgRepo repository.OrganizationRepository,
	pdfStoragePath string,
) InvoiceService {
	return &invoiceService{
		repo:           repo,
		paymentRepo:    paymentRepo,
		orgRepo:        orgRepo,
		pdfStoragePath: pdfStoragePath,
	}
}

func (s *invoiceService) Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, apierror.Validation("O valor da fatura deve ser maior que zero.")
	}
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return nil, apierror.Validation("organization_id inválido.")
	}

	// New invoices are always PENDING — clients never choose a status.
	inv := &model.Invoice{
		Amount:         req.Amount,
		DueDate:        req.DueDate,
		Status:         model.InvoicePending,
		OrganizationID: orgID,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, translate(err, "Fatura não encontrada.")
	}
	return invoiceToResponse(inv), nil
}

func (s *invoiceService) Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Fatura não encontrada.")
	}
	return invoiceToResponse(inv), nil
}

func (s *invoiceService) List(ctx context.Context) ([]dto.InvoiceResponse, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, "Fatura não encontrada.")
	}
	resp := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		resp = append(resp, *invoiceToResponse(&invoices[i]))
	}
	return resp, nil
}

// Update changes amount and due date, re-deriving the status against the
// already-recorded payments. A new amount below the paid total is rejected.
func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateInvoiceRequest) error {
	if !req.Amount.IsPositive() {
		return apierror.Validation("O valor da fatura deve ser maior que zero.")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		inv, err := s.repo.FindForUpdateTx(ctx, tx, id)
		if err != nil {
			return translate(err, "Fatura não encontrada.")
		}

		payments, err := s.paymentRepo.ListByInvoiceTx(tx, inv.ID)
		if err != nil {
			return translate(err, "Fatura não encontrada.")
		}
		totalPaid := sumPayments(payments)

		status, err := DeriveStatus(req.Amount, totalPaid)
		if err != nil {
			return err
		}

		inv.Amount = req.Amount
		inv.DueDate = req.DueDate
		inv.Status = status
		return translate(s.repo.SaveTx(tx, inv), "Fatura não encontrada.")
	})
}

// Delete removes an invoice. Payment history is preserved: deletion is
// blocked with a conflict while any payment exists.
func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		inv, err := s.repo.FindForUpdateTx(ctx, tx, id)
		if err != nil {
			return translate(err, "Fatura não encontrada.")
		}

		count, err := s.paymentRepo.CountByInvoiceTx(tx, inv.ID)
		if err != nil {
			return translate(err, "Fatura não encontrada.")
		}
		if count > 0 {
			return apierror.Conflict("A fatura possui pagamentos registrados e não pode ser deletada.")
		}
		return translate(s.repo.DeleteTx(tx, inv.ID), "Fatura não encontrada.")
	})
}

func (s *invoiceService) StatementPDF(ctx context.Context, id uuid.UUID) (string, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", translate(err, "Fatura não encontrada.")
	}
	org, err := s.orgRepo.FindByID(ctx, inv.OrganizationID)
	if err != nil {
		return "", translate(err, "Organização não encontrada.")
	}
	path, err := infra.GenerateInvoicePDF(inv, org, s.pdfStoragePath)
	if err != nil {
		return "", apierror.Internal(err)
	}
	return path, nil
}

func sumPayments(payments []model.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

func invoiceToResponse(inv *model.Invoice) *dto.InvoiceResponse {
	payments := make([]dto.PaymentResponse, 0, len(inv.Payments))
	for i := range inv.Payments {
		payments = append(payments, *paymentToResponse(&inv.Payments[i]))
	}
	return &dto.InvoiceResponse{
		ID:             inv.ID.String(),
		Amount:         inv.Amount,
		DueDate:        isoTime(inv.DueDate),
		Status:         inv.Status,
		OrganizationID: inv.OrganizationID.String(),
		TotalPaid:      sumPayments(inv.Payments),
		Payments:       payments,
		CreatedAt:      isoTime(inv.CreatedAt),
		UpdatedAt:      isoTime(inv.UpdatedAt),
	}
}
