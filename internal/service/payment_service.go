package service

import (
	"context"
	"time"

	"github.com/feliperufini/felskys-manager-api/internal/apierror"
	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/model"
	"github.com/feliperufini/felskys-manager-api/internal/repository"
	"github.com/feliperufini/felskys-manager-api/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentService interface {
	Record(ctx context.Context, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error)
	List(ctx context.Context) ([]dto.PaymentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePaymentRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentService struct {
	repo        repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
	dispatcher  *worker.Dispatcher
}

func NewPaymentService(
	repo repository.PaymentRepository,
	invoiceRepo repository.InvoiceRepository,
	dispatcher *worker.Dispatcher,
) PaymentService {
	return &paymentService{repo: repo, invoiceRepo: invoiceRepo, dispatcher: dispatcher}
}

// ── Record ───────────────────────────────────────────────────────────────────
// One atomic unit per the ledger contract:
//   1. Lock the invoice row (FOR UPDATE) and read its payment set
//   2. Reject if the invoice is already PAID
//   3. Reject if the prospective total would exceed the invoice amount
//   4. Persist the payment and the re-derived invoice status together
// Two concurrent Record calls against the same invoice serialize on the row
// lock, so neither can pass the overpayment check on a stale total.

func (s *paymentService) Record(ctx context.Context, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, apierror.Validation("O valor do pagamento deve ser maior que zero.")
	}
	if req.PaymentDate.After(time.Now()) {
		return nil, apierror.Validation("A data do pagamento não pode estar no futuro.")
	}
	invoiceID, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		return nil, apierror.Validation("invoice_id inválido.")
	}

	var payment model.Payment
	var becamePaid bool

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		inv, err := s.invoiceRepo.FindForUpdateTx(ctx, tx, invoiceID)
		if err != nil {
			return translate(err, "Fatura não encontrada.")
		}
		if inv.Status == model.InvoicePaid {
			return apierror.Conflict("A fatura já está quitada.")
		}

		payments, err := s.repo.ListByInvoiceTx(tx, inv.ID)
		if err != nil {
			return translate(err, "Fatura não encontrada.")
		}
		prospectiveTotal := sumPayments(payments).Add(req.Amount)

		status, err := DeriveStatus(inv.Amount, prospectiveTotal)
		if err != nil {
			return err
		}

		payment = model.Payment{
			Amount:        req.Amount,
			PaymentDate:   req.PaymentDate,
			PaymentMethod: req.PaymentMethod,
			InvoiceID:     inv.ID,
		}
		if err := s.repo.CreateTx(tx, &payment); err != nil {
			return translate(err, "Fatura não encontrada.")
		}

		becamePaid = status == model.InvoicePaid
		return translate(s.invoiceRepo.UpdateStatusTx(tx, inv.ID, status), "Fatura não encontrada.")
	})
	if txErr != nil {
		return nil, txErr
	}

	// Receipt job — best-effort, fire & forget, outside the transaction
	if becamePaid && s.dispatcher != nil {
		_ = s.dispatcher.EnqueueReceipt(ctx, worker.ReceiptJobPayload{
			InvoiceID: invoiceID.String(),
		})
	}

	return paymentToResponse(&payment), nil
}

func (s *paymentService) Get(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Pagamento não encontrado.")
	}
	return paymentToResponse(p), nil
}

func (s *paymentService) List(ctx context.Context) ([]dto.PaymentResponse, error) {
	payments, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, "Pagamento não encontrado.")
	}
	resp := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, *paymentToResponse(&payments[i]))
	}
	return resp, nil
}

// Update edits amount, date and method of an existing payment. The parent
// invoice comes from the payment row itself, and the total is recomputed with
// the edited payment excluded before re-including the new amount.
func (s *paymentService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePaymentRequest) error {
	if !req.Amount.IsPositive() {
		return apierror.Validation("O valor do pagamento deve ser maior que zero.")
	}
	if req.PaymentDate.After(time.Now()) {
		return apierror.Validation("A data do pagamento não pode estar no futuro.")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		payment, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return translate(err, "Pagamento não encontrado.")
		}

		inv, err := s.invoiceRepo.FindForUpdateTx(ctx, tx, payment.InvoiceID)
		if err != nil {
			return translate(err, "Fatura não encontrada.")
		}

		// The first read ran outside the lock; a concurrent delete may have
		// committed in between. Re-read under the lock before writing.
		payment, err = s.repo.FindByIDTx(tx, id)
		if err != nil {
			return translate(err, "Pagamento não encontrado.")
		}

		payments, err := s.repo.ListByInvoiceTx(tx, inv.ID)
		if err != nil {
			return translate(err, "Fatura não encontrada.")
		}
		totalOthers := sumPaymentsExcluding(payments, payment.ID)

		status, err := DeriveStatus(inv.Amount, totalOthers.Add(req.Amount))
		if err != nil {
			return err
		}

		payment.Amount = req.Amount
		payment.PaymentDate = req.PaymentDate
		payment.PaymentMethod = req.PaymentMethod
		if err := s.repo.SaveTx(tx, payment); err != nil {
			return translate(err, "Pagamento não encontrado.")
		}
		return translate(s.invoiceRepo.UpdateStatusTx(tx, inv.ID, status), "Fatura não encontrada.")
	})
}

// Delete removes a payment and re-derives the invoice status from the
// remaining payments, so the ledger invariant holds after removal too
// (a fully-paid invoice drops back to PARTIAL or PENDING).
func (s *paymentService) Delete(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		payment, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return translate(err, "Pagamento não encontrado.")
		}

		inv, err := s.invoiceRepo.FindForUpdateTx(ctx, tx, payment.InvoiceID)
		if err != nil {
			return translate(err, "Fatura não encontrada.")
		}

		// Re-read under the lock: another delete may already have removed
		// this payment after the first read.
		payment, err = s.repo.FindByIDTx(tx, id)
		if err != nil {
			return translate(err, "Pagamento não encontrado.")
		}

		payments, err := s.repo.ListByInvoiceTx(tx, inv.ID)
		if err != nil {
			return translate(err, "Fatura não encontrada.")
		}
		remaining := sumPaymentsExcluding(payments, payment.ID)

		status, err := DeriveStatus(inv.Amount, remaining)
		if err != nil {
			return err
		}

		if err := s.repo.DeleteTx(tx, payment.ID); err != nil {
			return translate(err, "Pagamento não encontrado.")
		}
		return translate(s.invoiceRepo.UpdateStatusTx(tx, inv.ID, status), "Fatura não encontrada.")
	})
}

func sumPaymentsExcluding(payments []model.Payment, exclude uuid.UUID) (total decimal.Decimal) {
	total = decimal.Zero
	for _, p := range payments {
		if p.ID == exclude {
			continue
		}
		total = total.Add(p.Amount)
	}
	return total
}

func paymentToResponse(p *model.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:            p.ID.String(),
		Amount:        p.Amount,
		PaymentDate:   isoTime(p.PaymentDate),
		PaymentMethod: p.PaymentMethod,
		InvoiceID:     p.InvoiceID.String(),
		CreatedAt:     isoTime(p.CreatedAt),
		UpdatedAt:     isoTime(p.UpdatedAt),
	}
}
