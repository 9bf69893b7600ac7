package worker

// receipt_worker.go
// Processes receipt jobs from QueueReceipt: an invoice that just became fully
// paid gets a PDF statement, then an email job for the billing address.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/feliperufini/felskys-manager-api/internal/infra"
	"github.com/feliperufini/felskys-manager-api/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type ReceiptWorker struct {
	invoiceRepo    repository.InvoiceRepository
	orgRepo        repository.OrganizationRepository
	dispatcher     *Dispatcher
	rdb            *redis.Client
	pdfStoragePath string
	billingEmail   string
}

func NewReceiptWorker(
	invoiceRepo repository.InvoiceRepository,
	orgRepo repository.OrganizationRepository,
	dispatcher *Dispatcher,
	rdb *redis.Client,
	pdfStoragePath string,
	billingEmail string,
) *ReceiptWorker {
	return &ReceiptWorker{
		invoiceRepo:    invoiceRepo,
		orgRepo:        orgRepo,
		dispatcher:     dispatcher,
		rdb:            rdb,
		pdfStoragePath: pdfStoragePath,
		billingEmail:   billingEmail,
	}
}

// Process handles a single receipt job:
//  1. Parse ReceiptJobPayload from the job envelope
//  2. Fetch the invoice (with payments) and its organization
//  3. Generate the PDF statement
//  4. Enqueue an email job when a billing address is configured
//
// Failures after parsing go to the DLQ so a paid invoice never loses its
// receipt silently.
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return
	}

	invoiceID, err := uuid.Parse(payload.InvoiceID)
	if err != nil {
		log.Error().Str("invoice_id", payload.InvoiceID).Msg("receipt_worker: invalid invoice_id")
		return
	}

	invoice, err := w.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		w.fail(ctx, raw, fmt.Sprintf("invoice lookup failed: %v", err))
		return
	}
	org, err := w.orgRepo.FindByID(ctx, invoice.OrganizationID)
	if err != nil {
		w.fail(ctx, raw, fmt.Sprintf("organization lookup failed: %v", err))
		return
	}

	pdfPath, err := infra.GenerateInvoicePDF(invoice, org, w.pdfStoragePath)
	if err != nil {
		w.fail(ctx, raw, fmt.Sprintf("pdf generation failed: %v", err))
		return
	}
	log.Info().
		Str("invoice_id", invoice.ID.String()).
		Str("pdf_path", pdfPath).
		Msg("receipt_worker: receipt generated")

	if w.billingEmail == "" {
		return
	}
	emailJob := EmailJobPayload{
		ToEmail: w.billingEmail,
		Subject: fmt.Sprintf("Recibo de pagamento — fatura %s", invoice.ID),
		Body: fmt.Sprintf(
			"A fatura %s da organização %s foi quitada. O recibo segue em anexo.",
			invoice.ID, org.BusinessName,
		),
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		w.fail(ctx, raw, fmt.Sprintf("email enqueue failed: %v", err))
	}
}

func (w *ReceiptWorker) fail(ctx context.Context, payload json.RawMessage, reason string) {
	log.Error().Str("reason", reason).Msg("receipt_worker: job failed")
	SendToDLQ(ctx, w.rdb, QueueReceipt, "receipt", payload, reason, 1)
}
