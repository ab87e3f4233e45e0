package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/internal/validators"
	"github.com/mvoronin/estate-keeper/models"
)

// invoiceService is the concrete implementation of InvoiceService.
//
// The status machine is draft → sent → paid, with overdue applied at read
// time: a sent invoice whose due date has passed is reported as overdue the
// moment anyone looks at it.
type invoiceService struct {
	invoiceRepository store.InvoiceRepository

	validator validators.Validator

	logger *logger.Logger
}

func NewInvoiceService(invoiceRepository store.InvoiceRepository, logger *logger.Logger) InvoiceService {
	return &invoiceService{
		invoiceRepository: invoiceRepository,
		validator:         validators.NewEstateValidator(),
		logger:            logger,
	}
}

// CreateInvoice validates and persists a new draft invoice owned by
// managerID. Line totals and document totals are recomputed server-side
// and a unique invoice number is generated, retrying on collision.
func (i *invoiceService) CreateInvoice(ctx context.Context, managerID string, invoice models.InvoiceWithItems) (models.InvoiceWithItems, error) {
	log := logger.FromContext(ctx)

	if managerID == "" {
		log.Error().Msg("empty manager id provided")
		return models.InvoiceWithItems{}, ErrInvalidDataProvided
	}
	if err := i.validator.Validate(ctx, invoice); err != nil {
		log.Err(err).Str("client_name", invoice.ClientName).Msg("invalid invoice data provided")
		return models.InvoiceWithItems{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	invoice.ManagerID = managerID
	invoice.Status = models.InvoiceStatusDraft
	recomputeInvoiceTotals(&invoice)

	for attempt := 0; attempt < numberAttemptBudget; attempt++ {
		invoice.InvoiceNumber = documentNumber("I", time.Now())

		createdInvoice, err := i.invoiceRepository.CreateInvoice(ctx, invoice)
		if err == nil {
			return createdInvoice, nil
		}
		if !errors.Is(err, store.ErrInvoiceNumberAlreadyExists) {
			log.Err(err).Str("client_name", invoice.ClientName).Msg("invoice creation ended with error")
			return models.InvoiceWithItems{}, fmt.Errorf("invoice creation ended with error: %w", err)
		}

		log.Debug().Str("invoice_number", invoice.InvoiceNumber).Int("attempt", attempt+1).Msg("invoice number collision, retrying")
	}

	log.Error().Str("client_name", invoice.ClientName).Msg("invoice number attempt budget exhausted")
	return models.InvoiceWithItems{}, ErrNumberGenerationFailed
}

func (i *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (models.InvoiceWithItems, error) {
	if invoiceID == "" {
		return models.InvoiceWithItems{}, ErrInvalidDataProvided
	}

	invoice, err := i.invoiceRepository.GetInvoice(ctx, invoiceID)
	if err != nil {
		return models.InvoiceWithItems{}, err
	}

	i.applyReadTimeOverdue(ctx, &invoice)

	return invoice, nil
}

func (i *invoiceService) ListInvoices(ctx context.Context, managerID string) ([]models.Invoice, error) {
	if managerID == "" {
		return nil, ErrInvalidDataProvided
	}

	invoices, err := i.invoiceRepository.ListInvoices(ctx, managerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for idx := range invoices {
		markOverdue(&invoices[idx], now)
	}

	return invoices, nil
}

// UpdateInvoice replaces the content of a draft invoice. The invoice
// number, owner and status are immutable here; totals are recomputed from
// the submitted items.
//
// Returns ErrNotDraft when the stored invoice has left draft state.
func (i *invoiceService) UpdateInvoice(ctx context.Context, invoice models.InvoiceWithItems) (models.InvoiceWithItems, error) {
	log := logger.FromContext(ctx)

	if invoice.InvoiceID == "" {
		log.Error().Msg("empty invoice id provided")
		return models.InvoiceWithItems{}, ErrInvalidDataProvided
	}
	if err := i.validator.Validate(ctx, invoice); err != nil {
		log.Err(err).Str("invoice_id", invoice.InvoiceID).Msg("invalid invoice data provided")
		return models.InvoiceWithItems{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	storedInvoice, err := i.invoiceRepository.GetInvoice(ctx, invoice.InvoiceID)
	if err != nil {
		return models.InvoiceWithItems{}, fmt.Errorf("invoice lookup ended with error: %w", err)
	}
	if storedInvoice.Status != models.InvoiceStatusDraft {
		log.Error().Str("invoice_id", invoice.InvoiceID).Str("status", string(storedInvoice.Status)).Msg("only draft invoices can be edited")
		return models.InvoiceWithItems{}, ErrNotDraft
	}

	invoice.InvoiceNumber = storedInvoice.InvoiceNumber
	invoice.ManagerID = storedInvoice.ManagerID
	invoice.Status = storedInvoice.Status
	recomputeInvoiceTotals(&invoice)

	updatedInvoice, err := i.invoiceRepository.UpdateInvoice(ctx, invoice)
	if err != nil {
		log.Err(err).Str("invoice_id", invoice.InvoiceID).Msg("invoice update ended with error")
		return models.InvoiceWithItems{}, fmt.Errorf("invoice update ended with error: %w", err)
	}

	return updatedInvoice, nil
}

// DeleteInvoice removes a draft invoice. Returns ErrNotDraft once the
// invoice has been sent.
func (i *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	log := logger.FromContext(ctx)

	if invoiceID == "" {
		return ErrInvalidDataProvided
	}

	storedInvoice, err := i.invoiceRepository.GetInvoice(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("invoice lookup ended with error: %w", err)
	}
	if storedInvoice.Status != models.InvoiceStatusDraft {
		log.Error().Str("invoice_id", invoiceID).Str("status", string(storedInvoice.Status)).Msg("only draft invoices can be deleted")
		return ErrNotDraft
	}

	return i.invoiceRepository.DeleteInvoice(ctx, invoiceID)
}

// SendInvoice moves a draft invoice to sent.
func (i *invoiceService) SendInvoice(ctx context.Context, invoiceID string) error {
	log := logger.FromContext(ctx)

	if invoiceID == "" {
		return ErrInvalidDataProvided
	}

	storedInvoice, err := i.invoiceRepository.GetInvoice(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("invoice lookup ended with error: %w", err)
	}
	if storedInvoice.Status != models.InvoiceStatusDraft {
		log.Error().Str("invoice_id", invoiceID).Str("status", string(storedInvoice.Status)).Msg("only draft invoices can be sent")
		return ErrInvalidStatusTransition
	}

	if err := i.invoiceRepository.UpdateInvoiceStatus(ctx, invoiceID, models.InvoiceStatusSent); err != nil {
		log.Err(err).Str("invoice_id", invoiceID).Msg("invoice send ended with error")
		return fmt.Errorf("invoice send ended with error: %w", err)
	}

	return nil
}

// MarkInvoicePaid settles a sent or overdue invoice.
func (i *invoiceService) MarkInvoicePaid(ctx context.Context, invoiceID string) error {
	log := logger.FromContext(ctx)

	if invoiceID == "" {
		return ErrInvalidDataProvided
	}

	storedInvoice, err := i.invoiceRepository.GetInvoice(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("invoice lookup ended with error: %w", err)
	}
	if storedInvoice.Status != models.InvoiceStatusSent && storedInvoice.Status != models.InvoiceStatusOverdue {
		log.Error().Str("invoice_id", invoiceID).Str("status", string(storedInvoice.Status)).Msg("only sent invoices can be marked paid")
		return ErrInvalidStatusTransition
	}

	if err := i.invoiceRepository.UpdateInvoiceStatus(ctx, invoiceID, models.InvoiceStatusPaid); err != nil {
		log.Err(err).Str("invoice_id", invoiceID).Msg("invoice payment ended with error")
		return fmt.Errorf("invoice payment ended with error: %w", err)
	}

	return nil
}

// GetInvoiceByNumber is the public invoice page read. Draft invoices are
// not publicly addressable.
func (i *invoiceService) GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (models.InvoiceWithItems, error) {
	log := logger.FromContext(ctx)

	if invoiceNumber == "" {
		return models.InvoiceWithItems{}, ErrInvalidDataProvided
	}

	invoice, err := i.invoiceRepository.GetInvoiceByNumber(ctx, invoiceNumber)
	if err != nil {
		return models.InvoiceWithItems{}, fmt.Errorf("invoice lookup ended with error: %w", err)
	}
	if invoice.Status == models.InvoiceStatusDraft {
		log.Debug().Str("invoice_number", invoiceNumber).Msg("draft invoice requested publicly")
		return models.InvoiceWithItems{}, store.ErrInvoiceNotFound
	}

	i.applyReadTimeOverdue(ctx, &invoice)

	return invoice, nil
}

// applyReadTimeOverdue moves a sent invoice past its due date to overdue,
// both in storage and on the in-memory copy.
func (i *invoiceService) applyReadTimeOverdue(ctx context.Context, invoice *models.InvoiceWithItems) {
	if !markOverdue(&invoice.Invoice, time.Now()) {
		return
	}

	log := logger.FromContext(ctx)
	if err := i.invoiceRepository.UpdateInvoiceStatus(ctx, invoice.InvoiceID, models.InvoiceStatusOverdue); err != nil {
		log.Err(err).Str("invoice_id", invoice.InvoiceID).Msg("overdue transition failed")
	}
}

// markOverdue flips a sent invoice past its due date to overdue in place
// and reports whether it did.
func markOverdue(invoice *models.Invoice, now time.Time) bool {
	if invoice.Status != models.InvoiceStatusSent {
		return false
	}
	if invoice.DueDate == nil || !invoice.DueDate.Before(now) {
		return false
	}

	invoice.Status = models.InvoiceStatusOverdue

	return true
}

// recomputeInvoiceTotals overwrites every line total and the invoice's
// money fields. A line total is always quantity times unit price.
func recomputeInvoiceTotals(invoice *models.InvoiceWithItems) {
	var subtotal float64
	for idx := range invoice.Items {
		invoice.Items[idx].Total = invoice.Items[idx].Quantity * invoice.Items[idx].UnitPrice
		subtotal += invoice.Items[idx].Total
	}

	invoice.Subtotal = subtotal
	invoice.TaxAmount = subtotal * invoice.TaxRate / 100
	invoice.Total = invoice.Subtotal + invoice.TaxAmount
}
