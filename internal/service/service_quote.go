package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/internal/validators"
	"github.com/mvoronin/estate-keeper/models"
)

// numberAttemptBudget bounds how many document numbers are tried before
// giving up with ErrNumberGenerationFailed.
const numberAttemptBudget = 10

// documentNumber produces a human-readable document number such as
// "Q-2026-4F2A". Uniqueness is enforced by the database; collisions are
// retried by the caller.
func documentNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", prefix, now.Year(), strings.ToUpper(randomSuffix()))
}

// quoteService is the concrete implementation of QuoteService.
//
// The status machine is draft → sent → viewed → accepted | declined, with
// expiry applied at read time: a sent or viewed quote whose validity window
// has passed is moved to expired the moment anyone looks at it.
type quoteService struct {
	quoteRepository store.QuoteRepository

	// invoiceRepository backs quote-to-invoice conversion.
	invoiceRepository store.InvoiceRepository

	validator validators.Validator

	logger *logger.Logger
}

func NewQuoteService(quoteRepository store.QuoteRepository, invoiceRepository store.InvoiceRepository, logger *logger.Logger) QuoteService {
	return &quoteService{
		quoteRepository:   quoteRepository,
		invoiceRepository: invoiceRepository,
		validator:         validators.NewEstateValidator(),
		logger:            logger,
	}
}

// CreateQuote validates and persists a new draft quote owned by managerID.
// Totals are recomputed server-side and a unique quote number is generated,
// retrying on collision up to numberAttemptBudget times.
func (q *quoteService) CreateQuote(ctx context.Context, managerID string, quote models.QuoteWithItems) (models.QuoteWithItems, error) {
	log := logger.FromContext(ctx)

	if managerID == "" {
		log.Error().Msg("empty manager id provided")
		return models.QuoteWithItems{}, ErrInvalidDataProvided
	}
	if err := q.validator.Validate(ctx, quote); err != nil {
		log.Err(err).Str("client_name", quote.ClientName).Msg("invalid quote data provided")
		return models.QuoteWithItems{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	quote.ManagerID = managerID
	quote.Status = models.QuoteStatusDraft
	recomputeQuoteTotals(&quote)

	for attempt := 0; attempt < numberAttemptBudget; attempt++ {
		quote.QuoteNumber = documentNumber("Q", time.Now())

		createdQuote, err := q.quoteRepository.CreateQuote(ctx, quote)
		if err == nil {
			return createdQuote, nil
		}
		if !errors.Is(err, store.ErrQuoteNumberAlreadyExists) {
			log.Err(err).Str("client_name", quote.ClientName).Msg("quote creation ended with error")
			return models.QuoteWithItems{}, fmt.Errorf("quote creation ended with error: %w", err)
		}

		log.Debug().Str("quote_number", quote.QuoteNumber).Int("attempt", attempt+1).Msg("quote number collision, retrying")
	}

	log.Error().Str("client_name", quote.ClientName).Msg("quote number attempt budget exhausted")
	return models.QuoteWithItems{}, ErrNumberGenerationFailed
}

func (q *quoteService) GetQuote(ctx context.Context, quoteID string) (models.QuoteWithItems, error) {
	if quoteID == "" {
		return models.QuoteWithItems{}, ErrInvalidDataProvided
	}

	return q.quoteRepository.GetQuote(ctx, quoteID)
}

func (q *quoteService) ListQuotes(ctx context.Context, managerID string) ([]models.Quote, error) {
	if managerID == "" {
		return nil, ErrInvalidDataProvided
	}

	return q.quoteRepository.ListQuotes(ctx, managerID)
}

// UpdateQuote replaces the content of a draft quote. The quote number,
// owner and status are immutable here; totals are recomputed from the
// submitted items.
//
// Returns ErrNotDraft when the stored quote has left draft state.
func (q *quoteService) UpdateQuote(ctx context.Context, quote models.QuoteWithItems) (models.QuoteWithItems, error) {
	log := logger.FromContext(ctx)

	if quote.QuoteID == "" {
		log.Error().Msg("empty quote id provided")
		return models.QuoteWithItems{}, ErrInvalidDataProvided
	}
	if err := q.validator.Validate(ctx, quote); err != nil {
		log.Err(err).Str("quote_id", quote.QuoteID).Msg("invalid quote data provided")
		return models.QuoteWithItems{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	storedQuote, err := q.quoteRepository.GetQuote(ctx, quote.QuoteID)
	if err != nil {
		return models.QuoteWithItems{}, fmt.Errorf("quote lookup ended with error: %w", err)
	}
	if storedQuote.Status != models.QuoteStatusDraft {
		log.Error().Str("quote_id", quote.QuoteID).Str("status", string(storedQuote.Status)).Msg("only draft quotes can be edited")
		return models.QuoteWithItems{}, ErrNotDraft
	}

	quote.QuoteNumber = storedQuote.QuoteNumber
	quote.ManagerID = storedQuote.ManagerID
	quote.Status = storedQuote.Status
	recomputeQuoteTotals(&quote)

	updatedQuote, err := q.quoteRepository.UpdateQuote(ctx, quote)
	if err != nil {
		log.Err(err).Str("quote_id", quote.QuoteID).Msg("quote update ended with error")
		return models.QuoteWithItems{}, fmt.Errorf("quote update ended with error: %w", err)
	}

	return updatedQuote, nil
}

// DeleteQuote removes a draft quote. Returns ErrNotDraft once the quote has
// been sent.
func (q *quoteService) DeleteQuote(ctx context.Context, quoteID string) error {
	log := logger.FromContext(ctx)

	if quoteID == "" {
		return ErrInvalidDataProvided
	}

	storedQuote, err := q.quoteRepository.GetQuote(ctx, quoteID)
	if err != nil {
		return fmt.Errorf("quote lookup ended with error: %w", err)
	}
	if storedQuote.Status != models.QuoteStatusDraft {
		log.Error().Str("quote_id", quoteID).Str("status", string(storedQuote.Status)).Msg("only draft quotes can be deleted")
		return ErrNotDraft
	}

	return q.quoteRepository.DeleteQuote(ctx, quoteID)
}

// SendQuote moves a draft quote to sent, opening it up for the public
// quote page.
func (q *quoteService) SendQuote(ctx context.Context, quoteID string) error {
	log := logger.FromContext(ctx)

	if quoteID == "" {
		return ErrInvalidDataProvided
	}

	storedQuote, err := q.quoteRepository.GetQuote(ctx, quoteID)
	if err != nil {
		return fmt.Errorf("quote lookup ended with error: %w", err)
	}
	if storedQuote.Status != models.QuoteStatusDraft {
		log.Error().Str("quote_id", quoteID).Str("status", string(storedQuote.Status)).Msg("only draft quotes can be sent")
		return ErrInvalidStatusTransition
	}

	if err := q.quoteRepository.UpdateQuoteStatus(ctx, quoteID, models.QuoteStatusSent); err != nil {
		log.Err(err).Str("quote_id", quoteID).Msg("quote send ended with error")
		return fmt.Errorf("quote send ended with error: %w", err)
	}

	return nil
}

// DuplicateQuote creates a fresh draft copy of an existing quote with a new
// quote number. Items are copied in order; the source quote is untouched.
func (q *quoteService) DuplicateQuote(ctx context.Context, quoteID string) (models.QuoteWithItems, error) {
	log := logger.FromContext(ctx)

	if quoteID == "" {
		return models.QuoteWithItems{}, ErrInvalidDataProvided
	}

	sourceQuote, err := q.quoteRepository.GetQuote(ctx, quoteID)
	if err != nil {
		return models.QuoteWithItems{}, fmt.Errorf("quote lookup ended with error: %w", err)
	}

	duplicate := models.QuoteWithItems{
		Quote: models.Quote{
			ManagerID:   sourceQuote.ManagerID,
			ClientName:  sourceQuote.ClientName,
			ClientEmail: sourceQuote.ClientEmail,
			Status:      models.QuoteStatusDraft,
			TaxRate:     sourceQuote.TaxRate,
			ValidUntil:  sourceQuote.ValidUntil,
		},
		Items: make([]models.QuoteServiceItem, 0, len(sourceQuote.Items)),
	}
	for _, item := range sourceQuote.Items {
		duplicate.Items = append(duplicate.Items, models.QuoteServiceItem{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Images:      item.Images,
		})
	}
	recomputeQuoteTotals(&duplicate)

	for attempt := 0; attempt < numberAttemptBudget; attempt++ {
		duplicate.QuoteNumber = documentNumber("Q", time.Now())

		createdQuote, err := q.quoteRepository.CreateQuote(ctx, duplicate)
		if err == nil {
			log.Info().Str("source_quote_id", quoteID).Str("quote_id", createdQuote.QuoteID).Msg("quote duplicated")
			return createdQuote, nil
		}
		if !errors.Is(err, store.ErrQuoteNumberAlreadyExists) {
			log.Err(err).Str("source_quote_id", quoteID).Msg("quote duplication ended with error")
			return models.QuoteWithItems{}, fmt.Errorf("quote duplication ended with error: %w", err)
		}
	}

	return models.QuoteWithItems{}, ErrNumberGenerationFailed
}

// ConvertToInvoice turns an accepted quote into a new draft invoice. Each
// service item becomes a line item with quantity one; the tax rate carries
// over and totals are recomputed.
func (q *quoteService) ConvertToInvoice(ctx context.Context, quoteID string) (models.InvoiceWithItems, error) {
	log := logger.FromContext(ctx)

	if quoteID == "" {
		return models.InvoiceWithItems{}, ErrInvalidDataProvided
	}

	sourceQuote, err := q.quoteRepository.GetQuote(ctx, quoteID)
	if err != nil {
		return models.InvoiceWithItems{}, fmt.Errorf("quote lookup ended with error: %w", err)
	}
	if sourceQuote.Status != models.QuoteStatusAccepted {
		log.Error().Str("quote_id", quoteID).Str("status", string(sourceQuote.Status)).Msg("only accepted quotes can be converted")
		return models.InvoiceWithItems{}, ErrQuoteNotAccepted
	}

	invoice := models.InvoiceWithItems{
		Invoice: models.Invoice{
			ManagerID:   sourceQuote.ManagerID,
			ClientName:  sourceQuote.ClientName,
			ClientEmail: sourceQuote.ClientEmail,
			Status:      models.InvoiceStatusDraft,
			TaxRate:     sourceQuote.TaxRate,
		},
		Items: make([]models.InvoiceLineItem, 0, len(sourceQuote.Items)),
	}
	for _, item := range sourceQuote.Items {
		invoice.Items = append(invoice.Items, models.InvoiceLineItem{
			Description: item.Name,
			Quantity:    1,
			UnitPrice:   item.Price,
		})
	}
	recomputeInvoiceTotals(&invoice)

	for attempt := 0; attempt < numberAttemptBudget; attempt++ {
		invoice.InvoiceNumber = documentNumber("I", time.Now())

		createdInvoice, err := q.invoiceRepository.CreateInvoice(ctx, invoice)
		if err == nil {
			log.Info().
				Str("quote_id", quoteID).
				Str("invoice_id", createdInvoice.InvoiceID).
				Msg("quote converted to invoice")
			return createdInvoice, nil
		}
		if !errors.Is(err, store.ErrInvoiceNumberAlreadyExists) {
			log.Err(err).Str("quote_id", quoteID).Msg("quote conversion ended with error")
			return models.InvoiceWithItems{}, fmt.Errorf("quote conversion ended with error: %w", err)
		}
	}

	return models.InvoiceWithItems{}, ErrNumberGenerationFailed
}

// ViewQuoteByNumber is the public quote page read. Draft quotes are not
// publicly addressable; sent quotes are marked viewed; sent or viewed
// quotes past their validity window are moved to expired before being
// returned.
func (q *quoteService) ViewQuoteByNumber(ctx context.Context, quoteNumber string) (models.QuoteWithItems, error) {
	log := logger.FromContext(ctx)

	if quoteNumber == "" {
		return models.QuoteWithItems{}, ErrInvalidDataProvided
	}

	quote, err := q.quoteRepository.GetQuoteByNumber(ctx, quoteNumber)
	if err != nil {
		return models.QuoteWithItems{}, fmt.Errorf("quote lookup ended with error: %w", err)
	}
	if quote.Status == models.QuoteStatusDraft {
		log.Debug().Str("quote_number", quoteNumber).Msg("draft quote requested publicly")
		return models.QuoteWithItems{}, store.ErrQuoteNotFound
	}

	if expired := q.applyReadTimeExpiry(ctx, &quote); expired {
		return quote, nil
	}

	if quote.Status == models.QuoteStatusSent {
		if err := q.quoteRepository.UpdateQuoteStatus(ctx, quote.QuoteID, models.QuoteStatusViewed); err != nil {
			log.Err(err).Str("quote_id", quote.QuoteID).Msg("viewed transition failed")
		} else {
			quote.Status = models.QuoteStatusViewed
		}
	}

	return quote, nil
}

// RespondToQuote records the client's accept or decline decision from the
// public quote page.
//
// Returns ErrQuoteExpired when the validity window has passed and
// ErrQuoteNotRespondable when the quote is not in sent or viewed state.
func (q *quoteService) RespondToQuote(ctx context.Context, quoteNumber string, accept bool) (models.QuoteWithItems, error) {
	log := logger.FromContext(ctx)

	if quoteNumber == "" {
		return models.QuoteWithItems{}, ErrInvalidDataProvided
	}

	quote, err := q.quoteRepository.GetQuoteByNumber(ctx, quoteNumber)
	if err != nil {
		return models.QuoteWithItems{}, fmt.Errorf("quote lookup ended with error: %w", err)
	}

	if expired := q.applyReadTimeExpiry(ctx, &quote); expired {
		return models.QuoteWithItems{}, ErrQuoteExpired
	}
	if quote.Status != models.QuoteStatusSent && quote.Status != models.QuoteStatusViewed {
		log.Error().Str("quote_number", quoteNumber).Str("status", string(quote.Status)).Msg("quote cannot be responded to")
		return models.QuoteWithItems{}, ErrQuoteNotRespondable
	}

	decision := models.QuoteStatusDeclined
	if accept {
		decision = models.QuoteStatusAccepted
	}

	if err := q.quoteRepository.UpdateQuoteStatus(ctx, quote.QuoteID, decision); err != nil {
		log.Err(err).Str("quote_id", quote.QuoteID).Msg("quote response ended with error")
		return models.QuoteWithItems{}, fmt.Errorf("quote response ended with error: %w", err)
	}
	quote.Status = decision

	log.Info().Str("quote_number", quoteNumber).Str("status", string(decision)).Msg("quote response recorded")

	return quote, nil
}

// applyReadTimeExpiry moves a sent or viewed quote past its validity window
// to expired, both in storage and on the in-memory copy. Reports whether
// the quote is now expired.
func (q *quoteService) applyReadTimeExpiry(ctx context.Context, quote *models.QuoteWithItems) bool {
	if quote.Status == models.QuoteStatusExpired {
		return true
	}
	if quote.Status != models.QuoteStatusSent && quote.Status != models.QuoteStatusViewed {
		return false
	}
	if quote.ValidUntil == nil || !quote.ValidUntil.Before(time.Now()) {
		return false
	}

	log := logger.FromContext(ctx)
	if err := q.quoteRepository.UpdateQuoteStatus(ctx, quote.QuoteID, models.QuoteStatusExpired); err != nil {
		log.Err(err).Str("quote_id", quote.QuoteID).Msg("expired transition failed")
	}
	quote.Status = models.QuoteStatusExpired

	return true
}

// recomputeQuoteTotals overwrites the quote's money fields from its items.
// The subtotal is the sum of item prices; tax is applied as a percentage.
func recomputeQuoteTotals(quote *models.QuoteWithItems) {
	var subtotal float64
	for _, item := range quote.Items {
		subtotal += item.Price
	}

	quote.Subtotal = subtotal
	quote.TaxAmount = subtotal * quote.TaxRate / 100
	quote.Total = quote.Subtotal + quote.TaxAmount
}
