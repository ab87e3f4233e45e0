package service

import (
	"context"

	"github.com/mvoronin/estate-keeper/models"
)

// AuthService handles manager registration, credential verification and
// JWT lifecycle.
type AuthService interface {
	RegisterManager(ctx context.Context, manager models.Manager, password string) (models.Manager, error)
	Login(ctx context.Context, email, password string) (models.Manager, error)
	CreateToken(ctx context.Context, manager models.Manager) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ListingFetcher retrieves and normalizes an external listing page into a
// property record. Implemented by the scraper adapter.
type ListingFetcher interface {
	FetchListing(ctx context.Context, listingURL string) (models.Property, error)
}

// PropertyService manages the master property portfolio.
type PropertyService interface {
	CreateProperty(ctx context.Context, property models.Property) (models.Property, error)
	CreateFromListing(ctx context.Context, listingURL string) (models.Property, error)
	GetProperty(ctx context.Context, propertyID string) (models.Property, error)
	ListProperties(ctx context.Context) ([]models.Property, error)
	UpdateProperty(ctx context.Context, property models.Property) (models.Property, error)
	UpdateDisplay(ctx context.Context, propertyID string, update models.PropertyDisplayUpdate) error
	DeleteProperty(ctx context.Context, propertyID string) error
}

// ClientService manages client records, their public slugs and
// cross-manager shares.
type ClientService interface {
	CreateClient(ctx context.Context, managerID string, client models.Client) (models.Client, error)
	GetClient(ctx context.Context, clientID string) (models.Client, error)
	ListClients(ctx context.Context, managerID string) ([]models.ClientWithDetails, error)
	UpdateClient(ctx context.Context, client models.Client) (models.Client, error)
	UpdateStatus(ctx context.Context, clientID string, status models.ClientStatus) (models.Client, error)
	DeleteClient(ctx context.Context, clientID string) error

	ShareClient(ctx context.Context, clientID, sharedWithManagerID, sharedByManagerID string) (models.ClientShare, error)
	UnshareClient(ctx context.Context, clientID, sharedWithManagerID string) error
	ListShares(ctx context.Context, clientID string) ([]models.ClientShare, error)
}

// AssignmentService manages the ordered client portfolio and its pricing
// visibility, invalidating cached portfolio pages on every mutation.
//
// A nil pricing triple on Assign and BulkAssign means "no explicit choice":
// the assignment starts fully visible.
type AssignmentService interface {
	Assign(ctx context.Context, clientID, propertyID string, pricing *models.PricingVisibility) (models.Assignment, error)
	Unassign(ctx context.Context, clientID, propertyID string) error
	UpdateVisibility(ctx context.Context, clientID, propertyID string, pricing models.PricingVisibility) error
	ListByClient(ctx context.Context, clientID string) ([]models.AssignedProperty, error)
	BulkAssign(ctx context.Context, clientID string, propertyIDs []string, pricing *models.PricingVisibility) (models.BulkResult, error)
	BulkUnassign(ctx context.Context, clientID string, propertyIDs []string) (models.BulkResult, error)
	SetPositions(ctx context.Context, clientID string, orderedPropertyIDs []string) error
}

// PortfolioService renders the public, slug-addressed portfolio view.
type PortfolioService interface {
	GetPortfolio(ctx context.Context, slug string) (models.Portfolio, error)
}

// QuoteService manages quote documents and their status machine.
type QuoteService interface {
	CreateQuote(ctx context.Context, managerID string, quote models.QuoteWithItems) (models.QuoteWithItems, error)
	GetQuote(ctx context.Context, quoteID string) (models.QuoteWithItems, error)
	ListQuotes(ctx context.Context, managerID string) ([]models.Quote, error)
	UpdateQuote(ctx context.Context, quote models.QuoteWithItems) (models.QuoteWithItems, error)
	DeleteQuote(ctx context.Context, quoteID string) error

	SendQuote(ctx context.Context, quoteID string) error
	DuplicateQuote(ctx context.Context, quoteID string) (models.QuoteWithItems, error)
	ConvertToInvoice(ctx context.Context, quoteID string) (models.InvoiceWithItems, error)

	// ViewQuoteByNumber is the public, unauthenticated read: it applies
	// read-time expiry and marks a sent quote as viewed.
	ViewQuoteByNumber(ctx context.Context, quoteNumber string) (models.QuoteWithItems, error)
	RespondToQuote(ctx context.Context, quoteNumber string, accept bool) (models.QuoteWithItems, error)
}

// InvoiceService manages invoice documents, their status machine and the
// admin ledger export.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, managerID string, invoice models.InvoiceWithItems) (models.InvoiceWithItems, error)
	GetInvoice(ctx context.Context, invoiceID string) (models.InvoiceWithItems, error)
	ListInvoices(ctx context.Context, managerID string) ([]models.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice models.InvoiceWithItems) (models.InvoiceWithItems, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error

	SendInvoice(ctx context.Context, invoiceID string) error
	MarkInvoicePaid(ctx context.Context, invoiceID string) error

	// GetInvoiceByNumber is the public read: it applies read-time overdue.
	GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (models.InvoiceWithItems, error)

	// ExportLedger renders the manager's invoices as an xlsx workbook.
	ExportLedger(ctx context.Context, managerID string) ([]byte, error)
}
