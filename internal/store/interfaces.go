package store

import (
	"context"

	"github.com/mvoronin/estate-keeper/models"
)

// ManagerRepository persists property manager accounts.
type ManagerRepository interface {
	CreateManager(ctx context.Context, manager models.Manager) (models.Manager, error)
	FindManagerByEmail(ctx context.Context, email string) (models.Manager, error)
	GetManager(ctx context.Context, managerID string) (models.Manager, error)
}

// PropertyRepository persists listing records and their display settings.
type PropertyRepository interface {
	CreateProperty(ctx context.Context, property models.Property) (models.Property, error)
	GetProperty(ctx context.Context, propertyID string) (models.Property, error)
	ListProperties(ctx context.Context) ([]models.Property, error)
	UpdateProperty(ctx context.Context, property models.Property) (models.Property, error)
	UpdatePropertyDisplay(ctx context.Context, propertyID string, update models.PropertyDisplayUpdate) error
	DeleteProperty(ctx context.Context, propertyID string) error
}

// ClientRepository persists client records.
type ClientRepository interface {
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	GetClient(ctx context.Context, clientID string) (models.Client, error)
	GetClientBySlug(ctx context.Context, slug string) (models.Client, error)
	ListClients(ctx context.Context, managerID string) ([]models.ClientWithDetails, error)
	UpdateClient(ctx context.Context, client models.Client) (models.Client, error)
	DeleteClient(ctx context.Context, clientID string) error
	TouchLastAccessed(ctx context.Context, clientID string) error
}

// AssignmentRepository manages the ordered client to property relation and
// its per-client pricing visibility overrides.
type AssignmentRepository interface {
	Assign(ctx context.Context, clientID, propertyID string, pricing models.PricingVisibility) (models.Assignment, error)
	Unassign(ctx context.Context, clientID, propertyID string) error
	UpdateVisibility(ctx context.Context, clientID, propertyID string, pricing models.PricingVisibility) error
	ListAssigned(ctx context.Context, clientID string) ([]models.AssignedProperty, error)
	ListClientSlugsForProperty(ctx context.Context, propertyID string) ([]string, error)
	BulkAssign(ctx context.Context, clientID string, propertyIDs []string, pricing models.PricingVisibility) (models.BulkResult, error)
	BulkUnassign(ctx context.Context, clientID string, propertyIDs []string) (models.BulkResult, error)
	PersistOrder(ctx context.Context, clientID string, orderedPropertyIDs []string) error
}

// ShareRepository grants and revokes cross-manager access to clients.
type ShareRepository interface {
	CreateShare(ctx context.Context, share models.ClientShare) (models.ClientShare, error)
	DeleteShare(ctx context.Context, clientID, sharedWithManagerID string) error
	ListSharesForClient(ctx context.Context, clientID string) ([]models.ClientShare, error)
	ListClientIDsSharedWith(ctx context.Context, managerID string) ([]string, error)
}

// QuoteRepository persists quotes and their ordered service items.
type QuoteRepository interface {
	CreateQuote(ctx context.Context, quote models.QuoteWithItems) (models.QuoteWithItems, error)
	GetQuote(ctx context.Context, quoteID string) (models.QuoteWithItems, error)
	GetQuoteByNumber(ctx context.Context, quoteNumber string) (models.QuoteWithItems, error)
	ListQuotes(ctx context.Context, managerID string) ([]models.Quote, error)
	UpdateQuote(ctx context.Context, quote models.QuoteWithItems) (models.QuoteWithItems, error)
	UpdateQuoteStatus(ctx context.Context, quoteID string, status models.QuoteStatus) error
	DeleteQuote(ctx context.Context, quoteID string) error
}

// InvoiceRepository persists invoices and their ordered line items.
type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice models.InvoiceWithItems) (models.InvoiceWithItems, error)
	GetInvoice(ctx context.Context, invoiceID string) (models.InvoiceWithItems, error)
	GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (models.InvoiceWithItems, error)
	ListInvoices(ctx context.Context, managerID string) ([]models.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice models.InvoiceWithItems) (models.InvoiceWithItems, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status models.InvoiceStatus) error
	DeleteInvoice(ctx context.Context, invoiceID string) error
}
