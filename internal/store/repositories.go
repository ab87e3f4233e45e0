package store

import "github.com/mvoronin/estate-keeper/internal/logger"

// Repositories bundles every repository implementation behind one injection
// point for the service layer.
type Repositories struct {
	ManagerRepository    ManagerRepository
	PropertyRepository   PropertyRepository
	ClientRepository     ClientRepository
	AssignmentRepository AssignmentRepository
	ShareRepository      ShareRepository
	QuoteRepository      QuoteRepository
	InvoiceRepository    InvoiceRepository
}

// NewRepositories constructs every repository against the shared database
// handle.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		ManagerRepository:    NewManagerRepository(db, log),
		PropertyRepository:   NewPropertyRepository(db, log),
		ClientRepository:     NewClientRepository(db, log),
		AssignmentRepository: NewAssignmentRepository(db, log),
		ShareRepository:      NewShareRepository(db, log),
		QuoteRepository:      NewQuoteRepository(db, log),
		InvoiceRepository:    NewInvoiceRepository(db, log),
	}
}
