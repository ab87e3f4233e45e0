package service

import (
	"github.com/mvoronin/estate-keeper/internal/cache"
	"github.com/mvoronin/estate-keeper/internal/config"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/store"
)

type Services struct {
	AuthService       AuthService
	PropertyService   PropertyService
	ClientService     ClientService
	AssignmentService AssignmentService
	PortfolioService  PortfolioService
	QuoteService      QuoteService
	InvoiceService    InvoiceService
}

func NewServices(repos *store.Repositories, portfolioCache cache.PortfolioCache, fetcher ListingFetcher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.ManagerRepository, cfg.App, logger),
		PropertyService:   NewPropertyService(repos.PropertyRepository, repos.AssignmentRepository, portfolioCache, fetcher, logger),
		ClientService:     NewClientService(repos.ClientRepository, repos.ShareRepository, portfolioCache, logger),
		AssignmentService: NewAssignmentService(repos.AssignmentRepository, repos.ClientRepository, portfolioCache, logger),
		PortfolioService:  NewPortfolioService(repos.ClientRepository, repos.AssignmentRepository, portfolioCache, logger),
		QuoteService:      NewQuoteService(repos.QuoteRepository, repos.InvoiceRepository, logger),
		InvoiceService:    NewInvoiceService(repos.InvoiceRepository, logger),
	}
}
