package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvoronin/estate-keeper/internal/cache"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/models"
)

// portfolioService renders the public portfolio page for a client slug.
//
// Rendering happens entirely server-side: hidden fields and hidden prices
// are stripped before the payload leaves this service, so the public
// surface never carries data the admin chose not to show.
type portfolioService struct {
	clientRepository     store.ClientRepository
	assignmentRepository store.AssignmentRepository

	portfolioCache cache.PortfolioCache

	logger *logger.Logger
}

func NewPortfolioService(
	clientRepository store.ClientRepository,
	assignmentRepository store.AssignmentRepository,
	portfolioCache cache.PortfolioCache,
	logger *logger.Logger,
) PortfolioService {
	return &portfolioService{
		clientRepository:     clientRepository,
		assignmentRepository: assignmentRepository,
		portfolioCache:       portfolioCache,
		logger:               logger,
	}
}

// GetPortfolio returns the client's public portfolio, serving from cache
// when possible. On a miss the page is rendered from the database and
// written back to the cache; cache write failures are logged and swallowed.
//
// Every successful view bumps the client's last-accessed timestamp, also
// best effort.
func (p *portfolioService) GetPortfolio(ctx context.Context, slug string) (models.Portfolio, error) {
	log := logger.FromContext(ctx)

	if slug == "" {
		log.Error().Msg("empty slug provided")
		return models.Portfolio{}, ErrInvalidDataProvided
	}

	client, err := p.clientRepository.GetClientBySlug(ctx, slug)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("client lookup by slug ended with error")
		return models.Portfolio{}, fmt.Errorf("client lookup by slug ended with error: %w", err)
	}

	if err := p.clientRepository.TouchLastAccessed(ctx, client.ClientID); err != nil {
		log.Err(err).Str("client_id", client.ClientID).Msg("last-accessed bump failed")
	}

	cached, err := p.portfolioCache.Get(ctx, slug)
	if err == nil {
		log.Debug().Str("slug", slug).Msg("portfolio served from cache")
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Err(err).Str("slug", slug).Msg("portfolio cache read failed")
	}

	assigned, err := p.assignmentRepository.ListAssigned(ctx, client.ClientID)
	if err != nil {
		log.Err(err).Str("client_id", client.ClientID).Msg("assigned property listing ended with error")
		return models.Portfolio{}, fmt.Errorf("assigned property listing ended with error: %w", err)
	}

	portfolio := models.Portfolio{
		ClientName: client.Name,
		Properties: make([]models.PortfolioProperty, 0, len(assigned)),
	}
	for _, item := range assigned {
		portfolio.Properties = append(portfolio.Properties, renderPortfolioProperty(item))
	}

	if err := p.portfolioCache.Set(ctx, slug, portfolio); err != nil {
		log.Err(err).Str("slug", slug).Msg("portfolio cache write failed")
	}

	return portfolio, nil
}

// renderPortfolioProperty applies the property's display customization and
// the assignment's pricing overrides, producing the public view of one
// portfolio entry. Hidden fields come out as zero values and are omitted
// from the JSON payload.
func renderPortfolioProperty(item models.AssignedProperty) models.PortfolioProperty {
	property := item.Property
	display := property.Display

	entry := models.PortfolioProperty{
		PropertyID:  property.PropertyID,
		Description: property.Description,
		CustomNotes: display.CustomNotes,
		Labels:      make(map[string]string),
		Pricing:     ResolveEffectivePricing(property, item.Pricing),
	}

	if display.ShowAddress {
		entry.Address = property.Address
	}
	if display.ShowImages {
		entry.Images = property.Images
	}
	if display.ShowBedrooms && property.Bedrooms != "" {
		entry.Bedrooms = property.Bedrooms
		entry.Labels["bedrooms"] = labelOrDefault(display.LabelBedrooms, models.DefaultLabelBedrooms)
	}
	if display.ShowBathrooms && property.Bathrooms != "" {
		entry.Bathrooms = property.Bathrooms
		entry.Labels["bathrooms"] = labelOrDefault(display.LabelBathrooms, models.DefaultLabelBathrooms)
	}
	if display.ShowArea && property.Area != "" {
		entry.Area = property.Area
		entry.Labels["area"] = labelOrDefault(display.LabelArea, models.DefaultLabelArea)
	}

	if entry.Pricing.MonthlyRent != nil {
		entry.Labels["monthly_rent"] = labelOrDefault(display.LabelMonthlyRent, models.DefaultLabelMonthlyRent)
	}
	if entry.Pricing.NightlyRate != nil {
		entry.Labels["nightly_rate"] = labelOrDefault(display.LabelNightlyRate, models.DefaultLabelNightlyRate)
	}
	if entry.Pricing.PurchasePrice != nil {
		entry.Labels["purchase_price"] = labelOrDefault(display.LabelPurchasePrice, models.DefaultLabelPurchasePrice)
	}

	return entry
}

func labelOrDefault(label, fallback string) string {
	if label != "" {
		return label
	}

	return fallback
}
