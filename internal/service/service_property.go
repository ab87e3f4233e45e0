package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mvoronin/estate-keeper/internal/cache"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/internal/validators"
	"github.com/mvoronin/estate-keeper/models"
)

// propertyService is the concrete implementation of PropertyService.
//
// Property-level changes affect every portfolio the property is assigned
// to, so mutations invalidate all of those cached pages. As with the
// assignment service, invalidation is best effort: a failure is logged and
// the entry ages out at its TTL.
type propertyService struct {
	propertyRepository   store.PropertyRepository
	assignmentRepository store.AssignmentRepository

	// fetcher retrieves listing pages from the external scraper. May be nil
	// when no scraper is configured; CreateFromListing then fails fast.
	fetcher ListingFetcher

	portfolioCache cache.PortfolioCache

	validator validators.Validator

	logger *logger.Logger
}

func NewPropertyService(
	propertyRepository store.PropertyRepository,
	assignmentRepository store.AssignmentRepository,
	portfolioCache cache.PortfolioCache,
	fetcher ListingFetcher,
	logger *logger.Logger,
) PropertyService {
	return &propertyService{
		propertyRepository:   propertyRepository,
		assignmentRepository: assignmentRepository,
		portfolioCache:       portfolioCache,
		fetcher:              fetcher,
		validator:            validators.NewEstateValidator(),
		logger:               logger,
	}
}

// CreateProperty validates and persists a manually entered property.
// A zero Display value is replaced with the defaults so every field starts
// visible with its standard label.
func (p *propertyService) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, property); err != nil {
		log.Err(err).Str("address", property.Address).Msg("invalid property data provided")
		return models.Property{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if property.Display == (models.PropertyDisplay{}) {
		property.Display = models.DefaultPropertyDisplay()
	}

	createdProperty, err := p.propertyRepository.CreateProperty(ctx, property)
	if err != nil {
		log.Err(err).Str("address", property.Address).Msg("property creation ended with error")
		return models.Property{}, fmt.Errorf("property creation ended with error: %w", err)
	}

	return createdProperty, nil
}

// CreateFromListing fetches the listing page through the scraper adapter and
// persists the normalized record. Scraped prices are stored with their show
// flags off so nothing leaks to clients until the admin reviews the record.
func (p *propertyService) CreateFromListing(ctx context.Context, listingURL string) (models.Property, error) {
	log := logger.FromContext(ctx)

	if listingURL == "" {
		log.Error().Msg("empty listing url provided")
		return models.Property{}, ErrInvalidDataProvided
	}
	if p.fetcher == nil {
		log.Error().Msg("no listing scraper configured")
		return models.Property{}, ErrScraperNotConfigured
	}

	property, err := p.fetcher.FetchListing(ctx, listingURL)
	if err != nil {
		log.Err(err).Str("listing_url", listingURL).Msg("listing fetch ended with error")
		return models.Property{}, fmt.Errorf("listing fetch ended with error: %w", err)
	}

	property.ListingURL = listingURL
	property.ShowMonthlyRent = false
	property.ShowNightlyRate = false
	property.ShowPurchasePrice = false
	property.Display = models.DefaultPropertyDisplay()
	now := time.Now()
	property.ScrapedAt = &now

	createdProperty, err := p.propertyRepository.CreateProperty(ctx, property)
	if err != nil {
		log.Err(err).Str("listing_url", listingURL).Msg("scraped property creation ended with error")
		return models.Property{}, fmt.Errorf("scraped property creation ended with error: %w", err)
	}

	log.Info().
		Str("property_id", createdProperty.PropertyID).
		Str("listing_url", listingURL).
		Msg("property created from listing")

	return createdProperty, nil
}

func (p *propertyService) GetProperty(ctx context.Context, propertyID string) (models.Property, error) {
	if propertyID == "" {
		return models.Property{}, ErrInvalidDataProvided
	}

	return p.propertyRepository.GetProperty(ctx, propertyID)
}

func (p *propertyService) ListProperties(ctx context.Context) ([]models.Property, error) {
	return p.propertyRepository.ListProperties(ctx)
}

// UpdateProperty validates and persists changes to a property's core and
// pricing fields. Display customization is updated separately through
// UpdateDisplay.
func (p *propertyService) UpdateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	log := logger.FromContext(ctx)

	if property.PropertyID == "" {
		log.Error().Msg("empty property id provided")
		return models.Property{}, ErrInvalidDataProvided
	}
	if err := p.validator.Validate(ctx, property); err != nil {
		log.Err(err).Str("property_id", property.PropertyID).Msg("invalid property data provided")
		return models.Property{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedProperty, err := p.propertyRepository.UpdateProperty(ctx, property)
	if err != nil {
		log.Err(err).Str("property_id", property.PropertyID).Msg("property update ended with error")
		return models.Property{}, fmt.Errorf("property update ended with error: %w", err)
	}

	p.invalidatePortfolios(ctx, property.PropertyID)

	return updatedProperty, nil
}

// UpdateDisplay applies a partial patch of display-customization fields.
// Nil pointers leave the stored value untouched.
func (p *propertyService) UpdateDisplay(ctx context.Context, propertyID string, update models.PropertyDisplayUpdate) error {
	log := logger.FromContext(ctx)

	if propertyID == "" {
		log.Error().Msg("empty property id provided")
		return ErrInvalidDataProvided
	}

	if err := p.propertyRepository.UpdatePropertyDisplay(ctx, propertyID, update); err != nil {
		log.Err(err).Str("property_id", propertyID).Msg("property display update ended with error")
		return fmt.Errorf("property display update ended with error: %w", err)
	}

	p.invalidatePortfolios(ctx, propertyID)

	return nil
}

// DeleteProperty removes the property and, through the cascade, its
// assignments. Affected slugs are collected before the delete because the
// reverse lookup joins through the assignment rows.
func (p *propertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	if propertyID == "" {
		return ErrInvalidDataProvided
	}

	slugs := p.affectedSlugs(ctx, propertyID)

	if err := p.propertyRepository.DeleteProperty(ctx, propertyID); err != nil {
		return err
	}

	p.invalidateSlugs(ctx, slugs)

	return nil
}

// invalidatePortfolios drops the cached portfolio page of every client the
// property is assigned to. Lookup and delete failures are logged and
// swallowed.
func (p *propertyService) invalidatePortfolios(ctx context.Context, propertyID string) {
	p.invalidateSlugs(ctx, p.affectedSlugs(ctx, propertyID))
}

func (p *propertyService) affectedSlugs(ctx context.Context, propertyID string) []string {
	log := logger.FromContext(ctx)

	slugs, err := p.assignmentRepository.ListClientSlugsForProperty(ctx, propertyID)
	if err != nil {
		log.Err(err).Str("property_id", propertyID).Msg("slug lookup for cache invalidation failed")
		return nil
	}

	return slugs
}

func (p *propertyService) invalidateSlugs(ctx context.Context, slugs []string) {
	log := logger.FromContext(ctx)

	for _, slug := range slugs {
		if err := p.portfolioCache.Invalidate(ctx, slug); err != nil {
			log.Err(err).Str("slug", slug).Msg("portfolio cache invalidation failed")
		}
	}
}
