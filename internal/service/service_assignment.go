// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/mvoronin/estate-keeper/internal/cache"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/models"
)

// assignmentService is the concrete implementation of AssignmentService.
//
// Every mutation invalidates the client's cached portfolio page so the
// public view never serves a stale property list. Invalidation is best
// effort: a cache failure is logged but never fails the mutation, the entry
// simply ages out at its TTL.
type assignmentService struct {
	assignmentRepository store.AssignmentRepository
	clientRepository     store.ClientRepository

	portfolioCache cache.PortfolioCache

	logger *logger.Logger
}

func NewAssignmentService(
	assignmentRepository store.AssignmentRepository,
	clientRepository store.ClientRepository,
	portfolioCache cache.PortfolioCache,
	logger *logger.Logger,
) AssignmentService {
	return &assignmentService{
		assignmentRepository: assignmentRepository,
		clientRepository:     clientRepository,
		portfolioCache:       portfolioCache,
		logger:               logger,
	}
}

// Assign appends propertyID to the end of the client's portfolio. A nil
// pricing triple defaults to fully visible; a caller-supplied triple is
// stored as given. Assigning an already assigned property fails with
// store.ErrAlreadyAssigned.
func (a *assignmentService) Assign(ctx context.Context, clientID, propertyID string, pricing *models.PricingVisibility) (models.Assignment, error) {
	log := logger.FromContext(ctx)

	if clientID == "" || propertyID == "" {
		log.Error().Msg("empty client or property id provided")
		return models.Assignment{}, ErrInvalidDataProvided
	}

	assignment, err := a.assignmentRepository.Assign(ctx, clientID, propertyID, resolvePricingChoice(pricing))
	if err != nil {
		log.Err(err).Str("client_id", clientID).Str("property_id", propertyID).Msg("assignment ended with error")
		return models.Assignment{}, fmt.Errorf("assignment ended with error: %w", err)
	}

	a.invalidatePortfolio(ctx, clientID)

	return assignment, nil
}

func (a *assignmentService) Unassign(ctx context.Context, clientID, propertyID string) error {
	log := logger.FromContext(ctx)

	if clientID == "" || propertyID == "" {
		log.Error().Msg("empty client or property id provided")
		return ErrInvalidDataProvided
	}

	if err := a.assignmentRepository.Unassign(ctx, clientID, propertyID); err != nil {
		log.Err(err).Str("client_id", clientID).Str("property_id", propertyID).Msg("unassignment ended with error")
		return fmt.Errorf("unassignment ended with error: %w", err)
	}

	a.invalidatePortfolio(ctx, clientID)

	return nil
}

// UpdateVisibility overwrites the assignment's full visibility triple.
// Flags omitted by the caller arrive as false and are stored as false.
func (a *assignmentService) UpdateVisibility(ctx context.Context, clientID, propertyID string, pricing models.PricingVisibility) error {
	log := logger.FromContext(ctx)

	if clientID == "" || propertyID == "" {
		log.Error().Msg("empty client or property id provided")
		return ErrInvalidDataProvided
	}

	if err := a.assignmentRepository.UpdateVisibility(ctx, clientID, propertyID, pricing); err != nil {
		log.Err(err).Str("client_id", clientID).Str("property_id", propertyID).Msg("visibility update ended with error")
		return fmt.Errorf("visibility update ended with error: %w", err)
	}

	a.invalidatePortfolio(ctx, clientID)

	return nil
}

func (a *assignmentService) ListByClient(ctx context.Context, clientID string) ([]models.AssignedProperty, error) {
	if clientID == "" {
		return nil, ErrInvalidDataProvided
	}

	return a.assignmentRepository.ListAssigned(ctx, clientID)
}

// BulkAssign appends every not-yet-assigned property in propertyIDs to the
// end of the client's portfolio, preserving the order of the input slice.
// One shared pricing triple (nil for fully visible) is applied to every new
// row. Already assigned members are skipped silently; Count reports only
// the rows actually inserted.
func (a *assignmentService) BulkAssign(ctx context.Context, clientID string, propertyIDs []string, pricing *models.PricingVisibility) (models.BulkResult, error) {
	log := logger.FromContext(ctx)

	if clientID == "" {
		log.Error().Msg("empty client id provided")
		return models.BulkResult{}, ErrInvalidDataProvided
	}

	result, err := a.assignmentRepository.BulkAssign(ctx, clientID, propertyIDs, resolvePricingChoice(pricing))
	if err != nil {
		log.Err(err).Str("client_id", clientID).Int("requested", len(propertyIDs)).Msg("bulk assignment ended with error")
		return models.BulkResult{}, fmt.Errorf("bulk assignment ended with error: %w", err)
	}

	if result.Count > 0 {
		a.invalidatePortfolio(ctx, clientID)
	}

	return result, nil
}

// BulkUnassign removes every listed property from the client's portfolio.
// Members that were never assigned are skipped; Count reports only the rows
// actually deleted.
func (a *assignmentService) BulkUnassign(ctx context.Context, clientID string, propertyIDs []string) (models.BulkResult, error) {
	log := logger.FromContext(ctx)

	if clientID == "" {
		log.Error().Msg("empty client id provided")
		return models.BulkResult{}, ErrInvalidDataProvided
	}

	result, err := a.assignmentRepository.BulkUnassign(ctx, clientID, propertyIDs)
	if err != nil {
		log.Err(err).Str("client_id", clientID).Int("requested", len(propertyIDs)).Msg("bulk unassignment ended with error")
		return models.BulkResult{}, fmt.Errorf("bulk unassignment ended with error: %w", err)
	}

	if result.Count > 0 {
		a.invalidatePortfolio(ctx, clientID)
	}

	return result, nil
}

// SetPositions persists a full reordering of the client's portfolio: each
// property's new position is its index in orderedPropertyIDs.
func (a *assignmentService) SetPositions(ctx context.Context, clientID string, orderedPropertyIDs []string) error {
	log := logger.FromContext(ctx)

	if clientID == "" || len(orderedPropertyIDs) == 0 {
		log.Error().Str("client_id", clientID).Msg("invalid reorder data provided")
		return ErrInvalidDataProvided
	}

	seen := make(map[string]struct{}, len(orderedPropertyIDs))
	for _, propertyID := range orderedPropertyIDs {
		if propertyID == "" {
			return ErrInvalidDataProvided
		}
		if _, dup := seen[propertyID]; dup {
			log.Error().Str("client_id", clientID).Str("property_id", propertyID).Msg("duplicate property id in reorder")
			return ErrInvalidDataProvided
		}
		seen[propertyID] = struct{}{}
	}

	if err := a.assignmentRepository.PersistOrder(ctx, clientID, orderedPropertyIDs); err != nil {
		log.Err(err).Str("client_id", clientID).Msg("reorder persist ended with error")
		return fmt.Errorf("reorder persist ended with error: %w", err)
	}

	a.invalidatePortfolio(ctx, clientID)

	return nil
}

// resolvePricingChoice collapses the optional assign-time triple: absent
// means every price starts visible.
func resolvePricingChoice(pricing *models.PricingVisibility) models.PricingVisibility {
	if pricing == nil {
		return models.AllPricingVisible()
	}

	return *pricing
}

// invalidatePortfolio drops the client's cached portfolio page. The cache
// is keyed by slug, so the client record is looked up first; any failure is
// logged and swallowed.
func (a *assignmentService) invalidatePortfolio(ctx context.Context, clientID string) {
	log := logger.FromContext(ctx)

	client, err := a.clientRepository.GetClient(ctx, clientID)
	if err != nil {
		log.Err(err).Str("client_id", clientID).Msg("client lookup for cache invalidation failed")
		return
	}

	if err := a.portfolioCache.Invalidate(ctx, client.Slug); err != nil {
		log.Err(err).Str("slug", client.Slug).Msg("portfolio cache invalidation failed")
	}
}
