package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mvoronin/estate-keeper/internal/cache"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/internal/validators"
	"github.com/mvoronin/estate-keeper/models"
)

// slugAttemptBudget bounds how many slug candidates are tried before the
// operation gives up with ErrSlugGenerationFailed.
const slugAttemptBudget = 10

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// clientService is the concrete implementation of ClientService.
//
// Client mutations that change what the public page shows (name, slug,
// deletion) invalidate the cached portfolio, best effort. A slug change
// invalidates both the old and the new key so the retired address stops
// serving immediately.
type clientService struct {
	clientRepository store.ClientRepository
	shareRepository  store.ShareRepository

	portfolioCache cache.PortfolioCache

	validator validators.Validator

	logger *logger.Logger
}

func NewClientService(
	clientRepository store.ClientRepository,
	shareRepository store.ShareRepository,
	portfolioCache cache.PortfolioCache,
	logger *logger.Logger,
) ClientService {
	return &clientService{
		clientRepository: clientRepository,
		shareRepository:  shareRepository,
		portfolioCache:   portfolioCache,
		validator:        validators.NewEstateValidator(),
		logger:           logger,
	}
}

// CreateClient validates and persists a new client owned by managerID.
//
// When no slug is supplied one is derived from the client name. Slug
// collisions are retried with a random suffix up to slugAttemptBudget times;
// an explicitly supplied slug is never retried and collides with
// store.ErrSlugAlreadyExists.
func (c *clientService) CreateClient(ctx context.Context, managerID string, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	if managerID == "" {
		log.Error().Msg("empty manager id provided")
		return models.Client{}, ErrInvalidDataProvided
	}
	client.ManagerID = managerID
	if client.Status == "" {
		client.Status = models.ClientStatusActive
	}
	if err := c.validator.Validate(ctx, client); err != nil {
		log.Err(err).Str("name", client.Name).Msg("invalid client data provided")
		return models.Client{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if client.Slug != "" {
		if err := c.validator.Validate(ctx, client, validators.FieldSlug); err != nil {
			log.Err(err).Str("slug", client.Slug).Msg("invalid slug provided")
			return models.Client{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

		createdClient, err := c.clientRepository.CreateClient(ctx, client)
		if err != nil {
			log.Err(err).Str("slug", client.Slug).Msg("client creation ended with error")
			return models.Client{}, fmt.Errorf("client creation ended with error: %w", err)
		}
		return createdClient, nil
	}

	base := slugify(client.Name)
	for attempt := 0; attempt < slugAttemptBudget; attempt++ {
		client.Slug = base
		if attempt > 0 {
			client.Slug = base + "-" + randomSuffix()
		}

		createdClient, err := c.clientRepository.CreateClient(ctx, client)
		if err == nil {
			return createdClient, nil
		}
		if !errors.Is(err, store.ErrSlugAlreadyExists) {
			log.Err(err).Str("slug", client.Slug).Msg("client creation ended with error")
			return models.Client{}, fmt.Errorf("client creation ended with error: %w", err)
		}

		log.Debug().Str("slug", client.Slug).Int("attempt", attempt+1).Msg("slug collision, retrying")
	}

	log.Error().Str("name", client.Name).Msg("slug attempt budget exhausted")
	return models.Client{}, ErrSlugGenerationFailed
}

func (c *clientService) GetClient(ctx context.Context, clientID string) (models.Client, error) {
	if clientID == "" {
		return models.Client{}, ErrInvalidDataProvided
	}

	return c.clientRepository.GetClient(ctx, clientID)
}

func (c *clientService) ListClients(ctx context.Context, managerID string) ([]models.ClientWithDetails, error) {
	if managerID == "" {
		return nil, ErrInvalidDataProvided
	}

	return c.clientRepository.ListClients(ctx, managerID)
}

func (c *clientService) UpdateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	if client.ClientID == "" {
		log.Error().Msg("empty client id provided")
		return models.Client{}, ErrInvalidDataProvided
	}
	if err := c.validator.Validate(ctx, client); err != nil {
		log.Err(err).Str("client_id", client.ClientID).Msg("invalid client data provided")
		return models.Client{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if client.Slug != "" {
		if err := c.validator.Validate(ctx, client, validators.FieldSlug); err != nil {
			log.Err(err).Str("slug", client.Slug).Msg("invalid slug provided")
			return models.Client{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	// Best effort: the pre-update slug is needed to evict the old cache key
	// when the update renames it.
	var previousSlug string
	if current, err := c.clientRepository.GetClient(ctx, client.ClientID); err == nil {
		previousSlug = current.Slug
	}

	updatedClient, err := c.clientRepository.UpdateClient(ctx, client)
	if err != nil {
		log.Err(err).Str("client_id", client.ClientID).Msg("client update ended with error")
		return models.Client{}, fmt.Errorf("client update ended with error: %w", err)
	}

	c.invalidatePortfolio(ctx, updatedClient.Slug)
	if previousSlug != "" && previousSlug != updatedClient.Slug {
		c.invalidatePortfolio(ctx, previousSlug)
	}

	return updatedClient, nil
}

// UpdateStatus moves the client to the given lifecycle status. Any known
// status is reachable from any other.
func (c *clientService) UpdateStatus(ctx context.Context, clientID string, status models.ClientStatus) (models.Client, error) {
	log := logger.FromContext(ctx)

	if clientID == "" || !status.Valid() {
		log.Error().Str("client_id", clientID).Str("status", string(status)).Msg("invalid status change provided")
		return models.Client{}, ErrInvalidDataProvided
	}

	client, err := c.clientRepository.GetClient(ctx, clientID)
	if err != nil {
		return models.Client{}, fmt.Errorf("client lookup ended with error: %w", err)
	}

	client.Status = status
	updatedClient, err := c.clientRepository.UpdateClient(ctx, client)
	if err != nil {
		log.Err(err).Str("client_id", clientID).Msg("client status update ended with error")
		return models.Client{}, fmt.Errorf("client status update ended with error: %w", err)
	}

	c.invalidatePortfolio(ctx, updatedClient.Slug)

	return updatedClient, nil
}

// DeleteClient removes the client and, through the cascade, its assignment
// rows and any cached portfolio page.
func (c *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if clientID == "" {
		return ErrInvalidDataProvided
	}

	var slug string
	if client, err := c.clientRepository.GetClient(ctx, clientID); err == nil {
		slug = client.Slug
	}

	if err := c.clientRepository.DeleteClient(ctx, clientID); err != nil {
		return err
	}

	c.invalidatePortfolio(ctx, slug)

	return nil
}

// invalidatePortfolio drops the cached portfolio page for the given slug.
// Failures are logged and swallowed; the entry ages out at its TTL.
func (c *clientService) invalidatePortfolio(ctx context.Context, slug string) {
	if slug == "" {
		return
	}

	if err := c.portfolioCache.Invalidate(ctx, slug); err != nil {
		logger.FromContext(ctx).Err(err).Str("slug", slug).Msg("portfolio cache invalidation failed")
	}
}

// ShareClient grants sharedWithManagerID access to the client. Sharing a
// client with its owner or sharing twice with the same manager fails.
func (c *clientService) ShareClient(ctx context.Context, clientID, sharedWithManagerID, sharedByManagerID string) (models.ClientShare, error) {
	log := logger.FromContext(ctx)

	if clientID == "" || sharedWithManagerID == "" || sharedByManagerID == "" {
		log.Error().Str("client_id", clientID).Msg("invalid share data provided")
		return models.ClientShare{}, ErrInvalidDataProvided
	}

	client, err := c.clientRepository.GetClient(ctx, clientID)
	if err != nil {
		return models.ClientShare{}, fmt.Errorf("client lookup ended with error: %w", err)
	}
	if client.ManagerID == sharedWithManagerID {
		log.Error().Str("client_id", clientID).Msg("cannot share a client with its owner")
		return models.ClientShare{}, ErrInvalidDataProvided
	}

	share, err := c.shareRepository.CreateShare(ctx, models.ClientShare{
		ClientID:            clientID,
		SharedWithManagerID: sharedWithManagerID,
		SharedByManagerID:   sharedByManagerID,
	})
	if err != nil {
		log.Err(err).Str("client_id", clientID).Msg("share creation ended with error")
		return models.ClientShare{}, fmt.Errorf("share creation ended with error: %w", err)
	}

	return share, nil
}

func (c *clientService) UnshareClient(ctx context.Context, clientID, sharedWithManagerID string) error {
	if clientID == "" || sharedWithManagerID == "" {
		return ErrInvalidDataProvided
	}

	return c.shareRepository.DeleteShare(ctx, clientID, sharedWithManagerID)
}

func (c *clientService) ListShares(ctx context.Context, clientID string) ([]models.ClientShare, error) {
	if clientID == "" {
		return nil, ErrInvalidDataProvided
	}

	return c.shareRepository.ListSharesForClient(ctx, clientID)
}

// slugify lowers the name and collapses every non-alphanumeric run into a
// single hyphen. An empty result falls back to "client".
func slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "client"
	}

	return slug
}

// randomSuffix returns four hex characters of entropy for slug collision
// retries.
func randomSuffix() string {
	buf := make([]byte, 2)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}
