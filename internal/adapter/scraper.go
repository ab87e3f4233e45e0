// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound collaborator clients. The only
// collaborator today is the listing-scrape API, which returns property
// attributes in a loosely typed, inconsistently shaped payload; this
// package normalizes that payload into a models.Property so nothing
// downstream ever sees the raw wire format.
package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mvoronin/estate-keeper/internal/config"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/utils"
	"github.com/mvoronin/estate-keeper/models"
)

// ListingScraper calls the external scrape API and normalizes its payload.
// Implements the service layer's ListingFetcher.
type ListingScraper struct {
	client *resty.Client
	apiKey string
	logger *logger.Logger
}

// NewListingScraper builds a scraper client from cfg. A non-positive
// timeout defaults to 15 seconds.
func NewListingScraper(cfg config.Scraper, logger *logger.Logger) *ListingScraper {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	// every outbound request is signed with the API key
	utils.InitHasherPool(cfg.APIKey)

	return &ListingScraper{
		client: client,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

type scrapeRequest struct {
	URL string `json:"url"`
}

// FetchListing asks the scrape API for the listing at listingURL and
// returns the normalized property. The request body is HMAC-signed with
// the API key so the scraper can verify its origin.
func (s *ListingScraper) FetchListing(ctx context.Context, listingURL string) (models.Property, error) {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(scrapeRequest{URL: listingURL})
	if err != nil {
		return models.Property{}, fmt.Errorf("scrape request encoding: %w", err)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Api-Key", s.apiKey).
		SetHeader("X-Signature", hex.EncodeToString(utils.Hash(body))).
		SetBody(body).
		Post("/scrape")
	if err != nil {
		return models.Property{}, fmt.Errorf("scrape request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Property{}, err
	}

	var payload map[string]any
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.Property{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	property := normalizeListing(payload)
	log.Debug().
		Str("func", "FetchListing").
		Str("listing_url", listingURL).
		Str("address", property.Address).
		Int("images", len(property.Images)).
		Msg("listing scraped")

	return property, nil
}

// normalizeListing maps the scraper's loosely typed payload onto a
// property record. Sources disagree on field names and value types, so
// every field is sniffed across its known aliases, first hit wins.
func normalizeListing(payload map[string]any) models.Property {
	return models.Property{
		Address:             stringField(payload, "address", "streetAddress", "full_address"),
		Bedrooms:            stringField(payload, "bedrooms", "beds"),
		Bathrooms:           stringField(payload, "bathrooms", "baths"),
		Area:                stringField(payload, "livingArea", "area", "living_area", "sqft"),
		Images:              imageList(payload, "images", "photos", "image"),
		Description:         stringField(payload, "description", "body"),
		CustomMonthlyRent:   floatField(payload, "monthly_rent", "rent", "rentZestimate"),
		CustomNightlyRate:   floatField(payload, "nightly_rate", "nightlyRate"),
		CustomPurchasePrice: floatField(payload, "price", "purchase_price", "zestimate", "listPrice"),
	}
}

// stringField returns the first present alias rendered as text. Numeric
// values are formatted, since sources report counts as numbers or as free
// text like "4+".
func stringField(payload map[string]any, keys ...string) string {
	for _, key := range keys {
		switch value := payload[key].(type) {
		case string:
			if value != "" {
				return value
			}
		case float64:
			return strconv.FormatFloat(value, 'f', -1, 64)
		}
	}
	return ""
}

// floatField returns the first present alias as an amount, accepting both
// numbers and numeric strings. Non-positive and unparsable values are
// skipped.
func floatField(payload map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		switch value := payload[key].(type) {
		case float64:
			if value > 0 {
				return &value
			}
		case string:
			parsed, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
			if err == nil && parsed > 0 {
				return &parsed
			}
		}
	}
	return nil
}

// imageList returns the first present alias as a url list. Sources send
// either a list or a single url string.
func imageList(payload map[string]any, keys ...string) []string {
	for _, key := range keys {
		switch value := payload[key].(type) {
		case []any:
			images := make([]string, 0, len(value))
			for _, entry := range value {
				if url, ok := entry.(string); ok && url != "" {
					images = append(images, url)
				}
			}
			if len(images) > 0 {
				return images
			}
		case string:
			if value != "" {
				return []string{value}
			}
		}
	}
	return nil
}
