package adapter

import "errors"

var (
	// ErrScraperUnauthorized means the scraper rejected our API key.
	ErrScraperUnauthorized = errors.New("scraper rejected credentials")

	// ErrListingNotFound means the scraper could not resolve the listing URL.
	ErrListingNotFound = errors.New("listing not found")

	// ErrScraperUnavailable covers scraper-side failures worth retrying later.
	ErrScraperUnavailable = errors.New("scraper unavailable")

	// ErrMalformedPayload means the scrape response could not be decoded.
	ErrMalformedPayload = errors.New("malformed scrape payload")
)
