package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrScraperNotConfigured is returned by listing imports when no
	// scraper base URL was configured at startup.
	ErrScraperNotConfigured = errors.New("listing scraper is not configured")

	// ErrSlugGenerationFailed is returned when every slug candidate within
	// the retry budget collided with an existing one.
	ErrSlugGenerationFailed = errors.New("could not generate a unique slug")

	// ErrNumberGenerationFailed is returned when every document number
	// candidate within the retry budget collided with an existing one.
	ErrNumberGenerationFailed = errors.New("could not generate a unique document number")

	// ErrNotDraft guards quote and invoice edits: only draft documents may
	// be modified or deleted.
	ErrNotDraft = errors.New("document is not a draft")

	// ErrInvalidStatusTransition is returned for a lifecycle move the
	// status machine does not allow.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrQuoteNotRespondable is returned when accepting or declining a
	// quote that is not in sent or viewed state.
	ErrQuoteNotRespondable = errors.New("quote cannot be responded to in its current state")

	// ErrQuoteExpired is returned when responding to a quote whose
	// validity window has passed.
	ErrQuoteExpired = errors.New("quote has expired")

	// ErrQuoteNotAccepted guards quote-to-invoice conversion.
	ErrQuoteNotAccepted = errors.New("only accepted quotes can be converted")
)
