package http

import (
	"errors"
	"net/http"

	"github.com/mvoronin/estate-keeper/internal/adapter"
	"github.com/mvoronin/estate-keeper/internal/service"
	"github.com/mvoronin/estate-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrScraperNotConfigured:   http.StatusServiceUnavailable,
	service.ErrSlugGenerationFailed:   http.StatusConflict,
	service.ErrNumberGenerationFailed: http.StatusConflict,

	service.ErrNotDraft:                http.StatusConflict,
	service.ErrInvalidStatusTransition: http.StatusConflict,
	service.ErrQuoteNotRespondable:     http.StatusConflict,
	service.ErrQuoteExpired:            http.StatusGone,
	service.ErrQuoteNotAccepted:        http.StatusConflict,

	adapter.ErrScraperUnauthorized: http.StatusBadGateway,
	adapter.ErrScraperUnavailable:  http.StatusBadGateway,
	adapter.ErrListingNotFound:     http.StatusUnprocessableEntity,
	adapter.ErrMalformedPayload:    http.StatusBadGateway,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoManagerWasFound:  http.StatusNotFound,

	store.ErrPropertyNotFound:   http.StatusNotFound,
	store.ErrClientNotFound:     http.StatusNotFound,
	store.ErrSlugAlreadyExists:  http.StatusConflict,
	store.ErrAlreadyAssigned:    http.StatusConflict,
	store.ErrAssignmentNotFound: http.StatusNotFound,
	store.ErrAlreadyShared:      http.StatusConflict,
	store.ErrShareNotFound:      http.StatusNotFound,

	store.ErrQuoteNotFound:              http.StatusNotFound,
	store.ErrQuoteNumberAlreadyExists:   http.StatusConflict,
	store.ErrInvoiceNotFound:            http.StatusNotFound,
	store.ErrInvoiceNumberAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
