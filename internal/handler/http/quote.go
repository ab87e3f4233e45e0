package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/utils"
	"github.com/mvoronin/estate-keeper/models"
)

func (h *Handler) createQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	managerID, ok := managerIDFromRequest(w, r)
	if !ok {
		return
	}

	var quote models.QuoteWithItems
	if err := json.NewDecoder(r.Body).Decode(&quote); err != nil {
		log.Err(err).Str("func", "*Handler.createQuote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.QuoteService.CreateQuote(r.Context(), managerID, quote)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createQuote").Msg("error creating quote")
		http.Error(w, "error creating quote", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	quote, err := h.services.QuoteService.GetQuote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getQuote").Msg("error getting quote")
		http.Error(w, "error getting quote", statusFromError(err))
		return
	}

	utils.WriteJSON(w, quote, http.StatusOK)
}

func (h *Handler) listQuotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	managerID, ok := managerIDFromRequest(w, r)
	if !ok {
		return
	}

	quotes, err := h.services.QuoteService.ListQuotes(r.Context(), managerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listQuotes").Msg("error listing quotes")
		http.Error(w, "error listing quotes", statusFromError(err))
		return
	}

	utils.WriteJSON(w, quotes, http.StatusOK)
}

func (h *Handler) updateQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var quote models.QuoteWithItems
	if err := json.NewDecoder(r.Body).Decode(&quote); err != nil {
		log.Err(err).Str("func", "*Handler.updateQuote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	quote.QuoteID = chi.URLParam(r, "id")

	updated, err := h.services.QuoteService.UpdateQuote(r.Context(), quote)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateQuote").Msg("error updating quote")
		http.Error(w, "error updating quote", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.QuoteService.DeleteQuote(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.deleteQuote").Msg("error deleting quote")
		http.Error(w, "error deleting quote", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sendQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.QuoteService.SendQuote(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.sendQuote").Msg("error sending quote")
		http.Error(w, "error sending quote", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) duplicateQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	duplicate, err := h.services.QuoteService.DuplicateQuote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.duplicateQuote").Msg("error duplicating quote")
		http.Error(w, "error duplicating quote", statusFromError(err))
		return
	}

	utils.WriteJSON(w, duplicate, http.StatusCreated)
}

func (h *Handler) convertQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	invoice, err := h.services.QuoteService.ConvertToInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.convertQuote").Msg("error converting quote to invoice")
		http.Error(w, "error converting quote to invoice", statusFromError(err))
		return
	}

	utils.WriteJSON(w, invoice, http.StatusCreated)
}

// viewQuote is the public quote read. The service applies read-time expiry
// and flips a sent quote to viewed before the page is returned.
func (h *Handler) viewQuote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	quote, err := h.services.QuoteService.ViewQuoteByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.viewQuote").Msg("error viewing quote")
		http.Error(w, "error viewing quote", statusFromError(err))
		return
	}

	utils.WriteJSON(w, quote, http.StatusOK)
}

func (h *Handler) acceptQuote(w http.ResponseWriter, r *http.Request) {
	h.respondToQuote(w, r, true)
}

func (h *Handler) declineQuote(w http.ResponseWriter, r *http.Request) {
	h.respondToQuote(w, r, false)
}

func (h *Handler) respondToQuote(w http.ResponseWriter, r *http.Request, accept bool) {
	log := logger.FromRequest(r)

	quote, err := h.services.QuoteService.RespondToQuote(r.Context(), chi.URLParam(r, "number"), accept)
	if err != nil {
		log.Err(err).Str("func", "*Handler.respondToQuote").Bool("accept", accept).Msg("error responding to quote")
		http.Error(w, "error responding to quote", statusFromError(err))
		return
	}

	utils.WriteJSON(w, quote, http.StatusOK)
}
