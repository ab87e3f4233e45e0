package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/utils"
)

// portfolio is the public, unauthenticated portfolio read. Everything it
// returns has already been filtered down to the client-visible layer by the
// service, so the handler body is a plain passthrough.
func (h *Handler) portfolio(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page, err := h.services.PortfolioService.GetPortfolio(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.portfolio").Msg("error getting portfolio")
		http.Error(w, "error getting portfolio", statusFromError(err))
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}
