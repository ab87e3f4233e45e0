package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/utils"
	"github.com/mvoronin/estate-keeper/models"
)

// managerIDFromRequest extracts the authenticated manager's ID placed in the
// context by the auth middleware. A missing ID means the handler was wired
// outside the auth group and is rejected outright.
func managerIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	managerID, ok := utils.GetManagerIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return managerID, ok
}

func (h *Handler) createProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		log.Err(err).Str("func", "*Handler.createProperty").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PropertyService.CreateProperty(r.Context(), property)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createProperty").Msg("error creating property")
		http.Error(w, "error creating property", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// scrapeRequest is the JSON body of the listing import endpoint.
type scrapeRequest struct {
	URL string `json:"url"`
}

func (h *Handler) scrapeProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.scrapeProperty").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PropertyService.CreateFromListing(r.Context(), request.URL)
	if err != nil {
		log.Err(err).Str("func", "*Handler.scrapeProperty").Str("url", request.URL).Msg("error importing listing")
		http.Error(w, "error importing listing", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	property, err := h.services.PropertyService.GetProperty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProperty").Msg("error getting property")
		http.Error(w, "error getting property", statusFromError(err))
		return
	}

	utils.WriteJSON(w, property, http.StatusOK)
}

func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	properties, err := h.services.PropertyService.ListProperties(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listProperties").Msg("error listing properties")
		http.Error(w, "error listing properties", statusFromError(err))
		return
	}

	utils.WriteJSON(w, properties, http.StatusOK)
}

func (h *Handler) updateProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		log.Err(err).Str("func", "*Handler.updateProperty").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	property.PropertyID = chi.URLParam(r, "id")

	updated, err := h.services.PropertyService.UpdateProperty(r.Context(), property)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateProperty").Msg("error updating property")
		http.Error(w, "error updating property", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) updatePropertyDisplay(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.PropertyDisplayUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updatePropertyDisplay").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PropertyService.UpdateDisplay(r.Context(), chi.URLParam(r, "id"), update); err != nil {
		log.Err(err).Str("func", "*Handler.updatePropertyDisplay").Msg("error updating property display")
		http.Error(w, "error updating property display", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.PropertyService.DeleteProperty(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.deleteProperty").Msg("error deleting property")
		http.Error(w, "error deleting property", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
