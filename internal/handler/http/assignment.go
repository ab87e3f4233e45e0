package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/utils"
	"github.com/mvoronin/estate-keeper/models"
)

// assignRequest is the JSON body of the single-property assign endpoint.
// Pricing is optional; when omitted the assignment starts fully visible.
type assignRequest struct {
	PropertyID string                    `json:"property_id"`
	Pricing    *models.PricingVisibility `json:"pricing,omitempty"`
}

// bulkRequest is the JSON body of the bulk assign and unassign endpoints.
// Pricing is the one shared triple applied to every assigned member; the
// unassign endpoint ignores it.
type bulkRequest struct {
	PropertyIDs []string                  `json:"property_ids"`
	Pricing     *models.PricingVisibility `json:"pricing,omitempty"`
}

// orderRequest is the JSON body of the order persistence endpoint. The list
// must contain every assigned property exactly once.
type orderRequest struct {
	PropertyIDs []string `json:"property_ids"`
}

func (h *Handler) assignProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request assignRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.assignProperty").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	assignment, err := h.services.AssignmentService.Assign(r.Context(), chi.URLParam(r, "id"), request.PropertyID, request.Pricing)
	if err != nil {
		log.Err(err).Str("func", "*Handler.assignProperty").Msg("error assigning property")
		http.Error(w, "error assigning property", statusFromError(err))
		return
	}

	utils.WriteJSON(w, assignment, http.StatusCreated)
}

func (h *Handler) unassignProperty(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	err := h.services.AssignmentService.Unassign(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "propertyID"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.unassignProperty").Msg("error unassigning property")
		http.Error(w, "error unassigning property", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listAssignedProperties(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	assigned, err := h.services.AssignmentService.ListByClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAssignedProperties").Msg("error listing assigned properties")
		http.Error(w, "error listing assigned properties", statusFromError(err))
		return
	}

	utils.WriteJSON(w, assigned, http.StatusOK)
}

func (h *Handler) updateAssignmentPricing(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var pricing models.PricingVisibility
	if err := json.NewDecoder(r.Body).Decode(&pricing); err != nil {
		log.Err(err).Str("func", "*Handler.updateAssignmentPricing").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.AssignmentService.UpdateVisibility(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "propertyID"), pricing)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateAssignmentPricing").Msg("error updating pricing visibility")
		http.Error(w, "error updating pricing visibility", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) bulkAssign(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.bulkAssign").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AssignmentService.BulkAssign(r.Context(), chi.URLParam(r, "id"), request.PropertyIDs, request.Pricing)
	if err != nil {
		log.Err(err).Str("func", "*Handler.bulkAssign").Msg("error bulk assigning properties")
		http.Error(w, "error bulk assigning properties", statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) bulkUnassign(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.bulkUnassign").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AssignmentService.BulkUnassign(r.Context(), chi.URLParam(r, "id"), request.PropertyIDs)
	if err != nil {
		log.Err(err).Str("func", "*Handler.bulkUnassign").Msg("error bulk unassigning properties")
		http.Error(w, "error bulk unassigning properties", statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) setAssignmentOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request orderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.setAssignmentOrder").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.AssignmentService.SetPositions(r.Context(), chi.URLParam(r, "id"), request.PropertyIDs)
	if err != nil {
		log.Err(err).Str("func", "*Handler.setAssignmentOrder").Msg("error persisting portfolio order")
		http.Error(w, "error persisting portfolio order", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
