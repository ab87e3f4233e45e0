package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/utils"
	"github.com/mvoronin/estate-keeper/models"
)

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	managerID, ok := managerIDFromRequest(w, r)
	if !ok {
		return
	}

	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		log.Err(err).Str("func", "*Handler.createClient").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ClientService.CreateClient(r.Context(), managerID, client)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createClient").Msg("error creating client")
		http.Error(w, "error creating client", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	client, err := h.services.ClientService.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getClient").Msg("error getting client")
		http.Error(w, "error getting client", statusFromError(err))
		return
	}

	utils.WriteJSON(w, client, http.StatusOK)
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	managerID, ok := managerIDFromRequest(w, r)
	if !ok {
		return
	}

	clients, err := h.services.ClientService.ListClients(r.Context(), managerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listClients").Msg("error listing clients")
		http.Error(w, "error listing clients", statusFromError(err))
		return
	}

	utils.WriteJSON(w, clients, http.StatusOK)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		log.Err(err).Str("func", "*Handler.updateClient").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	client.ClientID = chi.URLParam(r, "id")

	updated, err := h.services.ClientService.UpdateClient(r.Context(), client)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateClient").Msg("error updating client")
		http.Error(w, "error updating client", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// statusRequest is the JSON body of the client status endpoint.
type statusRequest struct {
	Status models.ClientStatus `json:"status"`
}

func (h *Handler) updateClientStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request statusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateClientStatus").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ClientService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), request.Status)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateClientStatus").Msg("error updating client status")
		http.Error(w, "error updating client status", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.ClientService.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.deleteClient").Msg("error deleting client")
		http.Error(w, "error deleting client", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// shareRequest is the JSON body of the share and unshare endpoints.
type shareRequest struct {
	ManagerID string `json:"manager_id"`
}

func (h *Handler) shareClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	managerID, ok := managerIDFromRequest(w, r)
	if !ok {
		return
	}

	var request shareRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.shareClient").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	share, err := h.services.ClientService.ShareClient(r.Context(), chi.URLParam(r, "id"), request.ManagerID, managerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.shareClient").Msg("error sharing client")
		http.Error(w, "error sharing client", statusFromError(err))
		return
	}

	utils.WriteJSON(w, share, http.StatusCreated)
}

func (h *Handler) unshareClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request shareRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.unshareClient").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ClientService.UnshareClient(r.Context(), chi.URLParam(r, "id"), request.ManagerID); err != nil {
		log.Err(err).Str("func", "*Handler.unshareClient").Msg("error unsharing client")
		http.Error(w, "error unsharing client", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listClientShares(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	shares, err := h.services.ClientService.ListShares(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listClientShares").Msg("error listing client shares")
		http.Error(w, "error listing client shares", statusFromError(err))
		return
	}

	utils.WriteJSON(w, shares, http.StatusOK)
}
