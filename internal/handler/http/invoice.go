// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/utils"
	"github.com/mvoronin/estate-keeper/models"
)

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	managerID, ok := managerIDFromRequest(w, r)
	if !ok {
		return
	}

	var invoice models.InvoiceWithItems
	if err := json.NewDecoder(r.Body).Decode(&invoice); err != nil {
		log.Err(err).Str("func", "*Handler.createInvoice").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.InvoiceService.CreateInvoice(r.Context(), managerID, invoice)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createInvoice").Msg("error creating invoice")
		http.Error(w, "error creating invoice", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	invoice, err := h.services.InvoiceService.GetInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getInvoice").Msg("error getting invoice")
		http.Error(w, "error getting invoice", statusFromError(err))
		return
	}

	utils.WriteJSON(w, invoice, http.StatusOK)
}

func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	managerID, ok := managerIDFromRequest(w, r)
	if !ok {
		return
	}

	invoices, err := h.services.InvoiceService.ListInvoices(r.Context(), managerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listInvoices").Msg("error listing invoices")
		http.Error(w, "error listing invoices", statusFromError(err))
		return
	}

	utils.WriteJSON(w, invoices, http.StatusOK)
}

func (h *Handler) updateInvoice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var invoice models.InvoiceWithItems
	if err := json.NewDecoder(r.Body).Decode(&invoice); err != nil {
		log.Err(err).Str("func", "*Handler.updateInvoice").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	invoice.InvoiceID = chi.URLParam(r, "id")

	updated, err := h.services.InvoiceService.UpdateInvoice(r.Context(), invoice)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateInvoice").Msg("error updating invoice")
		http.Error(w, "error updating invoice", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.InvoiceService.DeleteInvoice(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.deleteInvoice").Msg("error deleting invoice")
		http.Error(w, "error deleting invoice", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sendInvoice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.InvoiceService.SendInvoice(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.sendInvoice").Msg("error sending invoice")
		http.Error(w, "error sending invoice", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markInvoicePaid(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.InvoiceService.MarkInvoicePaid(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.markInvoicePaid").Msg("error marking invoice paid")
		http.Error(w, "error marking invoice paid", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// viewInvoice is the public invoice read. The service applies read-time
// overdue before the page is returned.
func (h *Handler) viewInvoice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	invoice, err := h.services.InvoiceService.GetInvoiceByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.viewInvoice").Msg("error viewing invoice")
		http.Error(w, "error viewing invoice", statusFromError(err))
		return
	}

	utils.WriteJSON(w, invoice, http.StatusOK)
}

func (h *Handler) exportInvoiceLedger(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	managerID, ok := managerIDFromRequest(w, r)
	if !ok {
		return
	}

	workbook, err := h.services.InvoiceService.ExportLedger(r.Context(), managerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportInvoiceLedger").Msg("error exporting invoice ledger")
		http.Error(w, "error exporting invoice ledger", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(workbook)
}
