package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the full route tree. Admin routes sit behind the JWT auth
// middleware; portfolio, quote and invoice reads by public key do not, since
// clients follow those links without an account.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/portfolio/{slug}", h.portfolio)

		r.Get("/api/quote/{number}", h.viewQuote)
		r.Post("/api/quote/{number}/accept", h.acceptQuote)
		r.Post("/api/quote/{number}/decline", h.declineQuote)
		r.Get("/api/invoice/{number}", h.viewInvoice)

		r.Get("/api/version", h.getServerVersion)
	})

	router.Route("/api/admin", func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", h.listProperties)
			r.Post("/", h.createProperty)
			r.Post("/scrape", h.scrapeProperty)
			r.Get("/{id}", h.getProperty)
			r.Put("/{id}", h.updateProperty)
			r.Delete("/{id}", h.deleteProperty)
			r.Patch("/{id}/display", h.updatePropertyDisplay)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.listClients)
			r.Post("/", h.createClient)
			r.Get("/{id}", h.getClient)
			r.Put("/{id}", h.updateClient)
			r.Delete("/{id}", h.deleteClient)
			r.Put("/{id}/status", h.updateClientStatus)

			r.Get("/{id}/shares", h.listClientShares)
			r.Post("/{id}/shares", h.shareClient)
			r.Delete("/{id}/shares", h.unshareClient)

			r.Route("/{id}/properties", func(r chi.Router) {
				r.Get("/", h.listAssignedProperties)
				r.Post("/", h.assignProperty)
				r.Post("/bulk", h.bulkAssign)
				r.Delete("/bulk", h.bulkUnassign)
				r.Put("/order", h.setAssignmentOrder)
				r.Delete("/{propertyID}", h.unassignProperty)
				r.Put("/{propertyID}/pricing", h.updateAssignmentPricing)
			})
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", h.listQuotes)
			r.Post("/", h.createQuote)
			r.Get("/{id}", h.getQuote)
			r.Put("/{id}", h.updateQuote)
			r.Delete("/{id}", h.deleteQuote)
			r.Post("/{id}/send", h.sendQuote)
			r.Post("/{id}/duplicate", h.duplicateQuote)
			r.Post("/{id}/convert", h.convertQuote)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.listInvoices)
			r.Post("/", h.createInvoice)
			r.Get("/export", h.exportInvoiceLedger)
			r.Get("/{id}", h.getInvoice)
			r.Put("/{id}", h.updateInvoice)
			r.Delete("/{id}", h.deleteInvoice)
			r.Post("/{id}/send", h.sendInvoice)
			r.Post("/{id}/paid", h.markInvoicePaid)
		})
	})

	return router
}
