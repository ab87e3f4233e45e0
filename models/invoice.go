package models

import "time"

// InvoiceStatus is the lifecycle state of an invoice.
//
// Transitions: draft → sent → paid. A sent invoice whose due date has
// passed becomes overdue. Only draft invoices may be edited or deleted.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Valid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// InvoiceLineItem is one ordered line of an invoice. Total is always
// Quantity × UnitPrice, recomputed server-side on every write.
type InvoiceLineItem struct {
	ItemID      string  `json:"id"`
	InvoiceID   string  `json:"invoice_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Position    int     `json:"position"`
}

// Invoice is a billing document issued to a client: a header with computed
// totals plus an ordered list of line items.
type Invoice struct {
	InvoiceID     string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	ManagerID     string        `json:"manager_id"`
	ClientName    string        `json:"client_name"`
	ClientEmail   string        `json:"client_email,omitempty"`
	Status        InvoiceStatus `json:"status"`

	Subtotal  float64 `json:"subtotal"`
	TaxRate   float64 `json:"tax_rate"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`

	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// InvoiceWithItems bundles an invoice header with its ordered line items.
type InvoiceWithItems struct {
	Invoice
	Items []InvoiceLineItem `json:"items"`
}

// TableName returns the name of the database table
// associated with the Invoice model.
func (i Invoice) TableName() string {
	return "invoices"
}
