package models

import "time"

// QuoteStatus is the lifecycle state of a quote.
//
// Transitions: draft → sent → viewed → accepted | declined. A sent or
// viewed quote whose validity window has passed becomes expired. Only
// draft quotes may be edited or deleted.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusViewed   QuoteStatus = "viewed"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// Valid reports whether s is one of the known quote statuses.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusViewed,
		QuoteStatusAccepted, QuoteStatusDeclined, QuoteStatusExpired:
		return true
	}
	return false
}

// QuoteServiceItem is one ordered line of a quote.
type QuoteServiceItem struct {
	ItemID      string   `json:"id"`
	QuoteID     string   `json:"quote_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Images      []string `json:"images,omitempty"`
	Position    int      `json:"position"`
}

// Quote is a service proposal issued to a client: a header with computed
// totals plus an ordered list of service items.
type Quote struct {
	QuoteID     string      `json:"id"`
	QuoteNumber string      `json:"quote_number"`
	ManagerID   string      `json:"manager_id"`
	ClientName  string      `json:"client_name"`
	ClientEmail string      `json:"client_email,omitempty"`
	Status      QuoteStatus `json:"status"`

	Subtotal  float64 `json:"subtotal"`
	TaxRate   float64 `json:"tax_rate"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`

	ValidUntil *time.Time `json:"valid_until,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// QuoteWithItems bundles a quote header with its ordered service items.
type QuoteWithItems struct {
	Quote
	Items []QuoteServiceItem `json:"items"`
}

// TableName returns the name of the database table
// associated with the Quote model.
func (q Quote) TableName() string {
	return "quotes"
}
