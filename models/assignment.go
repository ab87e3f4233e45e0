package models

import "time"

// PricingVisibility is the per-client pricing-visibility triple carried on
// an assignment row. Each flag is ANDed against the property's own pricing
// flag at display time: a client-level flag can hide a price the property
// shows, never reveal one the property hides.
type PricingVisibility struct {
	ShowMonthlyRent   bool `json:"show_monthly_rent_to_client"`
	ShowNightlyRate   bool `json:"show_nightly_rate_to_client"`
	ShowPurchasePrice bool `json:"show_purchase_price_to_client"`
}

// AllPricingVisible returns the triple with every flag set, the default
// applied when an assignment is created without an explicit choice.
func AllPricingVisible() PricingVisibility {
	return PricingVisibility{
		ShowMonthlyRent:   true,
		ShowNightlyRate:   true,
		ShowPurchasePrice: true,
	}
}

// Assignment is one row of the client↔property relation. The
// (ClientID, PropertyID) pair is unique; Position orders the client's
// portfolio, lower first.
//
// Historical rows may carry NULL visibility columns; the store coalesces
// them to true at the read boundary, so the triple here is always concrete.
type Assignment struct {
	ClientID   string            `json:"client_id"`
	PropertyID string            `json:"property_id"`
	Position   int               `json:"position"`
	Pricing    PricingVisibility `json:"pricing"`
	CreatedAt  time.Time         `json:"created_at"`
}

// AssignedProperty pairs a property with its assignment row for a given
// client. Both visibility layers are exposed; collapsing them into an
// effective display decision is the caller's responsibility.
type AssignedProperty struct {
	Property Property          `json:"property"`
	Position int               `json:"position"`
	Pricing  PricingVisibility `json:"pricing"`
}

// BulkResult reports the outcome of a bulk assignment operation. Count is
// the number of rows actually inserted or deleted; members skipped because
// of an existing assignment are excluded from the count.
type BulkResult struct {
	Count int `json:"count"`
}

// TableName returns the name of the database table
// associated with the Assignment model.
func (a Assignment) TableName() string {
	return "client_property_assignments"
}
