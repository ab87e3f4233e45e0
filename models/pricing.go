package models

// EffectivePricing is the result of resolving a property's pricing against a
// client's assignment overrides. A nil field means the price kind is hidden
// for that viewer: omission is the "hidden" signal, there is no visible
// price with a null amount.
type EffectivePricing struct {
	MonthlyRent   *float64 `json:"monthly_rent,omitempty"`
	NightlyRate   *float64 `json:"nightly_rate,omitempty"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
}

// Empty reports whether no price kind is visible at all.
func (e EffectivePricing) Empty() bool {
	return e.MonthlyRent == nil && e.NightlyRate == nil && e.PurchasePrice == nil
}
