package service

import "github.com/mvoronin/estate-keeper/models"

// ResolveEffectivePricing collapses the two visibility layers into the
// pricing a given client actually sees.
//
// A price kind is visible only when the property-level flag is set, the
// assignment-level flag is set, and the property carries a non-nil amount.
// Any other combination yields a nil field; the public payload then omits
// that price kind entirely rather than showing a null amount.
func ResolveEffectivePricing(property models.Property, pricing models.PricingVisibility) models.EffectivePricing {
	var effective models.EffectivePricing

	if property.ShowMonthlyRent && pricing.ShowMonthlyRent && property.CustomMonthlyRent != nil {
		effective.MonthlyRent = property.CustomMonthlyRent
	}
	if property.ShowNightlyRate && pricing.ShowNightlyRate && property.CustomNightlyRate != nil {
		effective.NightlyRate = property.CustomNightlyRate
	}
	if property.ShowPurchasePrice && pricing.ShowPurchasePrice && property.CustomPurchasePrice != nil {
		effective.PurchasePrice = property.CustomPurchasePrice
	}

	return effective
}
