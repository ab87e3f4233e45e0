package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvoronin/estate-keeper/models"
)

func fp(v float64) *float64 { return &v }

func TestResolveEffectivePricing_TwoLayerAnd(t *testing.T) {
	property := models.Property{
		ShowMonthlyRent:     true,
		CustomMonthlyRent:   fp(12500),
		ShowNightlyRate:     true,
		CustomNightlyRate:   fp(850),
		ShowPurchasePrice:   false,
		CustomPurchasePrice: fp(4_200_000),
	}

	tests := []struct {
		name    string
		pricing models.PricingVisibility
		want    models.EffectivePricing
	}{
		{
			name:    "all client flags on",
			pricing: models.AllPricingVisible(),
			want:    models.EffectivePricing{MonthlyRent: fp(12500), NightlyRate: fp(850)},
		},
		{
			name:    "client hides monthly rent",
			pricing: models.PricingVisibility{ShowNightlyRate: true, ShowPurchasePrice: true},
			want:    models.EffectivePricing{NightlyRate: fp(850)},
		},
		{
			name:    "client flag cannot reveal a property-hidden price",
			pricing: models.PricingVisibility{ShowPurchasePrice: true},
			want:    models.EffectivePricing{},
		},
		{
			name:    "all client flags off",
			pricing: models.PricingVisibility{},
			want:    models.EffectivePricing{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveEffectivePricing(property, tt.pricing))
		})
	}
}

func TestResolveEffectivePricing_NilAmountStaysHidden(t *testing.T) {
	property := models.Property{
		ShowMonthlyRent: true,
		// CustomMonthlyRent deliberately nil: flag on, no amount set.
	}

	effective := ResolveEffectivePricing(property, models.AllPricingVisible())
	assert.True(t, effective.Empty())
}
