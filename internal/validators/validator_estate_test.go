package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/mvoronin/estate-keeper/models"
)

func TestValidateProperty(t *testing.T) {
	v := NewEstateValidator()
	ctx := context.Background()

	negative := -100.0

	tests := []struct {
		name     string
		property models.Property
		fields   []string
		wantErr  error
	}{
		{
			name:     "valid property",
			property: models.Property{Address: "Villa Azure, Marbella"},
		},
		{
			name:     "missing address",
			property: models.Property{},
			wantErr:  ErrEmptyAddress,
		},
		{
			name:     "negative custom price",
			property: models.Property{Address: "Villa Azure", CustomMonthlyRent: &negative},
			wantErr:  ErrNegativePrice,
		},
		{
			name:     "scoped to pricing skips address",
			property: models.Property{},
			fields:   []string{FieldPricing},
		},
		{
			name:     "unknown field",
			property: models.Property{Address: "Villa Azure"},
			fields:   []string{"bogus"},
			wantErr:  ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.property, tt.fields...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateClient(t *testing.T) {
	v := NewEstateValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		client  models.Client
		fields  []string
		wantErr error
	}{
		{
			name:   "valid client",
			client: models.Client{Name: "Alexander Thompson", Status: models.ClientStatusActive},
		},
		{
			name:    "missing name",
			client:  models.Client{Status: models.ClientStatusActive},
			wantErr: ErrEmptyClientName,
		},
		{
			name:    "unknown status",
			client:  models.Client{Name: "Alexander Thompson", Status: "archived"},
			wantErr: ErrInvalidStatus,
		},
		{
			name:   "valid slug",
			client: models.Client{Slug: "alexander-thompson-k3x9p2q1"},
			fields: []string{FieldSlug},
		},
		{
			name:    "invalid slug",
			client:  models.Client{Slug: "Alexander Thompson!"},
			fields:  []string{FieldSlug},
			wantErr: ErrInvalidSlug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.client, tt.fields...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateQuote(t *testing.T) {
	v := NewEstateValidator()
	ctx := context.Background()

	valid := models.QuoteWithItems{
		Quote: models.Quote{ClientName: "Alexander Thompson"},
		Items: []models.QuoteServiceItem{{Name: "Relocation concierge", Price: 5000}},
	}

	if err := v.Validate(ctx, valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	noItems := valid
	noItems.Items = nil
	if err := v.Validate(ctx, noItems); !errors.Is(err, ErrEmptyDocumentItems) {
		t.Errorf("expected ErrEmptyDocumentItems, got %v", err)
	}

	badItem := valid
	badItem.Items = []models.QuoteServiceItem{{Price: 100}}
	if err := v.Validate(ctx, badItem); !errors.Is(err, ErrEmptyItemName) {
		t.Errorf("expected ErrEmptyItemName, got %v", err)
	}
}

func TestValidateInvoice(t *testing.T) {
	v := NewEstateValidator()
	ctx := context.Background()

	valid := models.InvoiceWithItems{
		Invoice: models.Invoice{ClientName: "Alexander Thompson"},
		Items:   []models.InvoiceLineItem{{Description: "Concierge", Quantity: 2, UnitPrice: 2500}},
	}

	if err := v.Validate(ctx, &valid); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	zeroQty := valid
	zeroQty.Items = []models.InvoiceLineItem{{Description: "Concierge", Quantity: 0, UnitPrice: 2500}}
	if err := v.Validate(ctx, zeroQty); !errors.Is(err, ErrNonPositiveQty) {
		t.Errorf("expected ErrNonPositiveQty, got %v", err)
	}

	negativeTax := valid
	negativeTax.TaxRate = -1
	if err := v.Validate(ctx, negativeTax); !errors.Is(err, ErrNegativeTaxRate) {
		t.Errorf("expected ErrNegativeTaxRate, got %v", err)
	}
}

func TestValidateUnsupportedType(t *testing.T) {
	v := NewEstateValidator()

	if err := v.Validate(context.Background(), 42); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}
