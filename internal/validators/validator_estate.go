package validators

import (
	"context"
	"regexp"

	"github.com/mvoronin/estate-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldAddress    = "address"
	FieldPricing    = "pricing"
	FieldClientName = "name"
	FieldStatus     = "status"
	FieldSlug       = "slug"
	FieldItems      = "items"
	FieldTaxRate    = "tax_rate"
)

// slugPattern matches the generated public slugs: lowercase words joined by
// hyphens with a trailing random suffix.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// EstateValidator validates the admin-facing write models: properties,
// clients, quotes and invoices.
type EstateValidator struct {
}

func NewEstateValidator() Validator {
	return &EstateValidator{}
}

func (v *EstateValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Property:
		return v.validateProperty(ctx, value, fields...)
	case *models.Property:
		return v.validateProperty(ctx, *value, fields...)

	case models.Client:
		return v.validateClient(ctx, value, fields...)
	case *models.Client:
		return v.validateClient(ctx, *value, fields...)

	case models.QuoteWithItems:
		return v.validateQuote(ctx, value, fields...)
	case *models.QuoteWithItems:
		return v.validateQuote(ctx, *value, fields...)

	case models.InvoiceWithItems:
		return v.validateInvoice(ctx, value, fields...)
	case *models.InvoiceWithItems:
		return v.validateInvoice(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func negativeAmount(amount *float64) bool {
	return amount != nil && *amount < 0
}

func (v *EstateValidator) validateProperty(_ context.Context, property models.Property, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddress, FieldPricing}
	}

	for _, f := range fields {
		switch f {
		case FieldAddress:
			if property.Address == "" {
				return ErrEmptyAddress
			}
		case FieldPricing:
			if negativeAmount(property.CustomMonthlyRent) ||
				negativeAmount(property.CustomNightlyRate) ||
				negativeAmount(property.CustomPurchasePrice) {
				return ErrNegativePrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EstateValidator) validateClient(_ context.Context, client models.Client, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientName, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldClientName:
			if client.Name == "" {
				return ErrEmptyClientName
			}
		case FieldStatus:
			if client.Status != "" && !client.Status.Valid() {
				return ErrInvalidStatus
			}
		case FieldSlug:
			if client.Slug == "" || !slugPattern.MatchString(client.Slug) {
				return ErrInvalidSlug
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EstateValidator) validateQuote(_ context.Context, quote models.QuoteWithItems, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientName, FieldItems, FieldTaxRate}
	}

	for _, f := range fields {
		switch f {
		case FieldClientName:
			if quote.ClientName == "" {
				return ErrEmptyClientName
			}
		case FieldItems:
			if len(quote.Items) == 0 {
				return ErrEmptyDocumentItems
			}
			for _, item := range quote.Items {
				if item.Name == "" {
					return ErrEmptyItemName
				}
				if item.Price < 0 {
					return ErrNegativePrice
				}
			}
		case FieldTaxRate:
			if quote.TaxRate < 0 {
				return ErrNegativeTaxRate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EstateValidator) validateInvoice(_ context.Context, invoice models.InvoiceWithItems, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientName, FieldItems, FieldTaxRate}
	}

	for _, f := range fields {
		switch f {
		case FieldClientName:
			if invoice.ClientName == "" {
				return ErrEmptyClientName
			}
		case FieldItems:
			if len(invoice.Items) == 0 {
				return ErrEmptyDocumentItems
			}
			for _, item := range invoice.Items {
				if item.Description == "" {
					return ErrEmptyItemName
				}
				if item.Quantity <= 0 {
					return ErrNonPositiveQty
				}
				if item.UnitPrice < 0 {
					return ErrNegativePrice
				}
			}
		case FieldTaxRate:
			if invoice.TaxRate < 0 {
				return ErrNegativeTaxRate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
