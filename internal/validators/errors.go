package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAddress       = errors.New("address is required")
	ErrNegativePrice      = errors.New("price amounts cannot be negative")
	ErrEmptyClientName    = errors.New("client name is required")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidSlug        = errors.New("invalid slug")
	ErrEmptyDocumentItems = errors.New("at least one item is required")
	ErrEmptyItemName      = errors.New("item name is required")
	ErrNonPositiveQty     = errors.New("item quantity must be positive")
	ErrNegativeTaxRate    = errors.New("tax rate cannot be negative")
)
