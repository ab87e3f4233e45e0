package models

import "time"

// Default field labels shown on property pages when no override is set.
const (
	DefaultLabelBedrooms      = "Bedrooms"
	DefaultLabelBathrooms     = "Bathrooms"
	DefaultLabelArea          = "Area"
	DefaultLabelMonthlyRent   = "Monthly Rent"
	DefaultLabelNightlyRate   = "Nightly Rate"
	DefaultLabelPurchasePrice = "Purchase Price"
)

// Property is a persisted listing record together with its default pricing
// flags and display-customization fields.
//
// Each price kind is a (Show*, Custom*) pair: the amount is only meaningful
// when the flag is true AND the amount is non-nil. A nil amount silently
// suppresses display even when the flag is set.
//
// Bedrooms/bathrooms/area are free text: scraped sources report values like
// "3.5" or "4+" that do not survive strict numeric typing.
type Property struct {
	PropertyID  string     `json:"id"`
	ListingURL  string     `json:"listing_url"`
	Address     string     `json:"address"`
	Bedrooms    string     `json:"bedrooms,omitempty"`
	Bathrooms   string     `json:"bathrooms,omitempty"`
	Area        string     `json:"area,omitempty"`
	Images      []string   `json:"images"`
	Description string     `json:"description,omitempty"`
	ScrapedAt   *time.Time `json:"scraped_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Pricing pairs. Show* defaults to false for a bare record; Custom* is
	// nil until the admin sets an amount.
	ShowMonthlyRent     bool     `json:"show_monthly_rent"`
	CustomMonthlyRent   *float64 `json:"custom_monthly_rent,omitempty"`
	ShowNightlyRate     bool     `json:"show_nightly_rate"`
	CustomNightlyRate   *float64 `json:"custom_nightly_rate,omitempty"`
	ShowPurchasePrice   bool     `json:"show_purchase_price"`
	CustomPurchasePrice *float64 `json:"custom_purchase_price,omitempty"`

	// Display customization. Field visibility flags default to true;
	// labels default to the fixed English labels above when empty.
	Display PropertyDisplay `json:"display"`
}

// PropertyDisplay groups the per-field presentation overrides an admin can
// set in the customization dialog. CustomNotes is shown to viewers only and
// is distinct from the listing description.
type PropertyDisplay struct {
	ShowBedrooms  bool `json:"show_bedrooms"`
	ShowBathrooms bool `json:"show_bathrooms"`
	ShowArea      bool `json:"show_area"`
	ShowAddress   bool `json:"show_address"`
	ShowImages    bool `json:"show_images"`

	LabelBedrooms      string `json:"label_bedrooms,omitempty"`
	LabelBathrooms     string `json:"label_bathrooms,omitempty"`
	LabelArea          string `json:"label_area,omitempty"`
	LabelMonthlyRent   string `json:"label_monthly_rent,omitempty"`
	LabelNightlyRate   string `json:"label_nightly_rate,omitempty"`
	LabelPurchasePrice string `json:"label_purchase_price,omitempty"`

	CustomNotes string `json:"custom_notes,omitempty"`
}

// DefaultPropertyDisplay returns the display settings of a freshly created
// property: every field visible, every label at its default.
func DefaultPropertyDisplay() PropertyDisplay {
	return PropertyDisplay{
		ShowBedrooms:  true,
		ShowBathrooms: true,
		ShowArea:      true,
		ShowAddress:   true,
		ShowImages:    true,
	}
}

// PropertyDisplayUpdate is a partial patch of the display-customization
// fields. Nil pointers mean "leave unchanged".
type PropertyDisplayUpdate struct {
	ShowBedrooms  *bool `json:"show_bedrooms,omitempty"`
	ShowBathrooms *bool `json:"show_bathrooms,omitempty"`
	ShowArea      *bool `json:"show_area,omitempty"`
	ShowAddress   *bool `json:"show_address,omitempty"`
	ShowImages    *bool `json:"show_images,omitempty"`

	LabelBedrooms      *string `json:"label_bedrooms,omitempty"`
	LabelBathrooms     *string `json:"label_bathrooms,omitempty"`
	LabelArea          *string `json:"label_area,omitempty"`
	LabelMonthlyRent   *string `json:"label_monthly_rent,omitempty"`
	LabelNightlyRate   *string `json:"label_nightly_rate,omitempty"`
	LabelPurchasePrice *string `json:"label_purchase_price,omitempty"`

	CustomNotes *string `json:"custom_notes,omitempty"`
}

// TableName returns the name of the database table
// associated with the Property model.
func (p Property) TableName() string {
	return "properties"
}
