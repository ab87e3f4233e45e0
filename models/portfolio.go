package models

// PortfolioProperty is one entry of a client's public portfolio: the
// property's visible descriptive fields after display customization plus
// the effective pricing resolved for this client.
type PortfolioProperty struct {
	PropertyID  string   `json:"id"`
	Address     string   `json:"address,omitempty"`
	Bedrooms    string   `json:"bedrooms,omitempty"`
	Bathrooms   string   `json:"bathrooms,omitempty"`
	Area        string   `json:"area,omitempty"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description,omitempty"`
	CustomNotes string   `json:"custom_notes,omitempty"`

	// Labels holds the resolved field labels (override or default).
	Labels map[string]string `json:"labels"`

	Pricing EffectivePricing `json:"pricing"`
}

// Portfolio is the public view of a client's curated property list,
// ordered by assignment position.
type Portfolio struct {
	ClientName string              `json:"client_name"`
	Properties []PortfolioProperty `json:"properties"`
}
