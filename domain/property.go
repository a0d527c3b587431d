package domain

// Property status values.
const (
	StatusActive    = "active"
	StatusSold      = "sold"
	StatusPending   = "pending"
	StatusOffMarket = "off_market"
)

// ValidStatuses lists every accepted property status.
var ValidStatuses = []string{StatusActive, StatusSold, StatusPending, StatusOffMarket}

// PropertyCreate is the raw JSON-decoded creation request.
type PropertyCreate struct {
	Address      string   `json:"address"`
	Price        float64  `json:"price"`
	Location     string   `json:"location"`
	PropertyType string   `json:"property_type"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty"`
	SquareFeet   *int     `json:"square_feet,omitempty"`
	Description  string   `json:"description,omitempty"`
	Status       string   `json:"status,omitempty"`
}

// Property is a stored property record.
type Property struct {
	ID           string   `json:"id"`
	Address      string   `json:"address"`
	Price        float64  `json:"price"`
	Location     string   `json:"location"`
	PropertyType string   `json:"property_type"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty"`
	SquareFeet   *int     `json:"square_feet,omitempty"`
	Description  string   `json:"description,omitempty"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// PropertyFilter narrows a property listing.
type PropertyFilter struct {
	Status   string `json:"status,omitempty"`
	Location string `json:"location,omitempty"`
	Limit    int    `json:"limit"`
}

// PropertyList is the listing response payload.
type PropertyList struct {
	Properties []Property     `json:"properties"`
	Count      int            `json:"count"`
	Filters    PropertyFilter `json:"filters"`
}
