package model

// Listing is one row of the joined property table: a single configuration
// variant together with its project and address context. The joined table is
// built once at startup and treated as immutable afterwards.
type Listing struct {
	ID             string
	ConfigID       string
	VariantID      string
	ProjectName    string
	Status         string
	PossessionDate string
	Summary        string
	BHKType        string
	MinPrice       float64
	CarpetArea     float64
	Bathrooms      *int
	ImageURL       string
	FullAddress    string
	City           string
	Locality       string
}

// PropertyCard is the public shape of a matched listing. Optional fields are
// pointers so that missing values serialize as explicit JSON nulls.
type PropertyCard struct {
	ID             string   `json:"id"`
	ProjectName    string   `json:"project_name"`
	City           *string  `json:"city"`
	Locality       *string  `json:"locality"`
	Status         *string  `json:"status"`
	PossessionDate *string  `json:"possession_date"`
	BHKType        *string  `json:"bhk_type"`
	MinPrice       *float64 `json:"min_price"`
	CarpetArea     *float64 `json:"carpet_area"`
	Bathrooms      *int     `json:"bathrooms"`
	Summary        *string  `json:"summary"`
	ImageURL       *string  `json:"image_url"`
	FormattedPrice string   `json:"formatted_price"`
	FullAddress    *string  `json:"full_address"`
}
