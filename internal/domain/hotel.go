package domain

// Hotel is the canonical search result shape. Every field is populated by
// the normalizer, so downstream code never checks for missing values.
// Rating is nominally 0..5 but upstream values are passed through as-is.
type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Coordinates *Coords  `json:"coordinates"`
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// SearchQuery carries the parsed /search-hotels parameters. Bounds are nil
// when the corresponding filter was not requested. Page and Limit are
// validated at the HTTP boundary (page >= 1, 1 <= limit <= 200).
type SearchQuery struct {
	Location  string
	CheckIn   string
	CheckOut  string
	Guests    string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Amenities []string
	SortBy    string // "" or one of SortableFields
	SortOrder string // "asc" (default) or "desc"
	Page      int
	Limit     int
}

// SortableFields is the closed set of fields the pipeline can order by.
var SortableFields = map[string]bool{
	"name":     true,
	"location": true,
	"price":    true,
	"rating":   true,
	"reviews":  true,
}

// SearchPage is one page of filtered/sorted results plus pagination
// metadata computed on the filtered set.
type SearchPage struct {
	Hotels     []Hotel `json:"hotels"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
	HasMore    bool    `json:"hasMore"`
}
