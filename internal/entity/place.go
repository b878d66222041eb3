package entity

// Operating status values reported by the places provider.
const (
	StatusOperational       = "OPERATIONAL"
	StatusClosedTemporarily = "CLOSED_TEMPORARILY"
	StatusClosedPermanently = "CLOSED_PERMANENTLY"
)

// Photo references a single image attached to a business listing.
type Photo struct {
	Reference string `json:"photo_reference"`
	Height    int    `json:"height"`
	Width     int    `json:"width"`
}

// Review is one entry from the provider's recent-review sample. The provider
// returns at most the five most recent reviews, never the full history.
type Review struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
	Time       int64   `json:"time"`
}

// ServiceAttributes holds the independent optional flags the provider exposes
// for a listing. A nil pointer means the attribute was not reported at all,
// which is distinct from an explicit false.
type ServiceAttributes struct {
	Delivery                     *bool `json:"delivery,omitempty"`
	DineIn                       *bool `json:"dine_in,omitempty"`
	Takeout                      *bool `json:"takeout,omitempty"`
	CurbsidePickup               *bool `json:"curbside_pickup,omitempty"`
	Reservable                   *bool `json:"reservable,omitempty"`
	ServesBeer                   *bool `json:"serves_beer,omitempty"`
	ServesWine                   *bool `json:"serves_wine,omitempty"`
	ServesBreakfast              *bool `json:"serves_breakfast,omitempty"`
	ServesBrunch                 *bool `json:"serves_brunch,omitempty"`
	ServesLunch                  *bool `json:"serves_lunch,omitempty"`
	ServesDinner                 *bool `json:"serves_dinner,omitempty"`
	ServesVegetarianFood         *bool `json:"serves_vegetarian_food,omitempty"`
	WheelchairAccessibleEntrance *bool `json:"wheelchair_accessible_entrance,omitempty"`
}

// PlaceRecord is the normalized business profile consumed by the scoring
// engine. Every field except PlaceID and Name is optional; the engine treats
// zero values and nil pointers as "not present".
type PlaceRecord struct {
	PlaceID        string            `json:"place_id"`
	Name           string            `json:"name"`
	Address        string            `json:"address,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Website        string            `json:"website,omitempty"`
	WeekdayHours   []string          `json:"weekday_hours,omitempty"`
	Categories     []string          `json:"categories,omitempty"`
	PriceLevel     *int              `json:"price_level,omitempty"`
	Description    string            `json:"description,omitempty"`
	Photos         []Photo           `json:"photos,omitempty"`
	Rating         float64           `json:"rating,omitempty"`
	RatingCount    int               `json:"rating_count,omitempty"`
	RecentReviews  []Review          `json:"recent_reviews,omitempty"`
	BusinessStatus string            `json:"business_status,omitempty"`
	GoogleMapsURL  string            `json:"google_maps_url,omitempty"`
	Attributes     ServiceAttributes `json:"attributes,omitempty"`
}
