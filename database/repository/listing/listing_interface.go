package listingRepo

import "staymate/models"

// ListingQuery holds the optional filters for a listing search.
// Zero values mean "no filter".
type ListingQuery struct {
	Text        string   // free-text match against title and description
	City        string   // case-insensitive partial match on city
	Country     string   // case-insensitive partial match on country
	Guests      int      // max_guests >= Guests
	MinPrice    float64  // price_per_night >= MinPrice
	MaxPrice    float64  // price_per_night <= MaxPrice
	MinBedrooms int      // bedrooms >= MinBedrooms
	Amenities   []string // listing must carry all of these
	Limit       int
}

// ListingRepository defines methods for listing data access.
type ListingRepository interface {
	// Search retrieves listings matching the given filters, up to the query limit.
	Search(q ListingQuery) ([]models.Listing, error)
	// GetByTitle retrieves a listing by its exact title. Returns nil when not found.
	GetByTitle(title string) (*models.Listing, error)
	// GetByID retrieves a listing by its unique ID. Returns nil when not found.
	GetByID(id string) (*models.Listing, error)
}
