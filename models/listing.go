package models

// Listing represents an accommodation listing available for booking.
type Listing struct {
	ID            string   `bson:"id" json:"id"`                           // Unique listing identifier (e.g., UUID)
	Title         string   `bson:"title" json:"title"`                     // Display name, unique enough to resolve by
	City          string   `bson:"city" json:"city"`                       // City the listing is located in
	Country       string   `bson:"country" json:"country"`                 // Country the listing is located in
	PricePerNight float64  `bson:"price_per_night" json:"price_per_night"` // Nightly rate
	MaxGuests     int      `bson:"max_guests" json:"max_guests"`           // Maximum guest capacity
	Bedrooms      int      `bson:"bedrooms" json:"bedrooms"`               // Number of bedrooms
	Description   string   `bson:"description" json:"description"`         // Free-text description
	ImageURL      string   `bson:"image_url" json:"image_url"`             // Cover image, may be empty in the store
	Amenities     []string `bson:"amenities" json:"amenities"`             // e.g., ["wifi", "pool"]
}
