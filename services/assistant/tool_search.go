// File: services/assistant/tool_search.go
package assistant

import (
	"context"

	listingRepo "staymate/database/repository/listing"
	"staymate/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

const (
	defaultSearchLimit = 3
	maxSearchLimit     = 10
	// maxModelSummaries bounds how many listings are described back to the
	// model, regardless of how many go to the display layer.
	maxModelSummaries = 3
	// displayDescriptionLimit truncates long descriptions for display.
	displayDescriptionLimit = 160

	placeholderImageURL = "https://placehold.co/600x400?text=No+Image"
)

func searchListingsTool(d *toolDeps) *registeredTool {
	return &registeredTool{
		kind:    toolSearchListings,
		apology: "Sorry, I ran into a problem searching for listings. Could you try again in a moment?",
		run:     d.searchListings,
		declaration: &genai.FunctionDeclaration{
			Name:        "search_listings",
			Description: "Searches for available accommodation listings based on criteria like destination city, country, number of guests, price range, bedrooms and amenities. Returns a list of matching properties.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {
						Type:        genai.TypeString,
						Description: "Free-text description of what the user is looking for (e.g., 'loft with a view').",
					},
					"destination": {
						Type:        genai.TypeString,
						Description: "The city or area the user wants to search listings in (e.g., 'London', 'Kyoto').",
					},
					"country": {
						Type:        genai.TypeString,
						Description: "Optional. Country to restrict the search to.",
					},
					"guests": {
						Type:        genai.TypeInteger,
						Description: "The minimum number of guests the accommodation should support.",
					},
					"min_price": {
						Type:        genai.TypeNumber,
						Description: "Optional. Minimum price per night.",
					},
					"max_price": {
						Type:        genai.TypeNumber,
						Description: "Optional. Maximum price per night.",
					},
					"min_bedrooms": {
						Type:        genai.TypeInteger,
						Description: "Optional. Minimum number of bedrooms.",
					},
					"amenities": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeString},
						Description: "Optional. Amenities the listing must have (e.g., ['wifi', 'pool']).",
					},
					"check_in": {
						Type:        genai.TypeString,
						Description: "Optional. Desired check-in date (YYYY-MM-DD), for context.",
					},
					"check_out": {
						Type:        genai.TypeString,
						Description: "Optional. Desired check-out date (YYYY-MM-DD), for context.",
					},
					"limit": {
						Type:        genai.TypeInteger,
						Description: "Optional. Maximum number of listings to return (default is 3).",
					},
				},
			},
		},
	}
}

// searchListings queries the listing store with the exact filters, relaxing
// to a single fallback query (destination-only, or unfiltered when no
// destination was given) when the exact match comes back empty. An empty
// result is a valid, non-error outcome.
func (d *toolDeps) searchListings(ctx context.Context, sessionID string, args map[string]any) (*toolOutcome, error) {
	logger := utils.GetLogger()

	query := listingRepo.ListingQuery{Limit: defaultSearchLimit}
	if v, ok := argString(args, "query"); ok {
		query.Text = v
	}
	if v, ok := argString(args, "destination"); ok {
		query.City = v
	}
	if v, ok := argString(args, "country"); ok {
		query.Country = v
	}
	if v, ok := argInt(args, "guests"); ok && v > 0 {
		query.Guests = v
	}
	if v, ok := argFloat(args, "min_price"); ok && v > 0 {
		query.MinPrice = v
	}
	if v, ok := argFloat(args, "max_price"); ok && v > 0 {
		query.MaxPrice = v
	}
	if v, ok := argInt(args, "min_bedrooms"); ok && v > 0 {
		query.MinBedrooms = v
	}
	query.Amenities = argStringSlice(args, "amenities")
	if v, ok := argInt(args, "limit"); ok && v > 0 {
		query.Limit = v
		if query.Limit > maxSearchLimit {
			query.Limit = maxSearchLimit
		}
	}

	listings, err := d.listings.Search(query)
	if err != nil {
		return nil, err
	}

	// One relaxed round when exact filters matched nothing. Never more.
	if len(listings) == 0 && hasSearchFilters(query) {
		fallback := listingRepo.ListingQuery{City: query.City, Limit: query.Limit}
		logger.Debug("Exact search empty, running fallback query",
			zap.String("sessionID", sessionID), zap.String("city", fallback.City))
		listings, err = d.listings.Search(fallback)
		if err != nil {
			return nil, err
		}
	}

	for i := range listings {
		if listings[i].ImageURL == "" {
			listings[i].ImageURL = placeholderImageURL
		}
		listings[i].Description = truncate(listings[i].Description, displayDescriptionLimit)
	}

	// Remember the most recently surfaced listing for display continuity.
	if len(listings) > 0 {
		if record, err := d.store.Get(ctx, sessionID); err == nil {
			snapshot := listings[0]
			record.Listing = &snapshot
			if err := d.store.Put(ctx, sessionID, record); err != nil {
				logger.Warn("Failed to persist surfaced listing",
					zap.String("sessionID", sessionID), zap.Error(err))
			}
		}
	}

	summaries := make([]map[string]any, 0, maxModelSummaries)
	for i, l := range listings {
		if i >= maxModelSummaries {
			break
		}
		summaries = append(summaries, map[string]any{
			"id":              l.ID,
			"title":           l.Title,
			"city":            l.City,
			"country":         l.Country,
			"price_per_night": l.PricePerNight,
			"max_guests":      l.MaxGuests,
			"bedrooms":        l.Bedrooms,
			"description":     l.Description,
		})
	}

	return &toolOutcome{
		Observation: map[string]any{
			"count":    len(listings),
			"listings": summaries,
		},
		Listings: listings,
	}, nil
}

// hasSearchFilters reports whether the query constrains the result at all.
// An unfiltered query gets no fallback round since it already was one.
func hasSearchFilters(q listingRepo.ListingQuery) bool {
	return q.Text != "" || q.City != "" || q.Country != "" || q.Guests > 0 ||
		q.MinPrice > 0 || q.MaxPrice > 0 || q.MinBedrooms > 0 || len(q.Amenities) > 0
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
