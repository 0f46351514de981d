package assistant

import (
	"context"
	"testing"
	"time"

	"staymate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availabilityDeps(t *testing.T) (*toolDeps, *fakeBookingRepo) {
	t.Helper()
	deps, listings, _, bookings, _ := newTestDeps(t)
	listings.listings = []models.Listing{{
		ID:            "l1",
		Title:         "Downtown Loft",
		City:          "Paris",
		PricePerNight: 100,
		MaxGuests:     4,
	}}
	return deps, bookings
}

func TestCheckAvailability_RoundTrip(t *testing.T) {
	deps, bookings := availabilityDeps(t)
	ctx := context.Background()

	outcome, err := deps.checkAvailability(ctx, "s1", map[string]any{
		"name":      "Downtown Loft",
		"check_in":  "2025-07-10",
		"check_out": "2025-07-15",
	})
	require.NoError(t, err)
	assert.Equal(t, true, outcome.Observation["is_available"])
	assert.EqualValues(t, 0, outcome.Observation["conflicting_bookings_found"])
	// 5 nights at 100 per night.
	assert.EqualValues(t, 500, outcome.Observation["total_price"])
	assert.Equal(t, "Downtown Loft", outcome.Observation["listing_title"])

	// Selection is persisted into the session's extracted info.
	record, err := deps.store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, record.Info)
	assert.Equal(t, "l1", *record.Info.SelectedListingID)
	assert.Equal(t, "Downtown Loft", *record.Info.SelectedListingTitle)
	assert.EqualValues(t, 500, *record.Info.TotalPrice)
	assert.Equal(t, "2025-07-10", *record.Info.CheckIn)
	assert.Equal(t, "2025-07-15", *record.Info.CheckOut)

	// An overlapping confirmed booking flips the answer.
	bookings.bookings = append(bookings.bookings, models.Booking{
		ID:        "b1",
		ListingID: "l1",
		CheckIn:   "2025-07-12",
		CheckOut:  "2025-07-20",
		Status:    models.BookingStatusConfirmed,
		CreatedAt: time.Now(),
	})
	outcome, err = deps.checkAvailability(ctx, "s1", map[string]any{
		"name":      "Downtown Loft",
		"check_in":  "2025-07-10",
		"check_out": "2025-07-15",
	})
	require.NoError(t, err)
	assert.Equal(t, false, outcome.Observation["is_available"])
	assert.EqualValues(t, 1, outcome.Observation["conflicting_bookings_found"])
}

func TestCheckAvailability_DateOrderIsAnErrorPayload(t *testing.T) {
	deps, _ := availabilityDeps(t)
	ctx := context.Background()

	outcome, err := deps.checkAvailability(ctx, "s1", map[string]any{
		"name":      "Downtown Loft",
		"check_in":  "2025-07-15",
		"check_out": "2025-07-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Check-out date must be after check-in date.", outcome.Observation["error"])
}

func TestCheckAvailability_BadFormatIsAnErrorPayload(t *testing.T) {
	deps, _ := availabilityDeps(t)
	ctx := context.Background()

	outcome, err := deps.checkAvailability(ctx, "s1", map[string]any{
		"name":      "Downtown Loft",
		"check_in":  "July 10th",
		"check_out": "2025-07-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Invalid date format provided. Please use YYYY-MM-DD.", outcome.Observation["error"])
}

func TestCheckAvailability_UnknownListing(t *testing.T) {
	deps, _ := availabilityDeps(t)
	ctx := context.Background()

	outcome, err := deps.checkAvailability(ctx, "s1", map[string]any{
		"name":      "Imaginary Palace",
		"check_in":  "2025-07-10",
		"check_out": "2025-07-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Listing not found.", outcome.Observation["error"])
}
