package assistant

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	listingRepo "staymate/database/repository/listing"
	"staymate/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	genai "github.com/google/generative-ai-go/genai"
)

// newTestStore spins up a miniredis-backed session store.
func newTestStore(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSessionStore(client, 2*time.Hour), mr
}

// fakeGenerator replays canned model responses and records what it was sent.
type fakeGenerator struct {
	responses []*genai.GenerateContentResponse
	errs      []error

	calls     int
	toolFlags []bool
	turnsSeen [][]*genai.Content
}

func (f *fakeGenerator) Generate(_ context.Context, turns []*genai.Content, withTools bool) (*genai.GenerateContentResponse, error) {
	i := f.calls
	f.calls++
	f.toolFlags = append(f.toolFlags, withTools)
	f.turnsSeen = append(f.turnsSeen, turns)

	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return nil, fmt.Errorf("unexpected model call %d", i)
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role:  roleModel,
				Parts: []genai.Part{genai.Text(text)},
			},
		}},
	}
}

func callResponse(name string, args map[string]any) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role:  roleModel,
				Parts: []genai.Part{genai.FunctionCall{Name: name, Args: args}},
			},
		}},
	}
}

// fakeListingRepo filters an in-memory listing set, recording every query.
type fakeListingRepo struct {
	listings []models.Listing
	queries  []listingRepo.ListingQuery
	err      error
}

func (f *fakeListingRepo) Search(q listingRepo.ListingQuery) ([]models.Listing, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Listing
	for _, l := range f.listings {
		if q.City != "" && !strings.Contains(strings.ToLower(l.City), strings.ToLower(q.City)) {
			continue
		}
		if q.Country != "" && !strings.Contains(strings.ToLower(l.Country), strings.ToLower(q.Country)) {
			continue
		}
		if q.Guests > 0 && l.MaxGuests < q.Guests {
			continue
		}
		if q.MinPrice > 0 && l.PricePerNight < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && l.PricePerNight > q.MaxPrice {
			continue
		}
		if q.MinBedrooms > 0 && l.Bedrooms < q.MinBedrooms {
			continue
		}
		out = append(out, l)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeListingRepo) GetByTitle(title string) (*models.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.listings {
		if l.Title == title {
			cp := l
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeListingRepo) GetByID(id string) (*models.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.listings {
		if l.ID == id {
			cp := l
			return &cp, nil
		}
	}
	return nil, nil
}

// fakeUserRepo keeps users in memory, keyed by exact email.
type fakeUserRepo struct {
	users []models.User
	err   error
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if f.err != nil {
		return f.err
	}
	f.users = append(f.users, *user)
	return nil
}

// fakeBookingRepo keeps bookings in memory with real overlap semantics.
type fakeBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookingRepo) CountOverlapping(listingID, checkIn, checkOut string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, b := range f.bookings {
		if b.ListingID != listingID || b.Status != models.BookingStatusConfirmed {
			continue
		}
		if b.CheckIn < checkOut && b.CheckOut > checkIn {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) Create(booking *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

// newTestDeps builds tool deps over miniredis and empty fakes.
func newTestDeps(t *testing.T) (*toolDeps, *fakeListingRepo, *fakeUserRepo, *fakeBookingRepo, *miniredis.Miniredis) {
	t.Helper()
	store, mr := newTestStore(t)
	listings := &fakeListingRepo{}
	users := &fakeUserRepo{}
	bookings := &fakeBookingRepo{}
	deps := &toolDeps{store: store, listings: listings, users: users, bookings: bookings}
	return deps, listings, users, bookings, mr
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }
