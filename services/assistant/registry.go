// File: services/assistant/registry.go
package assistant

import (
	"context"
	"encoding/json"

	bookingRepo "staymate/database/repository/booking"
	listingRepo "staymate/database/repository/listing"
	userRepo "staymate/database/repository/user"
	"staymate/models"

	genai "github.com/google/generative-ai-go/genai"
)

// toolKind enumerates the closed set of operations the model may request.
type toolKind int

const (
	toolUpdateBookingParameters toolKind = iota
	toolSearchListings
	toolCheckAvailability
	toolGetOrCreateUser
	toolCreateBooking
)

// toolOutcome carries a tool's results back to the orchestration loop.
type toolOutcome struct {
	// Observation is fed back to the model as the function response on the
	// second pass. Domain validation failures land here as structured error
	// payloads for the model to relay conversationally.
	Observation map[string]any
	// Info is the updated booking-parameter snapshot when the tool changed it.
	Info *models.ExtractedInfo
	// Listings is the display-facing search result sequence.
	Listings []models.Listing
	// Booking is set when a booking was created.
	Booking *models.BookingConfirmation
}

// toolHandler executes one tool call. The session id is injected by the
// loop, never supplied by the model. A returned error means the tool could
// not complete (backing-store failure); the loop translates it into the
// tool's apology and reverts any pending state.
type toolHandler func(ctx context.Context, sessionID string, args map[string]any) (*toolOutcome, error)

// registeredTool binds a tool's declaration, handler and failure reply.
type registeredTool struct {
	kind        toolKind
	declaration *genai.FunctionDeclaration
	run         toolHandler
	apology     string
}

// toolDeps bundles the collaborators tool handlers execute against.
type toolDeps struct {
	store    SessionStore
	listings listingRepo.ListingRepository
	users    userRepo.UserRepository
	bookings bookingRepo.BookingRepository
}

// ToolRegistry is the static mapping from tool name to its declaration and
// handler. The set is fixed at construction.
type ToolRegistry struct {
	tools map[string]*registeredTool
	order []string
}

func NewToolRegistry(
	store SessionStore,
	listings listingRepo.ListingRepository,
	users userRepo.UserRepository,
	bookings bookingRepo.BookingRepository,
) *ToolRegistry {
	deps := &toolDeps{store: store, listings: listings, users: users, bookings: bookings}

	r := &ToolRegistry{tools: make(map[string]*registeredTool)}
	r.register(updateBookingParametersTool(deps))
	r.register(searchListingsTool(deps))
	r.register(checkAvailabilityTool(deps))
	r.register(getOrCreateUserTool(deps))
	r.register(createBookingTool(deps))
	return r
}

func (r *ToolRegistry) register(t *registeredTool) {
	r.tools[t.declaration.Name] = t
	r.order = append(r.order, t.declaration.Name)
}

// lookup resolves a model-requested tool name.
func (r *ToolRegistry) lookup(name string) (*registeredTool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Declarations returns the full tool schema set for the first model pass.
func (r *ToolRegistry) Declarations() []*genai.Tool {
	decls := make([]*genai.FunctionDeclaration, 0, len(r.order))
	for _, name := range r.order {
		decls = append(decls, r.tools[name].declaration)
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

// --- Argument helpers ---
// Gemini function-call arguments arrive as a loosely-typed map; numbers are
// float64 regardless of the declared schema type.

func argString(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func argInt(args map[string]any, key string) (int, bool) {
	v, ok := args[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func argFloat(args map[string]any, key string) (float64, bool) {
	v, ok := args[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func argStringSlice(args map[string]any, key string) []string {
	v, ok := args[key]
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// infoToMap renders the extracted info as the mapping fed back to the model.
func infoToMap(info *models.ExtractedInfo) map[string]any {
	out := map[string]any{}
	if info == nil {
		return out
	}
	b, err := json.Marshal(info)
	if err != nil {
		return out
	}
	_ = json.Unmarshal(b, &out)
	return out
}
