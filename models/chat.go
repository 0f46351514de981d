package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"` // opaque caller-generated conversation key
	Message   string `json:"message" binding:"required"`    // user's message text
}

// Message represents a single turn in the chat history.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ExtractedInfo stores the booking parameters accumulated across a conversation.
// All fields are optional; a nil field means "not yet known".
type ExtractedInfo struct {
	Destination          *string  `json:"destination,omitempty"`
	CheckIn              *string  `json:"check_in,omitempty"`
	CheckOut             *string  `json:"check_out,omitempty"`
	Guests               *int     `json:"guests,omitempty"`
	SelectedListingID    *string  `json:"selected_listing_id,omitempty"`
	SelectedListingTitle *string  `json:"selected_listing_title,omitempty"`
	TotalPrice           *float64 `json:"total_price,omitempty"`
}

// Clone returns a copy of the info so callers can roll back to a snapshot.
func (e *ExtractedInfo) Clone() *ExtractedInfo {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

// ConversationRecord is the per-session state blob persisted in Redis.
type ConversationRecord struct {
	Info    *ExtractedInfo `json:"info"`
	History []Message      `json:"history"`
	UserID  string         `json:"user_id,omitempty"` // set once get_or_create_user succeeds
	Listing *Listing       `json:"listing,omitempty"` // most recently surfaced listing
}

// NewConversationRecord returns the default empty state for a fresh session.
func NewConversationRecord() *ConversationRecord {
	return &ConversationRecord{History: []Message{}}
}

// EnsureInfo returns the record's info, allocating it if not yet present.
func (r *ConversationRecord) EnsureInfo() *ExtractedInfo {
	if r.Info == nil {
		r.Info = &ExtractedInfo{}
	}
	return r.Info
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Response    string               `json:"response"`           // natural-language reply
	UpdatedInfo *ExtractedInfo       `json:"updated_info"`       // latest booking parameters, may be null
	Listings    []Listing            `json:"listings,omitempty"` // search results for display
	Booking     *BookingConfirmation `json:"booking,omitempty"`  // set when a booking was created this turn
}

// BookingConfirmation is the structured block returned after create_booking succeeds.
type BookingConfirmation struct {
	BookingID    string  `json:"booking_id"`
	ListingID    string  `json:"listing_id"`
	ListingTitle string  `json:"listing_title,omitempty"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Guests       int     `json:"guests"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
}
