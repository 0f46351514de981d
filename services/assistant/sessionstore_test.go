package assistant

import (
	"context"
	"testing"
	"time"

	"staymate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_GetMissReturnsDefault(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	record, err := store.Get(ctx, "fresh-session")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Nil(t, record.Info)
	assert.Empty(t, record.History)
	assert.Empty(t, record.UserID)
}

func TestSessionStore_PutGetRoundTrip(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	record := models.NewConversationRecord()
	record.Info = &models.ExtractedInfo{
		Destination: strPtr("Paris"),
		Guests:      intPtr(2),
	}
	record.History = []models.Message{
		{Role: "user", Content: "Hi"},
		{Role: "assistant", Content: "Hello! Where would you like to go?"},
	}
	record.UserID = "user-1"
	record.Listing = &models.Listing{ID: "l1", Title: "Downtown Loft"}

	require.NoError(t, store.Put(ctx, "s1", record))

	loaded, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, loaded.Info)
	assert.Equal(t, "Paris", *loaded.Info.Destination)
	assert.Equal(t, 2, *loaded.Info.Guests)
	assert.Len(t, loaded.History, 2)
	assert.Equal(t, "user-1", loaded.UserID)
	require.NotNil(t, loaded.Listing)
	assert.Equal(t, "Downtown Loft", loaded.Listing.Title)

	// Every save refreshes the expiry.
	assert.Equal(t, 2*time.Hour, mr.TTL("session:s1"))
}

func TestSessionStore_GetCorruptBlobFails(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("session:bad", "not json"))

	_, err := store.Get(ctx, "bad")
	assert.Error(t, err)

	// The lenient path falls back to a fresh record instead.
	record := store.Load(ctx, "bad")
	require.NotNil(t, record)
	assert.Empty(t, record.History)
}

func TestSessionStore_LoadFallsBackOnStoreError(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	mr.SetError("backing store down")

	record := store.Load(ctx, "s1")
	require.NotNil(t, record)
	assert.Empty(t, record.History)
}

func TestSessionStore_SaveSwallowsStoreError(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	mr.SetError("backing store down")

	// Must not panic or propagate.
	store.Save(ctx, "s1", models.NewConversationRecord())
}
