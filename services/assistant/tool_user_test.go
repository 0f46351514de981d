package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateUser_CreateThenFind(t *testing.T) {
	deps, _, _, _, _ := newTestDeps(t)
	ctx := context.Background()

	args := map[string]any{
		"email":     "jane.doe@example.com",
		"full_name": "Jane Doe",
	}

	first, err := deps.getOrCreateUser(ctx, "s1", args)
	require.NoError(t, err)
	assert.Equal(t, "created", first.Observation["status"])
	userID, ok := first.Observation["user_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, userID)

	// Same email resolves to the same user on the second call.
	second, err := deps.getOrCreateUser(ctx, "s1", args)
	require.NoError(t, err)
	assert.Equal(t, "found", second.Observation["status"])
	assert.Equal(t, userID, second.Observation["user_id"])

	// The resolved identity is persisted on the record.
	record, err := deps.store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, userID, record.UserID)
}

func TestGetOrCreateUser_EmailMatchIsCaseSensitive(t *testing.T) {
	deps, _, _, _, _ := newTestDeps(t)
	ctx := context.Background()

	first, err := deps.getOrCreateUser(ctx, "s1", map[string]any{
		"email":     "jane.doe@example.com",
		"full_name": "Jane Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "created", first.Observation["status"])

	second, err := deps.getOrCreateUser(ctx, "s1", map[string]any{
		"email":     "Jane.Doe@example.com",
		"full_name": "Jane Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "created", second.Observation["status"])
	assert.NotEqual(t, first.Observation["user_id"], second.Observation["user_id"])
}

func TestGetOrCreateUser_InvalidEmail(t *testing.T) {
	deps, _, _, _, _ := newTestDeps(t)
	ctx := context.Background()

	outcome, err := deps.getOrCreateUser(ctx, "s1", map[string]any{
		"email":     "not-an-email",
		"full_name": "Jane Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "error", outcome.Observation["status"])
	assert.Equal(t, "Invalid email address provided.", outcome.Observation["error_message"])
}

func TestGetOrCreateUser_RepoErrorPropagates(t *testing.T) {
	deps, _, users, _, _ := newTestDeps(t)
	ctx := context.Background()

	users.err = assert.AnError

	_, err := deps.getOrCreateUser(ctx, "s1", map[string]any{
		"email":     "jane.doe@example.com",
		"full_name": "Jane Doe",
	})
	assert.Error(t, err)
}
