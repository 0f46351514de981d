// File: services/assistant/sessionstore.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"staymate/models"
	"staymate/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

// SessionStore persists conversation records keyed by session identifier.
//
// Get and Put are the strict path used by tool handlers: errors propagate so
// a failed state write surfaces as a tool failure. Load and Save are the
// lenient path used by the orchestration loop: the loop must never be blocked
// by session-store unavailability, so errors are logged and swallowed.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ConversationRecord, error)
	Put(ctx context.Context, sessionID string, record *models.ConversationRecord) error
	Load(ctx context.Context, sessionID string) *models.ConversationRecord
	Save(ctx context.Context, sessionID string, record *models.ConversationRecord)
}

// RedisSessionStore implements SessionStore on a Redis client.
// Every Put refreshes the record's TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

// Get retrieves the record for a session. A missing key yields a fresh
// default record, not an error.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ConversationRecord, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return models.NewConversationRecord(), nil
	}
	if err != nil {
		return nil, err
	}
	var record models.ConversationRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, err
	}
	if record.History == nil {
		record.History = []models.Message{}
	}
	return &record, nil
}

// Put serializes and stores the record, refreshing its expiry.
func (s *RedisSessionStore) Put(ctx context.Context, sessionID string, record *models.ConversationRecord) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, b, s.ttl).Err()
}

// Load returns the session's record, falling back to a fresh default record
// on any backing-store error. A lost history degrades conversation
// continuity but must not break the current turn.
func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) *models.ConversationRecord {
	record, err := s.Get(ctx, sessionID)
	if err != nil {
		utils.GetLogger().Error("Failed to load session state, starting fresh",
			zap.String("sessionID", sessionID), zap.Error(err))
		return models.NewConversationRecord()
	}
	return record
}

// Save persists the record best-effort. Failures are logged, never raised.
func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, record *models.ConversationRecord) {
	if err := s.Put(ctx, sessionID, record); err != nil {
		utils.GetLogger().Error("Failed to save session state",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}
