package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"askhub/internal/cache"
)

const sessionKeyPrefix = "session:"

// Record is the server-side session state. Redis is authoritative:
// deleting the record logs the user out regardless of how long the cookie
// token would still validate.
type Record struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
}

// StoreInterface defines the interface for session storage operations.
type StoreInterface interface {
	Save(ctx context.Context, sessionID string, rec Record, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*Record, error)
	Delete(ctx context.Context, sessionID string) error
}

// Store keeps session records in Redis.
type Store struct {
	cache *cache.Client
}

// Ensure Store implements StoreInterface
var _ StoreInterface = (*Store)(nil)

// NewStore creates a Redis-backed session store.
func NewStore(cache *cache.Client) *Store {
	return &Store{cache: cache}
}

// Save stores a session record with TTL.
func (s *Store) Save(ctx context.Context, sessionID string, rec Record, ttl time.Duration) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+sessionID, payload, ttl)
}

// Get retrieves a session record. A missing record is an error: the caller
// treats it as "not logged in", never as a default session.
func (s *Store) Get(ctx context.Context, sessionID string) (*Record, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil || data == nil {
		return nil, fmt.Errorf("session not found")
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session record: %w", err)
	}
	return &rec, nil
}

// Delete removes a session record.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
