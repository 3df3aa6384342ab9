package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const suggestionKeyPrefix = "specialty:suggestion:"

// SuggestionCache holds symptom-to-specialty suggestions in Redis with an
// explicit TTL and invalidation entry point. Each suggester owns its own
// cache instance; nothing hangs off package state.
type SuggestionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSuggestionCache(client *redis.Client, ttl time.Duration) *SuggestionCache {
	return &SuggestionCache{client: client, ttl: ttl}
}

func suggestionKey(symptoms string) string {
	return suggestionKeyPrefix + strings.ToLower(strings.TrimSpace(symptoms))
}

func (c *SuggestionCache) Get(ctx context.Context, symptoms string) (string, bool) {
	val, err := c.client.Get(ctx, suggestionKey(symptoms)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *SuggestionCache) Set(ctx context.Context, symptoms, specialty string) error {
	return c.client.Set(ctx, suggestionKey(symptoms), specialty, c.ttl).Err()
}

// Invalidate drops a single cached suggestion.
func (c *SuggestionCache) Invalidate(ctx context.Context, symptoms string) error {
	return c.client.Del(ctx, suggestionKey(symptoms)).Err()
}

// InvalidateAll drops every cached suggestion.
func (c *SuggestionCache) InvalidateAll(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, suggestionKeyPrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("failed to scan suggestion keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
