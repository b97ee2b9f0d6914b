package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vitalsync/portal-api/internal/ai"
)

const (
	contextDepth = 10
	contextTTL   = 24 * time.Hour
)

// ContextCache keeps the most recent exchanges per user so the provider sees
// some conversation continuity across requests.
type ContextCache interface {
	Recent(ctx context.Context, userID uuid.UUID) ([]ai.Exchange, error)
	Append(ctx context.Context, userID uuid.UUID, exchange ai.Exchange) error
}

type redisContextCache struct {
	client *redis.Client
}

func NewRedisContextCache(client *redis.Client) ContextCache {
	return &redisContextCache{client: client}
}

func contextKey(userID uuid.UUID) string {
	return fmt.Sprintf("chat:ctx:%s", userID)
}

// Recent returns up to contextDepth exchanges, oldest first.
func (c *redisContextCache) Recent(ctx context.Context, userID uuid.UUID) ([]ai.Exchange, error) {
	raw, err := c.client.LRange(ctx, contextKey(userID), 0, contextDepth-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat context: %w", err)
	}

	// Stored newest-first via LPUSH; replay oldest-first.
	exchanges := make([]ai.Exchange, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var ex ai.Exchange
		if err := json.Unmarshal([]byte(raw[i]), &ex); err != nil {
			continue
		}
		exchanges = append(exchanges, ex)
	}
	return exchanges, nil
}

func (c *redisContextCache) Append(ctx context.Context, userID uuid.UUID, exchange ai.Exchange) error {
	payload, err := json.Marshal(exchange)
	if err != nil {
		return fmt.Errorf("failed to marshal exchange: %w", err)
	}

	key := contextKey(userID)
	pipe := c.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, contextDepth-1)
	pipe.Expire(ctx, key, contextTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append chat context: %w", err)
	}
	return nil
}
