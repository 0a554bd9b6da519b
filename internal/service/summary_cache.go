package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/event-budget-service/internal/domain"
)

const summaryKeyPrefix = "event-budget:summary:"

// SummaryCache keeps event financial summaries in Redis so repeated
// dashboard reads skip the aggregation query. Every transaction or event
// write invalidates the entry; a nil client degrades to a no-op.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewSummaryCache builds the cache.
func NewSummaryCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached summary for an event, if present.
func (c *SummaryCache) Get(ctx context.Context, eventID string) (*domain.EventFinancials, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, summaryKeyPrefix+eventID).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("summary cache read failed", zap.String("event_id", eventID), zap.Error(err))
		}
		return nil, false
	}
	var summary domain.EventFinancials
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, false
	}
	return &summary, true
}

// Set stores the summary with the configured TTL.
func (c *SummaryCache) Set(ctx context.Context, eventID string, summary *domain.EventFinancials) {
	if c == nil || c.client == nil || summary == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, summaryKeyPrefix+eventID, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("summary cache write failed", zap.String("event_id", eventID), zap.Error(err))
	}
}

// Invalidate drops the cached summary for an event.
func (c *SummaryCache) Invalidate(ctx context.Context, eventID string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, summaryKeyPrefix+eventID).Err(); err != nil {
		c.logger.Warn("summary cache invalidation failed", zap.String("event_id", eventID), zap.Error(err))
	}
}
