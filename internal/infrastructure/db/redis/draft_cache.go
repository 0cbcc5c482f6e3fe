package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adminpanel/rbac-directory/internal/core/domain"
)

const (
	roleDraftKey    = "draft:role"
	defaultDraftTTL = time.Hour
)

// DraftCache persists the in-progress role draft so an interrupted edit can
// be recovered. Entries expire after the configured TTL; everything here is
// best effort and never gates a mutation.
type DraftCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftCache creates a DraftCache wrapping the given Redis client.
func NewDraftCache(client *redis.Client, ttl time.Duration) *DraftCache {
	if ttl <= 0 {
		ttl = defaultDraftTTL
	}
	return &DraftCache{client: client, ttl: ttl}
}

// SaveRoleDraft overwrites the cached draft for the edit slot.
func (c *DraftCache) SaveRoleDraft(ctx context.Context, draft domain.RoleDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("draft cache: marshal: %w", err)
	}
	if err := c.client.Set(ctx, roleDraftKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("draft cache: save: %w", err)
	}
	return nil
}

// LoadRoleDraft returns the cached draft and whether one was present.
func (c *DraftCache) LoadRoleDraft(ctx context.Context) (domain.RoleDraft, bool, error) {
	payload, err := c.client.Get(ctx, roleDraftKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.RoleDraft{}, false, nil
	}
	if err != nil {
		return domain.RoleDraft{}, false, fmt.Errorf("draft cache: load: %w", err)
	}

	var draft domain.RoleDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return domain.RoleDraft{}, false, fmt.Errorf("draft cache: decode: %w", err)
	}
	return draft, true, nil
}

// ClearRoleDraft drops the cached draft. Clearing a missing entry is a no-op.
func (c *DraftCache) ClearRoleDraft(ctx context.Context) error {
	if err := c.client.Del(ctx, roleDraftKey).Err(); err != nil {
		return fmt.Errorf("draft cache: clear: %w", err)
	}
	return nil
}
