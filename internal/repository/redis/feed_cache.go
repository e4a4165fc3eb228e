package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	feedKeyPrefix     = "feed"
	rsvpCntKeyPrefix  = "rsvp:cnt:post"
	DefaultFeedTTL    = 300 * time.Second
	DefaultRSVPCntTTL = 300 * time.Second
)

// FeedCache stores rendered feed view-models as JSON. Keys carry both the
// route and the user id so one user's follow/RSVP state can never be served
// to another. Entries may be up to TTL stale.
type FeedCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	if ttl <= 0 {
		ttl = DefaultFeedTTL
	}
	return &FeedCache{Client: client, TTL: ttl}
}

func (c *FeedCache) key(route string, userID uint64) string {
	return fmt.Sprintf("%s:%s:%d", feedKeyPrefix, route, userID)
}

// Get unmarshals the cached entry into v. The bool reports a cache hit.
func (c *FeedCache) Get(ctx context.Context, route string, userID uint64, v any) (bool, error) {
	raw, err := c.Client.Get(ctx, c.key(route, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

func (c *FeedCache) Set(ctx context.Context, route string, userID uint64, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.key(route, userID), raw, c.TTL).Err()
}

// RSVPCountCache caches the per-post RSVP count. The key is global (not
// user-scoped), so every RSVP toggle must delete it.
type RSVPCountCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRSVPCountCache(client *redis.Client, ttl time.Duration) *RSVPCountCache {
	if ttl <= 0 {
		ttl = DefaultRSVPCntTTL
	}
	return &RSVPCountCache{Client: client, TTL: ttl}
}

func (c *RSVPCountCache) key(postID uint64) string {
	return fmt.Sprintf("%s:%d", rsvpCntKeyPrefix, postID)
}

func (c *RSVPCountCache) Get(ctx context.Context, postID uint64) (int64, bool, error) {
	val, err := c.Client.Get(ctx, c.key(postID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return val, true, nil
}

func (c *RSVPCountCache) Set(ctx context.Context, postID uint64, count int64) error {
	return c.Client.Set(ctx, c.key(postID), count, c.TTL).Err()
}

func (c *RSVPCountCache) Delete(ctx context.Context, postID uint64) error {
	err := c.Client.Del(ctx, c.key(postID)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
