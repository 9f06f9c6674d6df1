package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/forumapi/go-clean-forum/domain"
)

const (
	likeCountKeyPrefix = "likes:thread:"
	likeCountTTL       = 30 * time.Second
)

type likeCache struct {
	client *redis.Client
}

var _ domain.LikeCache = (*likeCache)(nil)

func NewLikeCache(client *redis.Client) *likeCache {
	return &likeCache{
		client: client,
	}
}

func likeCountKey(threadID string) string {
	return likeCountKeyPrefix + threadID
}

func (c *likeCache) GetLikeCounts(ctx context.Context, threadID string) ([]domain.LikeCount, error) {
	val, err := c.client.Get(ctx, likeCountKey(threadID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var counts []domain.LikeCount
	if err := json.Unmarshal([]byte(val), &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *likeCache) SetLikeCounts(ctx context.Context, threadID string, counts []domain.LikeCount) error {
	// empty slices are cached too, zero-like threads are the common case
	if counts == nil {
		counts = []domain.LikeCount{}
	}
	data, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, likeCountKey(threadID), data, likeCountTTL).Err()
}

func (c *likeCache) InvalidateThread(ctx context.Context, threadID string) error {
	return c.client.Del(ctx, likeCountKey(threadID)).Err()
}
