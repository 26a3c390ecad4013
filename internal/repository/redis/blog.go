package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
)

const (
	KeyHome           = "blog:home"
	KeyReactionCounts = "blog:%d:reactions"

	homeTTL           = 30 * time.Second
	reactionCountsTTL = 10 * time.Minute
)

type blogCache struct {
	client *redis.Client
}

var _ domain.BlogCache = (*blogCache)(nil)

func NewBlogCache(client *redis.Client) *blogCache {
	return &blogCache{
		client,
	}
}

// GetHome returns the cached first page of the public listing.
// Returns ErrCacheMiss when the key is absent.
func (c *blogCache) GetHome(ctx context.Context) (res []domain.Blog, err error) {
	data, err := c.client.Get(ctx, KeyHome).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	} else if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return
}

func (c *blogCache) SetHome(ctx context.Context, blogs []domain.Blog) error {
	data, err := json.Marshal(blogs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyHome, data, homeTTL).Err()
}

func (c *blogCache) DeleteHome(ctx context.Context) error {
	return c.client.Del(ctx, KeyHome).Err()
}

func (c *blogCache) GetReactionCounts(ctx context.Context, blogID int64) (domain.ReactionCounts, error) {
	key := fmt.Sprintf(KeyReactionCounts, blogID)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ReactionCounts{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.ReactionCounts{}, err
	}

	var counts domain.ReactionCounts
	if err = json.Unmarshal(data, &counts); err != nil {
		return domain.ReactionCounts{}, err
	}
	return counts, nil
}

func (c *blogCache) SetReactionCounts(ctx context.Context, blogID int64, counts domain.ReactionCounts) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(KeyReactionCounts, blogID)
	return c.client.Set(ctx, key, data, reactionCountsTTL).Err()
}

func (c *blogCache) DeleteReactionCounts(ctx context.Context, blogID int64) error {
	key := fmt.Sprintf(KeyReactionCounts, blogID)
	return c.client.Del(ctx, key).Err()
}
