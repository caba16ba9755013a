package content

import (
	"context"
	"encoding/json"
	"time"

	"tripnest/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	roomsFeedKey = "feed:trip_rooms"
	feedTTL      = 5 * time.Minute
)

// FeedCache keeps the open trip room listing in Redis for a short TTL so
// the feed does not hit Mongo on every scroll.
type FeedCache struct {
	client *redis.Client
}

func NewFeedCache(client *redis.Client) *FeedCache {
	return &FeedCache{client: client}
}

func (c *FeedCache) GetRooms() ([]models.TripRoom, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := c.client.Get(ctx, roomsFeedKey).Result()
	if err != nil {
		return nil, false
	}
	var rooms []models.TripRoom
	if err := json.Unmarshal([]byte(data), &rooms); err != nil {
		zap.L().Warn("failed to decode cached room feed", zap.Error(err))
		return nil, false
	}
	return rooms, true
}

func (c *FeedCache) SetRooms(rooms []models.TripRoom) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, roomsFeedKey, data, feedTTL).Err(); err != nil {
		zap.L().Warn("failed to cache room feed", zap.Error(err))
	}
}

func (c *FeedCache) Invalidate() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = c.client.Del(ctx, roomsFeedKey).Err()
}
