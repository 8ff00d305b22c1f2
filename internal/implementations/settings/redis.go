package settings

import (
	"context"
	"errors"
	c "waterreminder/internal/core/domain/common"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/reminder"

	"github.com/go-redis/redis/v9"
)

const DefaultRedisKey = "waterreminder:settings:interval"

// Redis keeps the interval under a single key, so every machine of the same
// user pointing at the same server shares it.
type Redis struct {
	redisClient *redis.Client
	key         string
}

func NewRedis(redisClient *redis.Client, key string) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if key == "" {
		key = DefaultRedisKey
	}
	return &Redis{redisClient: redisClient, key: key}
}

func (r *Redis) Load(ctx context.Context) (c.Optional[reminder.Interval], error) {
	data, err := r.redisClient.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return c.None[reminder.Interval](), nil
	}
	if err != nil {
		return c.None[reminder.Interval](), err
	}
	interval, err := decodeInterval(data)
	if err != nil {
		return c.None[reminder.Interval](), err
	}
	return c.Some(interval), nil
}

func (r *Redis) Save(ctx context.Context, interval reminder.Interval) error {
	data, err := encodeInterval(interval)
	if err != nil {
		return err
	}
	return r.redisClient.Set(ctx, r.key, data, 0).Err()
}
