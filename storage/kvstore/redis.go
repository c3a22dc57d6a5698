package kvstore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/officialmikal/cbc-edutrac-automation/core"
)

type redisStore struct {
	client *redis.Client
}

var _ Store = (*redisStore)(nil)

// OpenRedis connects to the configured redis instance and pings it.
func OpenRedis(ctx context.Context, conf core.StorageConfig) (*redisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.RedisAddr,
		Password: conf.RedisPassword,
		DB:       conf.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "pinging redis")
	}
	return &redisStore{client: client}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "getting %q", key)
	}
	return val, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	// no expiry: collections live until overwritten
	return errors.Wrapf(s.client.Set(ctx, key, value, 0).Err(), "setting %q", key)
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
