package abicache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix = "bogutils:abi:"
	entryTTL  = 24 * time.Hour
)

// Redis caches contract ABIs in redis so restarts don't re-hit the explorer
// API. Entries expire so a redeployed contract eventually gets re-fetched.
type Redis struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedis(address, password string, db int, log *zap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", address, err)
	}

	return &Redis{client: client, log: log}, nil
}

func (r *Redis) Get(ctx context.Context, address string) (string, bool) {
	abiJSON, err := r.client.Get(ctx, keyPrefix+address).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		r.log.Warn("abi cache read failed", zap.String("address", address), zap.Error(err))
		return "", false
	}
	return abiJSON, true
}

func (r *Redis) Set(ctx context.Context, address, abiJSON string) {
	if err := r.client.Set(ctx, keyPrefix+address, abiJSON, entryTTL).Err(); err != nil {
		r.log.Warn("abi cache write failed", zap.String("address", address), zap.Error(err))
	}
}

func (r *Redis) Close() error {
	return r.client.Close()
}
