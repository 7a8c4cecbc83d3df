package utils

import (
	"context"
	"fmt"
	"time"

	"festeasy/config"

	"github.com/go-redis/redis/v8"
)

// PlanCacheClient backs the Redis pending-plan store when PLAN_STORE=redis.
var PlanCacheClient *redis.Client

// InitPlanCache connects to the Redis DB reserved for pending plans.
func InitPlanCache(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisPlanDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (plans): %w", err)
	}
	PlanCacheClient = client
	return client, nil
}
