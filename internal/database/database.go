package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis holds the cart snapshots (one JSON blob per session) and backs the
// pub/sub channels used for live cart sync and the form rate limiter.
var Redis *redis.Client

// ConnectRedis opens the Redis connection. The cart snapshot store is the only
// durable backend this service has, so failing to reach it is fatal.
func ConnectRedis() *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Redis connection error:", err)
	}
	log.Println("✅ Connected to Redis")

	return Redis
}
