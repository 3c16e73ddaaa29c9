package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"interview_quiz/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

const revokedTokenKeyPrefix = "revoked_token:"

func ConnectRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	ctx := context.Background()
	_, err := RDB.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Successfully connected to Redis!")
}

func CloseRedis() {
	if RDB != nil {
		RDB.Close()
		fmt.Println("Redis connection closed.")
	}
}

// RevokeToken records a token ID as revoked until the token would have
// expired anyway. A nil client means revocation is disabled; sessions then
// live until token expiry.
func RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if RDB == nil || ttl <= 0 {
		return nil
	}
	if err := RDB.Set(ctx, revokedTokenKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("cache.RevokeToken: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether a token ID is on the revocation list.
func IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	if RDB == nil {
		return false, nil
	}
	n, err := RDB.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("cache.IsTokenRevoked: %w", err)
	}
	return n > 0, nil
}
