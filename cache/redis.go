package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// InitRedis connects the shared client. The API keeps working without redis;
// token revocation simply degrades to token expiry.
func InitRedis(addr string) {
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		Client = nil
	} else {
		log.Println("Redis connected successfully")
	}
}

const denylistPrefix = "auth:denylist:"

// DenyToken records a revoked token id until its natural expiry.
func DenyToken(ctx context.Context, jti string, ttl time.Duration) error {
	if Client == nil {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return Client.Set(ctx, denylistPrefix+jti, "1", ttl).Err()
}

// TokenDenied reports whether a token id has been revoked.
func TokenDenied(ctx context.Context, jti string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(ctx, denylistPrefix+jti).Result()
	if err != nil {
		log.Printf("Redis denylist check failed: %v", err)
		return false
	}
	return n > 0
}
