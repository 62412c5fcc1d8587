package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Rdb stays nil when no redis address is configured; every helper
// degrades to a miss or a no-op so callers never have to check.
var Rdb *redis.Client

func Init(addr string) {
	if addr == "" {
		return
	}
	Rdb = redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func Get(key string) (string, bool) {
	if Rdb == nil {
		return "", false
	}
	v, err := Rdb.Get(context.Background(), key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func Set(key, value string, ttl time.Duration) {
	if Rdb == nil {
		return
	}
	Rdb.Set(context.Background(), key, value, ttl)
}

func Del(keys ...string) {
	if Rdb == nil {
		return
	}
	Rdb.Del(context.Background(), keys...)
}
