package ratelimit_repo

import (
	"context"
	"fmt"
	"time"

	"rtp_casino/internal/repository"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

type repo struct {
	rdb redis.Cmdable
}

func NewRateLimitRepository(rdb redis.Cmdable) repository.RateLimitRepository {
	return &repo{rdb: rdb}
}

// Hit - счётчик фиксированного окна: INCR и EXPIRE в одном MULTI.
// Срок жизни ставится только если у ключа его ещё нет
func (r *repo) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, keyPrefix+key)
		pipe.ExpireNX(ctx, keyPrefix+key, window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("rate limit hit: %w", err)
	}
	return incr.Val(), nil
}
