package env

import (
	"fmt"
	"time"

	"rtp_casino/internal/config"

	cenv "github.com/caarlos0/env/v11"
)

type redisConfig struct {
	Address      string        `env:"REDIS_ADDR"`
	Pass         string        `env:"REDIS_PASSWORD"`
	Database     int           `env:"REDIS_DB" envDefault:"0"`
	PlayRequests int64         `env:"PLAY_RATE_LIMIT" envDefault:"30"`
	PlayPeriod   time.Duration `env:"PLAY_RATE_WINDOW" envDefault:"1m"`
}

// NewRedisConfig - без REDIS_ADDR ограничение частоты ставок выключено
func NewRedisConfig() (config.RedisConfig, error) {
	cfg, err := cenv.ParseAs[redisConfig]()
	if err != nil {
		return nil, fmt.Errorf("redis config: %w", err)
	}
	if cfg.Address != "" && (cfg.PlayRequests <= 0 || cfg.PlayPeriod <= 0) {
		return nil, fmt.Errorf("redis config: PLAY_RATE_LIMIT and PLAY_RATE_WINDOW must be positive")
	}
	return &cfg, nil
}

func (r *redisConfig) Enabled() bool             { return r.Address != "" }
func (r *redisConfig) Addr() string              { return r.Address }
func (r *redisConfig) Password() string          { return r.Pass }
func (r *redisConfig) DB() int                   { return r.Database }
func (r *redisConfig) PlayLimit() int64          { return r.PlayRequests }
func (r *redisConfig) PlayWindow() time.Duration { return r.PlayPeriod }
