package env

import (
	"fmt"
	"time"

	"rtp_casino/internal/config"

	cenv "github.com/caarlos0/env/v11"
)

type jwtConfig struct {
	AccessTokenSecret string        `env:"ACCESS_TOKEN_SECRET"`
	AccessTokenTTL    time.Duration `env:"ACCESS_TOKEN_DURATION" envDefault:"15m"`
}

// NewJWTConfig - JWT включается только при заданном ACCESS_TOKEN_SECRET,
// иначе выдаётся прежний токен-дайджест
func NewJWTConfig() (config.JWTConfig, error) {
	cfg, err := cenv.ParseAs[jwtConfig]()
	if err != nil {
		return nil, fmt.Errorf("jwt config: %w", err)
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("jwt config: access token duration must be positive")
	}
	return &cfg, nil
}

func (j *jwtConfig) Enabled() bool {
	return j.AccessTokenSecret != ""
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.AccessTokenSecret)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.AccessTokenTTL
}
