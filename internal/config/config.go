package config

import (
	"time"

	"rtp_casino/internal/model"

	"github.com/joho/godotenv"
)

// Load подгружает переменные окружения из .env, уже заданные переменные не перетираются
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	Schema() string
}

type JWTConfig interface {
	Enabled() bool
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type SettlementConfig interface {
	// Timeout - предел длительности транзакции одного раунда
	Timeout() time.Duration
	EnforceBetLimits() bool
	HistoryMaxLimit() int
}

type RedisConfig interface {
	Enabled() bool
	Addr() string
	Password() string
	DB() int
	PlayLimit() int64
	PlayWindow() time.Duration
}

type LogConfig interface {
	Level() string
	File() string
	MaxSizeMB() int
	MaxBackups() int
	MaxAgeDays() int
	Compress() bool
}

type GamesConfig interface {
	Seeds() []model.GameSeed
}
