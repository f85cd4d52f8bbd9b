package env

import (
	"fmt"
	"time"

	"rtp_casino/internal/config"

	cenv "github.com/caarlos0/env/v11"
)

type settlementConfig struct {
	TxTimeout       time.Duration `env:"SETTLEMENT_TIMEOUT" envDefault:"3s"`
	EnforceLimits   bool          `env:"ENFORCE_BET_LIMITS" envDefault:"false"`
	MaxHistoryLimit int           `env:"HISTORY_MAX_LIMIT" envDefault:"500"`
}

func NewSettlementConfig() (config.SettlementConfig, error) {
	cfg, err := cenv.ParseAs[settlementConfig]()
	if err != nil {
		return nil, fmt.Errorf("settlement config: %w", err)
	}
	if cfg.TxTimeout <= 0 {
		return nil, fmt.Errorf("settlement config: SETTLEMENT_TIMEOUT must be positive")
	}
	if cfg.MaxHistoryLimit <= 0 {
		return nil, fmt.Errorf("settlement config: HISTORY_MAX_LIMIT must be positive")
	}
	return &cfg, nil
}

func (s *settlementConfig) Timeout() time.Duration {
	return s.TxTimeout
}

func (s *settlementConfig) EnforceBetLimits() bool {
	return s.EnforceLimits
}

func (s *settlementConfig) HistoryMaxLimit() int {
	return s.MaxHistoryLimit
}
