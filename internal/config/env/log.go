package env

import (
	"fmt"

	"rtp_casino/internal/config"

	cenv "github.com/caarlos0/env/v11"
)

type logConfig struct {
	LevelName   string `env:"LOG_LEVEL" envDefault:"info"`
	FilePath    string `env:"LOG_FILE"`
	MaxSize     int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	Backups     int    `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	MaxAge      int    `env:"LOG_MAX_DAYS" envDefault:"14"`
	CompressOld bool   `env:"LOG_COMPRESS" envDefault:"true"`
}

func NewLogConfig() (config.LogConfig, error) {
	cfg, err := cenv.ParseAs[logConfig]()
	if err != nil {
		return nil, fmt.Errorf("log config: %w", err)
	}
	return &cfg, nil
}

func (l *logConfig) Level() string   { return l.LevelName }
func (l *logConfig) File() string    { return l.FilePath }
func (l *logConfig) MaxSizeMB() int  { return l.MaxSize }
func (l *logConfig) MaxBackups() int { return l.Backups }
func (l *logConfig) MaxAgeDays() int { return l.MaxAge }
func (l *logConfig) Compress() bool  { return l.CompressOld }
