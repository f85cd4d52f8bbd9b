package env

import (
	"errors"
	"fmt"
	"regexp"

	"rtp_casino/internal/config"

	cenv "github.com/caarlos0/env/v11"
)

var schemaName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type pgConfig struct {
	URL        string `env:"DATABASE_URL,required,notEmpty"`
	SchemaName string `env:"MAIN_DB_SCHEMA" envDefault:"public"`
}

func NewPGConfig() (config.PGConfig, error) {
	cfg, err := cenv.ParseAs[pgConfig]()
	if err != nil {
		return nil, fmt.Errorf("pg config: %w", err)
	}
	// имя схемы подставляется в текст запросов
	if !schemaName.MatchString(cfg.SchemaName) {
		return nil, errors.New("pg config: invalid MAIN_DB_SCHEMA")
	}
	return &cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.URL
}

func (cfg *pgConfig) Schema() string {
	return cfg.SchemaName
}
