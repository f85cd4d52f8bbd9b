package env

import (
	"errors"
	"fmt"
	"os"

	"rtp_casino/internal/config"
	"rtp_casino/internal/model"

	cenv "github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type gameSeedYAML struct {
	GameName   string  `yaml:"game_name"`
	Enabled    *bool   `yaml:"enabled"`
	RTPPercent float64 `yaml:"rtp_percent"`
	MinBet     float64 `yaml:"min_bet"`
	MaxBet     float64 `yaml:"max_bet"`
}

type gamesFileYAML struct {
	Games []gameSeedYAML `yaml:"games"`
}

type gamesConfig struct {
	seeds []model.GameSeed
}

type gamesPath struct {
	Path string `env:"GAMES_CONFIG_PATH" envDefault:"config.yaml"`
}

// NewGamesConfig читает файл, путь к которому задан GAMES_CONFIG_PATH
func NewGamesConfig() (config.GamesConfig, error) {
	p, err := cenv.ParseAs[gamesPath]()
	if err != nil {
		return nil, fmt.Errorf("games config: %w", err)
	}
	return NewGamesConfigFromYAML(p.Path)
}

// NewGamesConfigFromYAML - настройки игр по умолчанию из YAML-файла
func NewGamesConfigFromYAML(path string) (config.GamesConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read games config: %w", err)
	}
	return ParseGamesConfig(raw)
}

func ParseGamesConfig(raw []byte) (config.GamesConfig, error) {
	var file gamesFileYAML
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse games config: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Games))
	seeds := make([]model.GameSeed, 0, len(file.Games))
	for i, g := range file.Games {
		if g.GameName == "" {
			return nil, fmt.Errorf("games config: entry %d has no game_name", i)
		}
		if _, dup := seen[g.GameName]; dup {
			return nil, fmt.Errorf("games config: duplicate game %q", g.GameName)
		}
		seen[g.GameName] = struct{}{}

		if g.RTPPercent < 0 || g.RTPPercent > 100 {
			return nil, fmt.Errorf("games config: %q rtp_percent must be within [0, 100]", g.GameName)
		}
		if g.MinBet < 0 || g.MaxBet < 0 || (g.MaxBet > 0 && g.MinBet > g.MaxBet) {
			return nil, errors.New("games config: invalid bet bounds for " + g.GameName)
		}

		enabled := true
		if g.Enabled != nil {
			enabled = *g.Enabled
		}
		seeds = append(seeds, model.GameSeed{
			GameName:   g.GameName,
			Enabled:    enabled,
			RTPPercent: decimal.NewFromFloat(g.RTPPercent),
			MinBet:     decimal.NewFromFloat(g.MinBet),
			MaxBet:     decimal.NewFromFloat(g.MaxBet),
		})
	}
	return &gamesConfig{seeds: seeds}, nil
}

func (g *gamesConfig) Seeds() []model.GameSeed {
	return g.seeds
}
