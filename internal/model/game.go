package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type GameConfig struct {
	ID           int
	GameName     string
	Enabled      bool
	RTPPercent   decimal.Decimal
	MinBet       decimal.Decimal
	MaxBet       decimal.Decimal
	CustomConfig json.RawMessage
	UpdatedAt    time.Time
}

// RTPFraction - RTP в долях единицы (95% -> 0.95)
func (c GameConfig) RTPFraction() float64 {
	return c.RTPPercent.Div(decimal.NewFromInt(100)).InexactFloat64()
}

// SettingsUpdate - набор полей, которые разрешено менять администратору.
// nil означает "не менять"
type SettingsUpdate struct {
	RTPPercent *decimal.Decimal
	MinBet     *decimal.Decimal
	MaxBet     *decimal.Decimal
	Enabled    *bool
}

func (u SettingsUpdate) Empty() bool {
	return u.RTPPercent == nil && u.MinBet == nil && u.MaxBet == nil && u.Enabled == nil
}

// Apply возвращает копию конфига с применёнными изменениями
func (u SettingsUpdate) Apply(c GameConfig) GameConfig {
	if u.RTPPercent != nil {
		c.RTPPercent = *u.RTPPercent
	}
	if u.MinBet != nil {
		c.MinBet = *u.MinBet
	}
	if u.MaxBet != nil {
		c.MaxBet = *u.MaxBet
	}
	if u.Enabled != nil {
		c.Enabled = *u.Enabled
	}
	return c
}

// GameSeed - настройки игры по умолчанию из config.yaml
type GameSeed struct {
	GameName   string
	Enabled    bool
	RTPPercent decimal.Decimal
	MinBet     decimal.Decimal
	MaxBet     decimal.Decimal
}
