package game

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Request - тело POST /games, поле action выбирает операцию
type Request struct {
	Action    string                     `json:"action"`
	UserID    int                        `json:"user_id"`
	GameName  string                     `json:"game_name"`
	BetAmount decimal.Decimal            `json:"bet_amount"`
	GameData  map[string]any             `json:"game_data"`
	Limit     int                        `json:"limit"`
	Updates   map[string]json.RawMessage `json:"updates"`
}

type SettingsResponse struct {
	ID           int             `json:"id"`
	GameName     string          `json:"game_name"`
	Enabled      bool            `json:"enabled"`
	RTPPercent   float64         `json:"rtp_percent"`
	MinBet       float64         `json:"min_bet"`
	MaxBet       float64         `json:"max_bet"`
	CustomConfig json.RawMessage `json:"custom_config"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type ListSettingsResponse struct {
	Settings []SettingsResponse `json:"settings"`
}

type UpdateSettingsResponse struct {
	Settings SettingsResponse `json:"settings"`
}

type PlayResponse struct {
	Success    bool           `json:"success"`
	WinAmount  float64        `json:"win_amount"`
	Multiplier float64        `json:"multiplier"`
	Balance    float64        `json:"balance"`
	Result     map[string]any `json:"result"`
}

type HistoryRecordResponse struct {
	ID         int             `json:"id"`
	UserID     int             `json:"user_id"`
	GameName   string          `json:"game_name"`
	BetAmount  float64         `json:"bet_amount"`
	WinAmount  float64         `json:"win_amount"`
	Multiplier float64         `json:"multiplier"`
	ResultData json.RawMessage `json:"result_data"`
	PlayedAt   time.Time       `json:"played_at"`
}

type HistoryResponse struct {
	History []HistoryRecordResponse `json:"history"`
}
