package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type SettlementRequest struct {
	UserID    int
	GameName  string
	BetAmount decimal.Decimal
	GameData  map[string]any // передаётся в движок как есть, на выплату не влияет
}

type SettlementResult struct {
	Won        bool
	Multiplier decimal.Decimal
	Payout     decimal.Decimal
	Details    string
	// Data сохраняется в историю без изменений
	Data map[string]any
	// Fallback - игра не найдена в каталоге, использована таблица по умолчанию
	Fallback bool
}

type PlayResult struct {
	Balance decimal.Decimal
	Outcome SettlementResult
}

type HistoryRecord struct {
	ID         int
	UserID     int
	GameName   string
	BetAmount  decimal.Decimal
	WinAmount  decimal.Decimal
	Multiplier decimal.Decimal
	ResultData []byte
	PlayedAt   time.Time
}
