// Package outcome решает исход раунда: выигрыш или проигрыш, множитель и выплату.
package outcome

import (
	"math/rand/v2"

	"rtp_casino/internal/model"

	"github.com/shopspring/decimal"
)

// winShare - доля целевого RTP, которая становится вероятностью выигрыша.
// Остаток ожидаемой выплаты несёт распределение множителей
const winShare = 0.5

const (
	detailsWin  = "Выигрыш x"
	detailsLoss = "Проигрыш"
)

// Rand - источник случайности движка. *rand.Rand из math/rand/v2 подходит
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand использует функции верхнего уровня math/rand/v2, они безопасны
// для конкурентного вызова
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

type Engine struct {
	rnd Rand
}

// NewEngine создаёт движок. rnd == nil - общий генератор процесса
func NewEngine(rnd Rand) *Engine {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Engine{rnd: rnd}
}

// WinProbability - вероятность выигрыша для rtp в долях единицы
func WinProbability(rtp float64) float64 {
	return rtp * winShare
}

// Settle разыгрывает один раунд. rtp задаётся в долях единицы (0.95).
// gameData на выплату не влияет
func (e *Engine) Settle(gameName string, bet decimal.Decimal, rtp float64, gameData map[string]any) model.SettlementResult {
	game, known := ParseGame(gameName)

	r := e.rnd.Float64()
	if r >= WinProbability(rtp) {
		return model.SettlementResult{
			Won:        false,
			Multiplier: decimal.Zero,
			Payout:     decimal.Zero,
			Details:    detailsLoss,
			Data:       resultData(false, decimal.Zero, detailsLoss),
			Fallback:   !known,
		}
	}

	payouts := game.PayoutTable()
	multiplier := payouts[e.rnd.IntN(len(payouts))]
	details := detailsWin + multiplier.String()

	return model.SettlementResult{
		Won:        true,
		Multiplier: multiplier,
		Payout:     bet.Mul(multiplier).Round(2),
		Details:    details,
		Data:       resultData(true, multiplier, details),
		Fallback:   !known,
	}
}

func resultData(won bool, multiplier decimal.Decimal, details string) map[string]any {
	return map[string]any{
		"won":        won,
		"multiplier": multiplier.InexactFloat64(),
		"details":    details,
	}
}
