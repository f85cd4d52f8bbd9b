package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	settlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlements_total",
			Help: "Settled rounds by game and result (win|loss)",
		},
		[]string{"game", "result"},
	)

	settlementRejects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlement_rejections_total",
			Help: "Play attempts rejected before settlement, by reason",
		},
		[]string{"reason"},
	)

	wageredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wagered_amount_total",
			Help: "Sum of bets by game",
		},
		[]string{"game"},
	)

	paidTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paid_amount_total",
			Help: "Sum of payouts by game; paid/wagered is the realized RTP",
		},
		[]string{"game"},
	)

	fallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlement_fallback_table_total",
			Help: "Rounds settled with the default payout table because the game is not in the catalog",
		},
		[]string{"game"},
	)
)

// RecordSettlement учитывает один завершённый раунд
func RecordSettlement(game string, won, fallback bool, bet, payout decimal.Decimal) {
	result := "loss"
	if won {
		result = "win"
	}
	settlementsTotal.WithLabelValues(game, result).Inc()
	wageredTotal.WithLabelValues(game).Add(bet.InexactFloat64())
	paidTotal.WithLabelValues(game).Add(payout.InexactFloat64())
	if fallback {
		fallbackTotal.WithLabelValues(game).Inc()
	}
}

// RecordRejection учитывает отказ в игре (reason - вид ошибки)
func RecordRejection(reason string) {
	settlementRejects.WithLabelValues(reason).Inc()
}
