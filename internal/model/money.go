package model

import "github.com/shopspring/decimal"

// MoneyPlaces - деньги хранятся в NUMERIC(12,2)
const MoneyPlaces = 2

// IsWholeCents - сумма без долей копейки ("1.500" подходит, "0.004" нет)
func IsWholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyPlaces))
}
