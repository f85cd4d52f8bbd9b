package outcome

import "github.com/shopspring/decimal"

// Game - игра из фиксированного каталога
type Game int

const (
	// GameUnknown - имя не найдено в каталоге, выплаты идут по таблице по умолчанию
	GameUnknown Game = iota
	GameSlots
	GameAviator
	GameFishing
	GameDice
	GamePoker
	GameDarts
	GameMines
	GameWheel
	GameMinecraft
	GameSports
)

// PayoutTable - упорядоченный список допустимых множителей игры
type PayoutTable []decimal.Decimal

func table(ms ...string) PayoutTable {
	t := make(PayoutTable, len(ms))
	for i, m := range ms {
		t[i] = decimal.RequireFromString(m)
	}
	return t
}

var (
	gameNames = map[Game]string{
		GameSlots:     "Слоты",
		GameAviator:   "Авиатор",
		GameFishing:   "Рыбалка",
		GameDice:      "Кости",
		GamePoker:     "Покер",
		GameDarts:     "Дартс",
		GameMines:     "Сапёр",
		GameWheel:     "Колесо Фортуны",
		GameMinecraft: "Майнкрафт",
		GameSports:    "Спорт",
	}

	gamesByName = func() map[string]Game {
		m := make(map[string]Game, len(gameNames))
		for g, name := range gameNames {
			m[name] = g
		}
		return m
	}()

	payoutTables = map[Game]PayoutTable{
		GameSlots:     table("1.5", "2", "3", "5", "10", "20"),
		GameAviator:   table("1.2", "1.5", "2", "3", "5", "10"),
		GameFishing:   table("1.2", "2", "3", "8", "20", "50"),
		GameDice:      table("1.9", "2", "3"),
		GamePoker:     table("1.5", "2", "5", "10", "50"),
		GameDarts:     table("1.5", "2", "3", "5", "10"),
		GameMines:     table("1.2", "1.5", "2", "3", "5"),
		GameWheel:     table("2", "5", "10", "20", "50"),
		GameMinecraft: table("1.5", "2", "3", "5", "10"),
		GameSports:    table("1.8", "2.5", "3.5"),
	}

	defaultTable = table("1.5", "2", "3")
)

// ParseGame ищет игру по отображаемому имени. Второе значение false,
// если имени нет в каталоге
func ParseGame(name string) (Game, bool) {
	g, ok := gamesByName[name]
	return g, ok
}

// Games возвращает все игры каталога в порядке объявления
func Games() []Game {
	games := make([]Game, 0, len(gameNames))
	for g := GameSlots; g <= GameSports; g++ {
		games = append(games, g)
	}
	return games
}

func (g Game) String() string {
	if name, ok := gameNames[g]; ok {
		return name
	}
	return "unknown"
}

// PayoutTable возвращает таблицу множителей; для GameUnknown - таблицу по умолчанию
func (g Game) PayoutTable() PayoutTable {
	if t, ok := payoutTables[g]; ok {
		return t
	}
	return defaultTable
}

// DefaultPayoutTable - таблица для имён вне каталога
func DefaultPayoutTable() PayoutTable {
	return defaultTable
}

// Mean - среднее арифметическое множителей. Выбор множителя равномерный,
// поэтому именно среднее определяет ожидаемую выплату при выигрыше
func (t PayoutTable) Mean() decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, m := range t {
		sum = sum.Add(m)
	}
	return sum.Div(decimal.NewFromInt(int64(len(t))))
}

// ImpliedRTP - фактический долгосрочный RTP при заданном целевом rtp (в долях):
// P(win) * E[multiplier] = rtp * winShare * Mean()
func (t PayoutTable) ImpliedRTP(rtp float64) float64 {
	return WinProbability(rtp) * t.Mean().InexactFloat64()
}

// Contains проверяет, что множитель есть в таблице
func (t PayoutTable) Contains(m decimal.Decimal) bool {
	for _, v := range t {
		if v.Equal(m) {
			return true
		}
	}
	return false
}
