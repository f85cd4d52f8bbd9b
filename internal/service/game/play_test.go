package game

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"rtp_casino/internal/apperr"
	"rtp_casino/internal/model"
	"rtp_casino/internal/outcome"

	"github.com/shopspring/decimal"
)

const diceGame = "Кости"

func newTestService(rnd outcome.Rand, cfg settlementCfg) (*serv, *store) {
	st := newStore()
	if cfg.timeout == 0 {
		cfg.timeout = time.Second
	}
	if cfg.historyMax == 0 {
		cfg.historyMax = 500
	}
	s := NewGameService(
		&txManager{st: st},
		&settingsRepo{st: st},
		&userRepo{st: st},
		&historyRepo{st: st},
		outcome.NewEngine(rnd),
		cfg,
	)
	return s, st
}

func addGame(st *store, name string, enabled bool, rtp string) {
	st.games[name] = model.GameConfig{
		ID:         len(st.games) + 1,
		GameName:   name,
		Enabled:    enabled,
		RTPPercent: dec(rtp),
		MinBet:     dec("10"),
		MaxBet:     dec("1000"),
	}
}

func TestPlayDiceScenario(t *testing.T) {
	s, st := newTestService(&scriptedRand{floats: []float64{0.1}, ints: []int{1}}, settlementCfg{})
	addGame(st, diceGame, true, "95")
	st.balances[1] = dec("2000")

	res, err := s.Play(context.Background(), model.SettlementRequest{
		UserID:    1,
		GameName:  diceGame,
		BetAmount: dec("100"),
	})
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if !res.Outcome.Won {
		t.Fatal("expected a win")
	}
	if !res.Outcome.Payout.Equal(dec("200")) {
		t.Errorf("payout = %s, want 200", res.Outcome.Payout)
	}
	if !res.Balance.Equal(dec("2100")) {
		t.Errorf("balance = %s, want 2100", res.Balance)
	}
	if !st.balances[1].Equal(dec("2100")) {
		t.Errorf("stored balance = %s, want 2100", st.balances[1])
	}

	if len(st.history) != 1 {
		t.Fatalf("history rows = %d, want 1", len(st.history))
	}
	rec := st.history[0]
	if !rec.Multiplier.Equal(dec("2")) || !rec.WinAmount.Equal(dec("200")) || !rec.BetAmount.Equal(dec("100")) {
		t.Errorf("history = %+v", rec)
	}

	var data struct {
		Won        bool    `json:"won"`
		Multiplier float64 `json:"multiplier"`
		Details    string  `json:"details"`
	}
	if err = json.Unmarshal(rec.ResultData, &data); err != nil {
		t.Fatal(err)
	}
	if !data.Won || data.Multiplier != 2 || data.Details != "Выигрыш x2" {
		t.Errorf("result data = %+v", data)
	}
}

func TestPlayLoss(t *testing.T) {
	s, st := newTestService(&scriptedRand{floats: []float64{0.9}, ints: []int{0}}, settlementCfg{})
	addGame(st, diceGame, true, "95")
	st.balances[1] = dec("2000")

	res, err := s.Play(context.Background(), model.SettlementRequest{UserID: 1, GameName: diceGame, BetAmount: dec("100")})
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome.Won || !res.Outcome.Payout.IsZero() || !res.Outcome.Multiplier.IsZero() {
		t.Errorf("outcome = %+v", res.Outcome)
	}
	if !res.Balance.Equal(dec("1900")) {
		t.Errorf("balance = %s, want 1900", res.Balance)
	}
	if len(st.history) != 1 || !st.history[0].WinAmount.IsZero() {
		t.Errorf("history = %+v", st.history)
	}
}

func TestPlayBalanceIdentity(t *testing.T) {
	s, st := newTestService(rand.New(rand.NewPCG(1, 2)), settlementCfg{})
	for _, g := range outcome.Games() {
		addGame(st, g.String(), true, "95")
	}
	st.balances[1] = dec("1000000")
	bet := dec("12.34")

	games := outcome.Games()
	for i := 0; i < 2000; i++ {
		game := games[i%len(games)]
		before := st.balances[1]

		res, err := s.Play(context.Background(), model.SettlementRequest{UserID: 1, GameName: game.String(), BetAmount: bet})
		if err != nil {
			t.Fatalf("round %d: %v", i, err)
		}

		want := before.Sub(bet).Add(res.Outcome.Payout)
		if !res.Balance.Equal(want) {
			t.Fatalf("round %d: balance = %s, want %s", i, res.Balance, want)
		}
		if res.Outcome.Won {
			if !game.PayoutTable().Contains(res.Outcome.Multiplier) {
				t.Fatalf("round %d: multiplier %s not in %s table", i, res.Outcome.Multiplier, game)
			}
			if !res.Outcome.Payout.Equal(bet.Mul(res.Outcome.Multiplier).Round(2)) {
				t.Fatalf("round %d: payout %s != bet x multiplier", i, res.Outcome.Payout)
			}
		}
	}
	if len(st.history) != 2000 {
		t.Errorf("history rows = %d, want 2000", len(st.history))
	}
}

func TestPlayWinRateFollowsRTP(t *testing.T) {
	const rounds = 50000
	s, st := newTestService(rand.New(rand.NewPCG(7, 7)), settlementCfg{})
	addGame(st, "Слоты", true, "80")
	st.balances[1] = dec("100000000")

	wins := 0
	for i := 0; i < rounds; i++ {
		res, err := s.Play(context.Background(), model.SettlementRequest{UserID: 1, GameName: "Слоты", BetAmount: dec("1")})
		if err != nil {
			t.Fatal(err)
		}
		if res.Outcome.Won {
			wins++
		}
	}

	got := float64(wins) / rounds
	if want := 0.4; got < want-0.01 || got > want+0.01 {
		t.Errorf("win rate = %.4f, want about %.2f", got, want)
	}
}

func TestPlayRejectionsLeaveStateUntouched(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(st *store)
		req     model.SettlementRequest
		wantErr error
	}{
		{
			name: "disabled game",
			setup: func(st *store) {
				addGame(st, diceGame, false, "95")
				st.balances[1] = dec("2000")
			},
			req:     model.SettlementRequest{UserID: 1, GameName: diceGame, BetAmount: dec("100")},
			wantErr: apperr.ErrGameUnavailable,
		},
		{
			name: "disabled game with empty balance",
			setup: func(st *store) {
				addGame(st, diceGame, false, "95")
				st.balances[1] = dec("0")
			},
			req:     model.SettlementRequest{UserID: 1, GameName: diceGame, BetAmount: dec("100")},
			wantErr: apperr.ErrGameUnavailable,
		},
		{
			name: "unknown game",
			setup: func(st *store) {
				st.balances[1] = dec("2000")
			},
			req:     model.SettlementRequest{UserID: 1, GameName: "Нет такой", BetAmount: dec("100")},
			wantErr: apperr.ErrGameUnavailable,
		},
		{
			name: "bet above balance",
			setup: func(st *store) {
				addGame(st, diceGame, true, "95")
				st.balances[1] = dec("50")
			},
			req:     model.SettlementRequest{UserID: 1, GameName: diceGame, BetAmount: dec("50.01")},
			wantErr: apperr.ErrInsufficientFunds,
		},
		{
			name: "unknown user",
			setup: func(st *store) {
				addGame(st, diceGame, true, "95")
			},
			req:     model.SettlementRequest{UserID: 9, GameName: diceGame, BetAmount: dec("10")},
			wantErr: apperr.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, st := newTestService(&scriptedRand{floats: []float64{0}, ints: []int{0}}, settlementCfg{})
			tt.setup(st)
			before := st.snapshot()

			_, err := s.Play(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			for id, b := range before.balances {
				if !st.balances[id].Equal(b) {
					t.Errorf("balance of %d changed: %s -> %s", id, b, st.balances[id])
				}
			}
			if len(st.history) != 0 {
				t.Errorf("history rows = %d, want 0", len(st.history))
			}
		})
	}
}

func TestPlayValidation(t *testing.T) {
	tests := []struct {
		name string
		req  model.SettlementRequest
	}{
		{"no user", model.SettlementRequest{GameName: diceGame, BetAmount: dec("1")}},
		{"no game", model.SettlementRequest{UserID: 1, GameName: "  ", BetAmount: dec("1")}},
		{"zero bet", model.SettlementRequest{UserID: 1, GameName: diceGame, BetAmount: decimal.Zero}},
		{"negative bet", model.SettlementRequest{UserID: 1, GameName: diceGame, BetAmount: dec("-5")}},
		{"fraction of a cent", model.SettlementRequest{UserID: 1, GameName: diceGame, BetAmount: dec("0.004")}},
		{"half a cent", model.SettlementRequest{UserID: 1, GameName: diceGame, BetAmount: dec("0.005")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService(nil, settlementCfg{})
			_, err := s.Play(context.Background(), tt.req)
			if apperr.KindOf(err) != apperr.KindValidation {
				t.Errorf("kind = %v, want validation (err %v)", apperr.KindOf(err), err)
			}
		})
	}
}

func TestPlayRollsBackWhenHistoryFails(t *testing.T) {
	s, st := newTestService(&scriptedRand{floats: []float64{0.1}, ints: []int{1}}, settlementCfg{})
	addGame(st, diceGame, true, "95")
	st.balances[1] = dec("2000")
	st.appendErr = errBoom

	_, err := s.Play(context.Background(), model.SettlementRequest{UserID: 1, GameName: diceGame, BetAmount: dec("100")})
	if apperr.KindOf(err) != apperr.KindInternal || !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want internal wrapping boom", err)
	}
	if !st.balances[1].Equal(dec("2000")) {
		t.Errorf("balance = %s, want 2000 after rollback", st.balances[1])
	}
}

func TestPlayTimeoutIsRetryable(t *testing.T) {
	s, st := newTestService(nil, settlementCfg{timeout: 10 * time.Millisecond})
	addGame(st, diceGame, true, "95")
	st.balances[1] = dec("2000")
	st.delay = time.Second

	_, err := s.Play(context.Background(), model.SettlementRequest{UserID: 1, GameName: diceGame, BetAmount: dec("100")})
	if !apperr.IsRetryable(err) {
		t.Fatalf("err = %v, want retryable", err)
	}
	if !st.balances[1].Equal(dec("2000")) {
		t.Errorf("balance changed to %s", st.balances[1])
	}
}

func TestPlayBetLimits(t *testing.T) {
	tests := []struct {
		name    string
		enforce bool
		bet     string
		wantErr bool
	}{
		{"below min enforced", true, "5", true},
		{"above max enforced", true, "1500", true},
		{"within limits", true, "100", false},
		{"below min not enforced", false, "5", false},
		{"above max not enforced", false, "1500", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, st := newTestService(&scriptedRand{floats: []float64{0.9}, ints: []int{0}}, settlementCfg{enforce: tt.enforce})
			addGame(st, diceGame, true, "95")
			st.balances[1] = dec("2000")

			_, err := s.Play(context.Background(), model.SettlementRequest{UserID: 1, GameName: diceGame, BetAmount: dec(tt.bet)})
			if tt.wantErr {
				if apperr.KindOf(err) != apperr.KindValidation {
					t.Fatalf("err = %v, want validation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPlayGameOutsideCatalogUsesDefaultTable(t *testing.T) {
	s, st := newTestService(&scriptedRand{floats: []float64{0}, ints: []int{2}}, settlementCfg{})
	addGame(st, "Блэкджек", true, "95")
	st.balances[1] = dec("2000")

	res, err := s.Play(context.Background(), model.SettlementRequest{UserID: 1, GameName: "Блэкджек", BetAmount: dec("10")})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Outcome.Fallback {
		t.Error("expected fallback flag")
	}
	if !res.Outcome.Multiplier.Equal(dec("3")) {
		t.Errorf("multiplier = %s, want 3", res.Outcome.Multiplier)
	}
}

func TestDisableGameThenPlay(t *testing.T) {
	s, st := newTestService(nil, settlementCfg{})
	addGame(st, diceGame, true, "95")
	st.balances[1] = dec("2000")

	_, err := s.UpdateSettings(context.Background(), diceGame, map[string]json.RawMessage{
		"enabled": json.RawMessage(`false`),
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = s.Play(context.Background(), model.SettlementRequest{UserID: 1, GameName: diceGame, BetAmount: dec("100")})
	if !errors.Is(err, apperr.ErrGameUnavailable) {
		t.Fatalf("err = %v, want game unavailable", err)
	}
	if apperr.HTTPStatus(err) != 403 {
		t.Errorf("status = %d, want 403", apperr.HTTPStatus(err))
	}
	if !st.balances[1].Equal(dec("2000")) {
		t.Errorf("balance = %s", st.balances[1])
	}
}

func TestPlaySubCentBetLeavesBalance(t *testing.T) {
	for _, r := range []float64{0, 0.99} {
		s, st := newTestService(&scriptedRand{floats: []float64{r}, ints: []int{0}}, settlementCfg{})
		addGame(st, "Слоты", true, "95")
		st.balances[1] = dec("2000")

		_, err := s.Play(context.Background(), model.SettlementRequest{UserID: 1, GameName: "Слоты", BetAmount: dec("0.004")})
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Fatalf("draw %v: err = %v, want validation", r, err)
		}
		if !st.balances[1].Equal(dec("2000")) || len(st.history) != 0 {
			t.Errorf("draw %v: balance %s, history %d", r, st.balances[1], len(st.history))
		}
	}
}

func TestPlayCentBetKeepsIdentity(t *testing.T) {
	s, st := newTestService(&scriptedRand{floats: []float64{0}, ints: []int{0}}, settlementCfg{})
	addGame(st, "Слоты", true, "95")
	st.balances[1] = dec("2000")

	res, err := s.Play(context.Background(), model.SettlementRequest{UserID: 1, GameName: "Слоты", BetAmount: dec("0.01")})
	if err != nil {
		t.Fatal(err)
	}
	// 0.01 x 1.5 = 0.015 -> 0.02
	if !res.Outcome.Payout.Equal(dec("0.02")) {
		t.Errorf("payout = %s, want 0.02", res.Outcome.Payout)
	}
	if !res.Balance.Equal(dec("2000.01")) || !model.IsWholeCents(res.Balance) {
		t.Errorf("balance = %s, want 2000.01", res.Balance)
	}
	if rec := st.history[0]; !rec.BetAmount.Equal(dec("0.01")) || !rec.WinAmount.Equal(dec("0.02")) {
		t.Errorf("history = %+v", rec)
	}
}
