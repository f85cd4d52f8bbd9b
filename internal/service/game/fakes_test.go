package game

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"rtp_casino/internal/model"
	"rtp_casino/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

// store - общая память фейковых репозиториев
type store struct {
	mu       sync.Mutex
	balances map[int]decimal.Decimal
	games    map[string]model.GameConfig
	history  []model.HistoryRecord

	appendErr error
	// delay - задержка GetBalanceForUpdate, для проверки таймаута
	delay time.Duration
}

func newStore() *store {
	return &store{
		balances: map[int]decimal.Decimal{},
		games:    map[string]model.GameConfig{},
	}
}

type snapshot struct {
	balances   map[int]decimal.Decimal
	games      map[string]model.GameConfig
	// история только дописывается, достаточно запомнить длину
	historyLen int
}

func (s *store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		balances:   maps.Clone(s.balances),
		games:      maps.Clone(s.games),
		historyLen: len(s.history),
	}
}

func (s *store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances = snap.balances
	s.games = snap.games
	s.history = s.history[:snap.historyLen]
}

// txManager откатывает состояние store, если функция вернула ошибку.
// Транзакции сериализуются, как строки под FOR UPDATE
type txManager struct {
	st *store
	mu sync.Mutex
}

func (m *txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.st.snapshot()
	if err := fn(ctx); err != nil {
		m.st.restore(snap)
		return err
	}
	return nil
}

func (m *txManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type userRepo struct {
	repository.UserRepository
	st *store
}

func (r *userRepo) GetBalance(_ context.Context, id int) (decimal.Decimal, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	b, ok := r.st.balances[id]
	if !ok {
		return decimal.Zero, repository.ErrNotFound
	}
	return b, nil
}

func (r *userRepo) GetBalanceForUpdate(ctx context.Context, id int) (decimal.Decimal, error) {
	if r.st.delay > 0 {
		select {
		case <-time.After(r.st.delay):
		case <-ctx.Done():
			return decimal.Zero, ctx.Err()
		}
	}
	return r.GetBalance(ctx, id)
}

func (r *userRepo) AddBalance(_ context.Context, id int, delta decimal.Decimal) (decimal.Decimal, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	b, ok := r.st.balances[id]
	if !ok {
		return decimal.Zero, repository.ErrNotFound
	}
	b = b.Add(delta)
	if b.IsNegative() {
		return decimal.Zero, repository.ErrCheckViolation
	}
	r.st.balances[id] = b
	return b, nil
}

type settingsRepo struct {
	st *store
	// locked - игры, прочитанные через GetByNameForUpdate
	locked []string
}

func (r *settingsRepo) List(_ context.Context) ([]model.GameConfig, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	names := slices.Sorted(maps.Keys(r.st.games))
	out := make([]model.GameConfig, 0, len(names))
	for _, n := range names {
		out = append(out, r.st.games[n])
	}
	return out, nil
}

func (r *settingsRepo) GetByName(_ context.Context, name string) (*model.GameConfig, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	c, ok := r.st.games[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *settingsRepo) GetByNameForUpdate(ctx context.Context, name string) (*model.GameConfig, error) {
	c, err := r.GetByName(ctx, name)
	if err == nil {
		r.st.mu.Lock()
		r.locked = append(r.locked, name)
		r.st.mu.Unlock()
	}
	return c, err
}

func (r *settingsRepo) Update(_ context.Context, name string, upd model.SettingsUpdate) (*model.GameConfig, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	c, ok := r.st.games[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c = upd.Apply(c)
	c.UpdatedAt = time.Now()
	r.st.games[name] = c
	return &c, nil
}

func (r *settingsRepo) InsertDefaults(_ context.Context, seeds []model.GameSeed) (int, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	inserted := 0
	for _, s := range seeds {
		if _, ok := r.st.games[s.GameName]; ok {
			continue
		}
		r.st.games[s.GameName] = model.GameConfig{
			ID:         len(r.st.games) + 1,
			GameName:   s.GameName,
			Enabled:    s.Enabled,
			RTPPercent: s.RTPPercent,
			MinBet:     s.MinBet,
			MaxBet:     s.MaxBet,
		}
		inserted++
	}
	return inserted, nil
}

type historyRepo struct {
	st *store
}

func (r *historyRepo) Append(_ context.Context, rec *model.HistoryRecord) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.appendErr != nil {
		return r.st.appendErr
	}
	rec.ID = len(r.st.history) + 1
	rec.PlayedAt = time.Now()
	r.st.history = append(r.st.history, *rec)
	return nil
}

func (r *historyRepo) ListByUser(_ context.Context, userID int, limit uint64) ([]model.HistoryRecord, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	out := make([]model.HistoryRecord, 0)
	for i := len(r.st.history) - 1; i >= 0 && uint64(len(out)) < limit; i-- {
		if r.st.history[i].UserID == userID {
			out = append(out, r.st.history[i])
		}
	}
	return out, nil
}

type settlementCfg struct {
	timeout    time.Duration
	enforce    bool
	historyMax int
}

func (c settlementCfg) Timeout() time.Duration { return c.timeout }
func (c settlementCfg) EnforceBetLimits() bool { return c.enforce }
func (c settlementCfg) HistoryMaxLimit() int   { return c.historyMax }

// scriptedRand отдаёт заранее заданные значения по кругу
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) IntN(n int) int {
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

var errBoom = errors.New("boom")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
