package game

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"rtp_casino/internal/apperr"
	"rtp_casino/internal/logger"
	"rtp_casino/internal/model"
	"rtp_casino/internal/outcome"
	"rtp_casino/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var maxRTPPercent = decimal.NewFromInt(100)

// ListSettings - все игры, по имени
func (s *serv) ListSettings(ctx context.Context) ([]model.GameConfig, error) {
	configs, err := s.settingsRepo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return configs, nil
}

// UpdateSettings меняет разрешённые поля настроек игры.
// Неизвестные ключи игнорируются
func (s *serv) UpdateSettings(ctx context.Context, gameName string, updates map[string]json.RawMessage) (*model.GameConfig, error) {
	gameName = strings.TrimSpace(gameName)
	if gameName == "" {
		return nil, apperr.Validation("game_name required")
	}

	upd, err := parseSettingsUpdate(updates)
	if err != nil {
		return nil, err
	}

	var updated *model.GameConfig
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.settingsRepo.GetByNameForUpdate(ctx, gameName)
		if err != nil {
			return err
		}

		merged := upd.Apply(*current)
		if merged.MaxBet.IsPositive() && merged.MinBet.GreaterThan(merged.MaxBet) {
			return apperr.Validation("min_bet must not exceed max_bet")
		}

		updated, err = s.settingsRepo.Update(ctx, gameName, upd)
		return err
	})
	if err != nil {
		var ae *apperr.Error
		switch {
		case errors.As(err, &ae):
			return nil, ae
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperr.ErrGameNotFound
		default:
			return nil, apperr.Internal(err)
		}
	}

	logger.InfoCtx(ctx, "game settings updated",
		zap.String("game", updated.GameName),
		zap.Bool("enabled", updated.Enabled),
		zap.String("rtp_percent", updated.RTPPercent.String()),
		zap.String("min_bet", updated.MinBet.String()),
		zap.String("max_bet", updated.MaxBet.String()),
	)
	return updated, nil
}

func parseSettingsUpdate(updates map[string]json.RawMessage) (model.SettingsUpdate, error) {
	var upd model.SettingsUpdate

	if raw, ok := updates["rtp_percent"]; ok {
		v, err := parseAmount("rtp_percent", raw)
		if err != nil {
			return upd, err
		}
		if v.IsNegative() || v.GreaterThan(maxRTPPercent) {
			return upd, apperr.Validation("rtp_percent must be between 0 and 100")
		}
		upd.RTPPercent = &v
	}
	if raw, ok := updates["min_bet"]; ok {
		v, err := parseAmount("min_bet", raw)
		if err != nil {
			return upd, err
		}
		upd.MinBet = &v
	}
	if raw, ok := updates["max_bet"]; ok {
		v, err := parseAmount("max_bet", raw)
		if err != nil {
			return upd, err
		}
		upd.MaxBet = &v
	}
	if raw, ok := updates["enabled"]; ok {
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return upd, apperr.Validation("enabled must be a boolean")
		}
		upd.Enabled = &v
	}

	if upd.Empty() {
		return upd, apperr.Validation("No valid fields to update")
	}
	return upd, nil
}

// parseAmount принимает только JSON-число, строки и null отклоняются
func parseAmount(field string, raw json.RawMessage) (decimal.Decimal, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil || !isJSONNumber(raw) {
		return decimal.Zero, apperr.Validation(field + " must be a number")
	}
	v, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, apperr.Validation(field + " must be a number")
	}
	if v.IsNegative() {
		return decimal.Zero, apperr.Validation(field + " must not be negative")
	}
	if !model.IsWholeCents(v) {
		return decimal.Zero, apperr.Validation(field + " must have at most 2 decimal places")
	}
	return v, nil
}

func isJSONNumber(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s != "" && s[0] != '"' && s != "null"
}

// EnsureDefaults добавляет отсутствующие игры из config.yaml
func (s *serv) EnsureDefaults(ctx context.Context, seeds []model.GameSeed) error {
	for _, seed := range seeds {
		if _, known := outcome.ParseGame(seed.GameName); !known {
			logger.Warn("seeded game has no payout table, default table will be used",
				zap.String("game", seed.GameName))
		}
	}

	inserted, err := s.settingsRepo.InsertDefaults(ctx, seeds)
	if err != nil {
		return apperr.Internal(err)
	}
	logger.Info("default game settings ensured",
		zap.Int("configured", len(seeds)),
		zap.Int("inserted", inserted),
	)
	return nil
}
