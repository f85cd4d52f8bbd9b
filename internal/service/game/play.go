package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"rtp_casino/internal/apperr"
	"rtp_casino/internal/logger"
	"rtp_casino/internal/metrics"
	"rtp_casino/internal/model"
	"rtp_casino/internal/repository"

	"go.uber.org/zap"
)

// Play разыгрывает ставку: чтение настроек, блокировка баланса, исход,
// изменение баланса и запись истории выполняются в одной транзакции
func (s *serv) Play(ctx context.Context, req model.SettlementRequest) (*model.PlayResult, error) {
	req.GameName = strings.TrimSpace(req.GameName)
	if err := validatePlay(req); err != nil {
		metrics.RecordRejection(apperr.KindOf(err).String())
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout())
	defer cancel()

	var result model.PlayResult
	err := s.txManager.Do(txCtx, func(ctx context.Context) error {
		// 1. Настройки игры
		cfg, err := s.settingsRepo.GetByName(ctx, req.GameName)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.ErrGameUnavailable
			}
			return err
		}
		if !cfg.Enabled {
			return apperr.ErrGameUnavailable
		}

		// 2. Баланс под блокировкой строки до конца транзакции
		balance, err := s.userRepo.GetBalanceForUpdate(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.ErrUserNotFound
			}
			return err
		}
		if balance.LessThan(req.BetAmount) {
			return apperr.ErrInsufficientFunds
		}

		if s.cfg.EnforceBetLimits() {
			if err = checkBetLimits(*cfg, req); err != nil {
				return err
			}
		}

		// 3. Исход раунда
		res := s.engine.Settle(req.GameName, req.BetAmount, cfg.RTPFraction(), req.GameData)
		if res.Fallback {
			logger.WarnCtx(ctx, "game is not in the payout catalog, default table used",
				zap.String("game", req.GameName))
		}

		// 4. balance = balance - bet + payout
		if _, err = s.userRepo.AddBalance(ctx, req.UserID, res.Payout.Sub(req.BetAmount)); err != nil {
			return err
		}

		// 5. История
		data, err := json.Marshal(res.Data)
		if err != nil {
			return fmt.Errorf("marshal result data: %w", err)
		}
		err = s.historyRepo.Append(ctx, &model.HistoryRecord{
			UserID:     req.UserID,
			GameName:   req.GameName,
			BetAmount:  req.BetAmount,
			WinAmount:  res.Payout,
			Multiplier: res.Multiplier,
			ResultData: data,
		})
		if err != nil {
			return err
		}

		// 6. Новый баланс
		newBalance, err := s.userRepo.GetBalance(ctx, req.UserID)
		if err != nil {
			return err
		}

		result = model.PlayResult{Balance: newBalance, Outcome: res}
		return nil
	})
	if err != nil {
		return nil, s.playError(ctx, txCtx, req, err)
	}

	metrics.RecordSettlement(req.GameName, result.Outcome.Won, result.Outcome.Fallback, req.BetAmount, result.Outcome.Payout)
	logger.InfoCtx(ctx, "round settled",
		zap.Int("user_id", req.UserID),
		zap.String("game", req.GameName),
		zap.String("bet", req.BetAmount.String()),
		zap.Bool("won", result.Outcome.Won),
		zap.String("multiplier", result.Outcome.Multiplier.String()),
		zap.String("payout", result.Outcome.Payout.String()),
		zap.String("balance", result.Balance.String()),
	)

	return &result, nil
}

func validatePlay(req model.SettlementRequest) error {
	if req.UserID <= 0 || req.GameName == "" || req.BetAmount.IsZero() {
		return apperr.Validation("user_id, game_name, and bet_amount required")
	}
	if req.BetAmount.IsNegative() {
		return apperr.Validation("bet_amount must be positive")
	}
	if !model.IsWholeCents(req.BetAmount) {
		return apperr.Validation("bet_amount must have at most 2 decimal places")
	}
	return nil
}

func checkBetLimits(cfg model.GameConfig, req model.SettlementRequest) error {
	if req.BetAmount.LessThan(cfg.MinBet) {
		return apperr.Validation(fmt.Sprintf("Minimum bet is %s", cfg.MinBet.StringFixed(2)))
	}
	if cfg.MaxBet.IsPositive() && req.BetAmount.GreaterThan(cfg.MaxBet) {
		return apperr.Validation(fmt.Sprintf("Maximum bet is %s", cfg.MaxBet.StringFixed(2)))
	}
	return nil
}

// playError приводит ошибку транзакции к apperr и учитывает отказ
func (s *serv) playError(ctx, txCtx context.Context, req model.SettlementRequest, err error) error {
	var ae *apperr.Error
	switch {
	case errors.As(err, &ae):
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(txCtx.Err(), context.DeadlineExceeded):
		ae = apperr.Retryable(fmt.Errorf("settlement timed out: %w", err))
	default:
		ae = apperr.Internal(err)
	}

	metrics.RecordRejection(ae.Kind.String())
	if ae.Kind == apperr.KindInternal {
		logger.ErrorCtx(ctx, "settlement failed",
			zap.Int("user_id", req.UserID),
			zap.String("game", req.GameName),
			zap.Bool("retryable", ae.Retryable),
			zap.Error(err),
		)
	}
	return ae
}
