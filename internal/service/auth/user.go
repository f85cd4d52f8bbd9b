package auth

import (
	"context"
	"errors"

	"rtp_casino/internal/apperr"
	"rtp_casino/internal/logger"
	"rtp_casino/internal/model"
	"rtp_casino/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GetUser - профиль пользователя по id
func (s *serv) GetUser(ctx context.Context, userID int) (*model.User, error) {
	if userID <= 0 {
		return nil, apperr.Validation("User ID required")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

// UpdateBalance прибавляет к балансу знаковую сумму и возвращает новый баланс
func (s *serv) UpdateBalance(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	if userID <= 0 {
		return decimal.Zero, apperr.Validation("User ID and amount required")
	}
	if !model.IsWholeCents(amount) {
		return decimal.Zero, apperr.Validation("amount must have at most 2 decimal places")
	}

	balance, err := s.userRepo.AddBalance(ctx, userID, amount)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return decimal.Zero, apperr.ErrUserNotFound
		case errors.Is(err, repository.ErrCheckViolation):
			return decimal.Zero, apperr.ErrInsufficientFunds
		default:
			return decimal.Zero, apperr.Internal(err)
		}
	}

	logger.InfoCtx(ctx, "balance updated",
		zap.Int("user_id", userID),
		zap.String("amount", amount.String()),
		zap.String("balance", balance.String()),
	)
	return balance, nil
}
