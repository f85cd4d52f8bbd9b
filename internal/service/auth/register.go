package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rtp_casino/internal/apperr"
	"rtp_casino/internal/logger"
	"rtp_casino/internal/model"
	"rtp_casino/internal/repository"
	"rtp_casino/pkg/pass"

	"go.uber.org/zap"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" || user.Password == "" {
		return nil, apperr.Validation("Username and password required")
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("hash password: %w", err))
	}
	user.PasswordHash = passwordHash
	user.Password = ""
	user.Balance = model.StartingBalance

	var created *model.User
	// Начало транзакции
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Проверка, что логин свободен
		exists, err := s.userRepo.ExistsByUsername(ctx, user.Username)
		if err != nil {
			return err
		}
		if exists {
			return apperr.ErrUsernameTaken
		}

		// 2. Создать пользователя в бд
		created, err = s.userRepo.CreateUser(ctx, user)
		return err
	})
	if err != nil {
		// гонка двух регистраций ловится уникальным индексом
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.ErrUsernameTaken
		}
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}

	tok, err := s.issuer.Issue(created.ID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("issue token: %w", err))
	}

	logger.InfoCtx(ctx, "user registered", zap.Int("user_id", created.ID), zap.String("username", created.Username))

	return &model.AuthData{User: created, Token: tok}, nil
}
