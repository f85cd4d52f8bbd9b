package auth

import (
	"context"
	"errors"
	"fmt"

	"rtp_casino/internal/apperr"
	"rtp_casino/internal/model"
	"rtp_casino/internal/repository"
	"rtp_casino/pkg/pass"
)

func (s *serv) Login(ctx context.Context, username, password string) (*model.AuthData, error) {
	if username == "" || password == "" {
		return nil, apperr.Validation("Username and password required")
	}

	// Получение пользователя из бд по логину
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, apperr.Internal(err)
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.PasswordHash, password) {
		return nil, apperr.ErrInvalidCredentials
	}

	if err = s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, apperr.Internal(err)
	}

	tok, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("issue token: %w", err))
	}

	return &model.AuthData{User: user, Token: tok}, nil
}
