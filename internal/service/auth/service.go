package auth

import (
	"rtp_casino/internal/repository"
	"rtp_casino/pkg/token"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	issuer    token.Issuer
}

func NewService(txManager trm.Manager, userRepo repository.UserRepository, issuer token.Issuer) *serv {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		issuer:    issuer,
	}
}
