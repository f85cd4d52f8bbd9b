package game

import (
	"rtp_casino/internal/config"
	"rtp_casino/internal/outcome"
	"rtp_casino/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

const defaultHistoryLimit = 50

type serv struct {
	txManager    trm.Manager
	settingsRepo repository.GameSettingsRepository
	userRepo     repository.UserRepository
	historyRepo  repository.HistoryRepository
	engine       *outcome.Engine
	cfg          config.SettlementConfig
}

func NewGameService(
	txManager trm.Manager,
	settingsRepo repository.GameSettingsRepository,
	userRepo repository.UserRepository,
	historyRepo repository.HistoryRepository,
	engine *outcome.Engine,
	cfg config.SettlementConfig,
) *serv {
	return &serv{
		txManager:    txManager,
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		historyRepo:  historyRepo,
		engine:       engine,
		cfg:          cfg,
	}
}
