package service

import (
	"context"
	"encoding/json"

	"rtp_casino/internal/model"

	"github.com/shopspring/decimal"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, username, password string) (*model.AuthData, error)
	GetUser(ctx context.Context, userID int) (*model.User, error)
	UpdateBalance(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
}

type GameService interface {
	ListSettings(ctx context.Context) ([]model.GameConfig, error)
	Play(ctx context.Context, req model.SettlementRequest) (*model.PlayResult, error)
	History(ctx context.Context, userID int, limit int) ([]model.HistoryRecord, error)
	UpdateSettings(ctx context.Context, gameName string, updates map[string]json.RawMessage) (*model.GameConfig, error)
	// EnsureDefaults записывает настройки игр по умолчанию, не трогая существующие
	EnsureDefaults(ctx context.Context, seeds []model.GameSeed) error
}
