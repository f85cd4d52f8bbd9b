package repository

import (
	"context"
	"errors"
	"time"

	"rtp_casino/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

// ErrNotFound - запись не найдена
var ErrNotFound = errors.New("record not found")

// ErrDuplicate - нарушено ограничение уникальности
var ErrDuplicate = errors.New("duplicate record")

// ErrCheckViolation - нарушено CHECK-ограничение (например, отрицательный баланс)
var ErrCheckViolation = errors.New("check constraint violation")

// Builder - squirrel с плейсхолдерами PostgreSQL ($1, $2, ...)
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Table возвращает имя таблицы с учётом схемы
func Table(schema, name string) string {
	if schema == "" {
		return name
	}
	return schema + "." + name
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	TouchLastLogin(ctx context.Context, id int) error

	GetBalance(ctx context.Context, id int) (decimal.Decimal, error)
	GetBalanceForUpdate(ctx context.Context, id int) (decimal.Decimal, error)
	AddBalance(ctx context.Context, id int, delta decimal.Decimal) (decimal.Decimal, error)
}

type GameSettingsRepository interface {
	List(ctx context.Context) ([]model.GameConfig, error)
	GetByName(ctx context.Context, name string) (*model.GameConfig, error)
	// GetByNameForUpdate блокирует строку игры до конца транзакции
	GetByNameForUpdate(ctx context.Context, name string) (*model.GameConfig, error)
	Update(ctx context.Context, name string, upd model.SettingsUpdate) (*model.GameConfig, error)
	InsertDefaults(ctx context.Context, seeds []model.GameSeed) (inserted int, err error)
}

type HistoryRepository interface {
	Append(ctx context.Context, rec *model.HistoryRecord) error
	ListByUser(ctx context.Context, userID int, limit uint64) ([]model.HistoryRecord, error)
}

type RateLimitRepository interface {
	// Hit увеличивает счётчик ключа в окне window и возвращает новое значение
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}
