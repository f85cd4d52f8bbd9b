package game_settings_repo

import (
	"context"
	"strings"

	"rtp_casino/internal/model"
	"rtp_casino/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "game_settings"
	colID           = "id"
	colGameName     = "game_name"
	colEnabled      = "enabled"
	colRTPPercent   = "rtp_percent"
	colMinBet       = "min_bet"
	colMaxBet       = "max_bet"
	colCustomConfig = "custom_config"
	colUpdatedAt    = "updated_at"
)

var settingsColumns = []string{
	colID, colGameName, colEnabled, colRTPPercent, colMinBet, colMaxBet,
	"COALESCE(" + colCustomConfig + ", '{}'::jsonb)", colUpdatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	table  string
}

func NewGameSettingsRepository(dbc *pgxpool.Pool, schema string) repository.GameSettingsRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
		table:  repository.Table(schema, table),
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

func scanConfig(row pgx.Row) (*model.GameConfig, error) {
	var c model.GameConfig
	err := row.Scan(&c.ID, &c.GameName, &c.Enabled, &c.RTPPercent, &c.MinBet, &c.MaxBet, &c.CustomConfig, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List - настройки всех игр, отсортированные по имени
func (r *repo) List(ctx context.Context) ([]model.GameConfig, error) {
	sqlStr, args, err := repository.Builder.Select(settingsColumns...).
		From(r.table).
		OrderBy(colGameName).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, repository.Wrap("list game settings", err)
	}
	defer rows.Close()

	configs := make([]model.GameConfig, 0)
	for rows.Next() {
		c, err := scanConfig(rows)
		if err != nil {
			return nil, repository.Wrap("scan game settings", err)
		}
		configs = append(configs, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, repository.Wrap("list game settings", err)
	}
	return configs, nil
}

// GetByName - настройки одной игры. repository.ErrNotFound, если игры нет
func (r *repo) GetByName(ctx context.Context, name string) (*model.GameConfig, error) {
	return r.get(ctx, "get game settings", getQuery(r.table, name, false))
}

// GetByNameForUpdate - настройки с блокировкой строки до конца транзакции.
// Вызывать только внутри txManager.Do
func (r *repo) GetByNameForUpdate(ctx context.Context, name string) (*model.GameConfig, error) {
	return r.get(ctx, "get game settings for update", getQuery(r.table, name, true))
}

func getQuery(table, name string, lock bool) sq.SelectBuilder {
	q := repository.Builder.Select(settingsColumns...).
		From(table).
		Where(sq.Eq{colGameName: name})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	return q
}

func (r *repo) get(ctx context.Context, op string, q sq.SelectBuilder) (*model.GameConfig, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	c, err := scanConfig(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, repository.Wrap(op, err)
	}
	return c, nil
}

// Update - меняет только переданные поля и обновляет updated_at.
// Возвращает запись после изменения
func (r *repo) Update(ctx context.Context, name string, upd model.SettingsUpdate) (*model.GameConfig, error) {
	sqlStr, args, err := updateQuery(r.table, name, upd).ToSql()
	if err != nil {
		return nil, err
	}

	c, err := scanConfig(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, repository.Wrap("update game settings", err)
	}
	return c, nil
}

func updateQuery(table, name string, upd model.SettingsUpdate) sq.UpdateBuilder {
	q := repository.Builder.Update(table)
	if upd.RTPPercent != nil {
		q = q.Set(colRTPPercent, *upd.RTPPercent)
	}
	if upd.MinBet != nil {
		q = q.Set(colMinBet, *upd.MinBet)
	}
	if upd.MaxBet != nil {
		q = q.Set(colMaxBet, *upd.MaxBet)
	}
	if upd.Enabled != nil {
		q = q.Set(colEnabled, *upd.Enabled)
	}
	return q.Set(colUpdatedAt, sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{colGameName: name}).
		Suffix("RETURNING " + strings.Join(settingsColumns, ", "))
}

// InsertDefaults - добавляет игры, которых ещё нет в таблице.
// Существующие записи не трогает, чтобы не затирать правки администратора
func (r *repo) InsertDefaults(ctx context.Context, seeds []model.GameSeed) (int, error) {
	if len(seeds) == 0 {
		return 0, nil
	}

	sqlStr, args, err := insertDefaultsQuery(r.table, seeds).ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, repository.Wrap("insert default game settings", err)
	}
	return int(tag.RowsAffected()), nil
}

func insertDefaultsQuery(table string, seeds []model.GameSeed) sq.InsertBuilder {
	q := repository.Builder.Insert(table).
		Columns(colGameName, colEnabled, colRTPPercent, colMinBet, colMaxBet)
	for _, s := range seeds {
		q = q.Values(s.GameName, s.Enabled, s.RTPPercent, s.MinBet, s.MaxBet)
	}
	return q.Suffix("ON CONFLICT (" + colGameName + ") DO NOTHING")
}
