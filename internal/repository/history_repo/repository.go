package history_repo

import (
	"context"

	"rtp_casino/internal/model"
	"rtp_casino/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "game_history"
	colID         = "id"
	colUserID     = "user_id"
	colGameName   = "game_name"
	colBetAmount  = "bet_amount"
	colWinAmount  = "win_amount"
	colMultiplier = "multiplier"
	colResultData = "result_data"
	colPlayedAt   = "played_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	table  string
}

func NewHistoryRepository(dbc *pgxpool.Pool, schema string) repository.HistoryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
		table:  repository.Table(schema, table),
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// Append - добавляет запись о сыгранном раунде. Заполняет ID и PlayedAt
func (r *repo) Append(ctx context.Context, rec *model.HistoryRecord) error {
	sqlStr, args, err := appendQuery(r.table, rec).ToSql()
	if err != nil {
		return err
	}

	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&rec.ID, &rec.PlayedAt)
	if err != nil {
		return repository.Wrap("append history", err)
	}
	return nil
}

func appendQuery(table string, rec *model.HistoryRecord) sq.InsertBuilder {
	return repository.Builder.Insert(table).
		Columns(colUserID, colGameName, colBetAmount, colWinAmount, colMultiplier, colResultData).
		Values(rec.UserID, rec.GameName, rec.BetAmount, rec.WinAmount, rec.Multiplier, string(rec.ResultData)).
		Suffix("RETURNING " + colID + ", " + colPlayedAt)
}

// ListByUser - последние limit раундов пользователя, новые первыми
func (r *repo) ListByUser(ctx context.Context, userID int, limit uint64) ([]model.HistoryRecord, error) {
	sqlStr, args, err := listQuery(r.table, userID, limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, repository.Wrap("list history", err)
	}
	defer rows.Close()

	history := make([]model.HistoryRecord, 0, limit)
	for rows.Next() {
		var (
			rec  model.HistoryRecord
			data string
		)
		err = rows.Scan(&rec.ID, &rec.UserID, &rec.GameName, &rec.BetAmount, &rec.WinAmount, &rec.Multiplier, &data, &rec.PlayedAt)
		if err != nil {
			return nil, repository.Wrap("scan history", err)
		}
		rec.ResultData = []byte(data)
		history = append(history, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, repository.Wrap("list history", err)
	}
	return history, nil
}

func listQuery(table string, userID int, limit uint64) sq.SelectBuilder {
	return repository.Builder.Select(
		colID, colUserID, colGameName, colBetAmount, colWinAmount, colMultiplier,
		"COALESCE("+colResultData+"::text, 'null')", colPlayedAt,
	).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colPlayedAt+" DESC", colID+" DESC").
		Limit(limit)
}
