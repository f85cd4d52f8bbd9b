package user_repo

import (
	"context"
	"strings"

	"rtp_casino/internal/model"
	"rtp_casino/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table           = "users"
	colID           = "id"
	colUsername     = "username"
	colPasswordHash = "password_hash"
	colEmail        = "email"
	colBalance      = "balance"
	colIsAdmin      = "is_admin"
	colCreatedAt    = "created_at"
	colLastLogin    = "last_login"
)

var userColumns = []string{
	colID, colUsername, colPasswordHash, "COALESCE(" + colEmail + ", '')",
	colBalance, colIsAdmin, colCreatedAt, colLastLogin,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	table  string
}

func NewUserRepository(dbc *pgxpool.Pool, schema string) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
		table:  repository.Table(schema, table),
	}
}

// conn - текущая транзакция из контекста или пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Balance, &u.IsAdmin, &u.CreatedAt, &u.LastLogin)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser - создает нового пользователя в БД.
// Возвращает созданную запись
func (r *repo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	sqlStr, args, err := insertUserQuery(r.table, user).ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanUser(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, repository.Wrap("create user", err)
	}
	return created, nil
}

func insertUserQuery(table string, user *model.User) sq.InsertBuilder {
	return repository.Builder.Insert(table).
		Columns(colUsername, colPasswordHash, colEmail, colBalance).
		Values(user.Username, user.PasswordHash, user.Email, user.Balance).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))
}

// ExistsByUsername - проверка, занят ли логин
func (r *repo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	sqlStr, args, err := repository.Builder.Select("1").
		From(r.table).
		Where(sq.Eq{colUsername: username}).
		Prefix("SELECT EXISTS(").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&exists); err != nil {
		return false, repository.Wrap("user exists", err)
	}
	return exists, nil
}

// GetUserByUsername - возвращает пользователя вместе с хэшем пароля
func (r *repo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getUser(ctx, "get user by username", sq.Eq{colUsername: username})
}

// GetUserByID - возвращает пользователя по ID
func (r *repo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return r.getUser(ctx, "get user by id", sq.Eq{colID: id})
}

func (r *repo) getUser(ctx context.Context, op string, where sq.Eq) (*model.User, error) {
	sqlStr, args, err := repository.Builder.Select(userColumns...).
		From(r.table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, repository.Wrap(op, err)
	}
	return user, nil
}

// TouchLastLogin - обновление времени последнего входа
func (r *repo) TouchLastLogin(ctx context.Context, id int) error {
	sqlStr, args, err := repository.Builder.Update(r.table).
		Set(colLastLogin, sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{colID: id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return repository.Wrap("touch last login", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.Wrap("touch last login", pgx.ErrNoRows)
	}
	return nil
}

// GetBalance - получение баланса пользователя по его ID
func (r *repo) GetBalance(ctx context.Context, id int) (decimal.Decimal, error) {
	return r.balance(ctx, "get balance", balanceQuery(r.table, id, false))
}

// GetBalanceForUpdate - баланс с блокировкой строки до конца транзакции.
// Вызывать только внутри txManager.Do
func (r *repo) GetBalanceForUpdate(ctx context.Context, id int) (decimal.Decimal, error) {
	return r.balance(ctx, "get balance for update", balanceQuery(r.table, id, true))
}

func balanceQuery(table string, id int, lock bool) sq.SelectBuilder {
	q := repository.Builder.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	return q
}

func (r *repo) balance(ctx context.Context, op string, q sq.SelectBuilder) (decimal.Decimal, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	if err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance); err != nil {
		return decimal.Zero, repository.Wrap(op, err)
	}
	return balance, nil
}

// AddBalance - атомарно прибавляет delta (может быть отрицательной) к балансу.
// Возвращает новый баланс
func (r *repo) AddBalance(ctx context.Context, id int, delta decimal.Decimal) (decimal.Decimal, error) {
	sqlStr, args, err := addBalanceQuery(r.table, id, delta).ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	if err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance); err != nil {
		return decimal.Zero, repository.Wrap("add balance", err)
	}
	return balance, nil
}

func addBalanceQuery(table string, id int, delta decimal.Decimal) sq.UpdateBuilder {
	return repository.Builder.Update(table).
		Set(colBalance, sq.Expr(colBalance+" + ?", delta)).
		Where(sq.Eq{colID: id}).
		Suffix("RETURNING " + colBalance)
}
