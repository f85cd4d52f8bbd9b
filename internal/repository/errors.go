package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// Wrap приводит ошибки pgx к ошибкам пакета repository и добавляет контекст операции
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, ErrDuplicate, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%s: %w: %s", op, ErrCheckViolation, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
