package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, ErrNotFound},
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}, ErrDuplicate},
		{"check", &pgconn.PgError{Code: "23514", ConstraintName: "users_balance_check"}, ErrCheckViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap("op", tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("Wrap() = %v, want %v", got, tt.want)
			}
		})
	}

	if Wrap("op", nil) != nil {
		t.Error("nil stays nil")
	}

	other := errors.New("conn reset")
	if got := Wrap("get balance", other); !errors.Is(got, other) || got.Error() != "get balance: conn reset" {
		t.Errorf("Wrap() = %v", got)
	}
}

func TestTable(t *testing.T) {
	if got := Table("casino", "users"); got != "casino.users" {
		t.Errorf("Table() = %q", got)
	}
	if got := Table("", "users"); got != "users" {
		t.Errorf("Table() = %q", got)
	}
}
