package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// StartingBalance - баланс, который получает каждый новый пользователь
var StartingBalance = decimal.RequireFromString("2000.00")

type User struct {
	ID           int
	Username     string
	Password     string // открытый пароль, приходит только из запроса
	PasswordHash string
	Email        string
	Balance      decimal.Decimal
	IsAdmin      bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// AuthData - результат регистрации или входа
type AuthData struct {
	User  *User
	Token string
}
