package auth

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request - тело POST /auth, поле action выбирает операцию
type Request struct {
	Action   string           `json:"action"`
	Username string           `json:"username"`
	Password string           `json:"password"`
	Email    string           `json:"email"`
	UserID   int              `json:"user_id"`
	Amount   *decimal.Decimal `json:"amount"` // знаковая сумма для update_balance
}

type UserResponse struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Balance   float64    `json:"balance"`
	IsAdmin   bool       `json:"is_admin"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

// AuthResponse - ответ register и login
type AuthResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

type GetUserResponse struct {
	User UserResponse `json:"user"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}
