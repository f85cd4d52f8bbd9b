// Package token выдаёт маркер сессии после регистрации и входа.
package token

// Issuer выдаёт токен для пользователя
type Issuer interface {
	Issue(userID int) (string, error)
}
