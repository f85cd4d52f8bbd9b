package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"rtp_casino/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// JWTIssuer - подписанный HS256 access-токен
type JWTIssuer struct {
	secretKey []byte
	ttl       time.Duration
}

func NewJWTIssuer(secretKey []byte, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{secretKey: secretKey, ttl: ttl}
}

func (j *JWTIssuer) Issue(userID int) (string, error) {
	return GenerateAccessToken(userID, j.secretKey, j.ttl)
}

func GenerateAccessToken(userID int, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := model.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        strconv.Itoa(userID),
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

// VerifyToken проверяет подпись и срок JWT и возвращает claims.
// Пока не подключён ни к одному эндпоинту: токены выдаются при логине, но не проверяются
func VerifyToken(tokenStr string, secretKey []byte) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
