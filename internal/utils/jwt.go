package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidClaims = errors.New("token payload has no user id")

// GenerateToken выпускает access-токен HS256 с id пользователя.
func GenerateToken(secret, userID string, duration time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": now.Add(duration).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken проверяет подпись (только HS256) и срок действия, возвращает id пользователя.
// Просроченный токен даёт ошибку, для которой errors.Is(err, jwt.ErrTokenExpired).
func ParseToken(secret, tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("token is not valid")
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", ErrInvalidClaims
	}
	return id, nil
}
