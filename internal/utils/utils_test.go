package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-that-is-long-enough-32b"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-1", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	id, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if id != "user-1" {
		t.Errorf("id = %q", id)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken(testSecret, "user-1", time.Hour)

	if _, err := ParseToken("другой-секрет", token); err == nil {
		t.Fatal("токен с чужой подписью принят")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, _ := GenerateToken(testSecret, "user-1", -time.Minute)

	_, err := ParseToken(testSecret, token)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("ожидалась jwt.ErrTokenExpired, получено %v", err)
	}
}

func TestParseTokenRejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.MapClaims{"id": "user-1", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Fatal("HS512 токен принят")
	}
}

func TestParseTokenWithoutID(t *testing.T) {
	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))

	if _, err := ParseToken(testSecret, token); !errors.Is(err, ErrInvalidClaims) {
		t.Fatalf("ожидалась ErrInvalidClaims, получено %v", err)
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "secret123" {
		t.Fatal("пароль сохранён в открытом виде")
	}
	if !CheckPasswordHash("secret123", hash) {
		t.Error("верный пароль не прошёл проверку")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("неверный пароль прошёл проверку")
	}
}
