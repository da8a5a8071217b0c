package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studyaid/internal/apperr"
	"studyaid/internal/logger"
	"studyaid/internal/models"
	"studyaid/internal/reqctx"
	"studyaid/internal/utils"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "test-secret-that-is-long-enough-32b"

type mockUsers struct {
	users map[string]*models.User
	err   error
}

func (m *mockUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	cp := *u
	return &cp, nil
}

func runAuth(t *testing.T, users UserLookup, header string) (*httptest.ResponseRecorder, *models.User) {
	t.Helper()
	var seen *models.User
	h := JWTAuth(testSecret, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = reqctx.GetUser(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/quizzes", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, seen
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("невалидный JSON: %v", err)
	}
	if body.Success {
		t.Fatal("success=true в ответе с ошибкой")
	}
	return body.Message
}

func TestJWTAuthValidToken(t *testing.T) {
	users := &mockUsers{users: map[string]*models.User{
		"u-1": {ID: "u-1", Email: "a@example.com", PasswordHash: "$2a$12$hash"},
	}}
	token, _ := utils.GenerateToken(testSecret, "u-1", time.Hour)

	rec, seen := runAuth(t, users, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if seen == nil || seen.ID != "u-1" {
		t.Fatalf("пользователь не попал в контекст: %+v", seen)
	}
	if seen.PasswordHash != "" {
		t.Fatal("хеш пароля попал в контекст")
	}
}

func TestJWTAuthRejections(t *testing.T) {
	users := &mockUsers{users: map[string]*models.User{"u-1": {ID: "u-1"}}}
	wrongSecret, _ := utils.GenerateToken("другой-секрет-другой-секрет-123456", "u-1", time.Hour)
	expired, _ := utils.GenerateToken(testSecret, "u-1", -time.Minute)
	absent, _ := utils.GenerateToken(testSecret, "ghost", time.Hour)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", "No token provided"},
		{"raw token without Bearer", absent, "No token provided"},
		{"wrong secret", "Bearer " + wrongSecret, "Invalid token. Please log in again."},
		{"garbage", "Bearer not.a.jwt", "Invalid token. Please log in again."},
		{"expired", "Bearer " + expired, "Token expired. Please log in again."},
		{"absent user", "Bearer " + absent, "User not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, seen := runAuth(t, users, tt.header)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d", rec.Code)
			}
			if seen != nil {
				t.Fatal("обработчик вызван")
			}
			if got := message(t, rec); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJWTAuthLookupFailure(t *testing.T) {
	users := &mockUsers{err: apperr.Storage("Failed to load user", errors.New("db down"))}
	token, _ := utils.GenerateToken(testSecret, "u-1", time.Hour)

	rec, _ := runAuth(t, users, "Bearer "+token)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := message(t, rec); got != "Server error during authentication." {
		t.Errorf("message = %q", got)
	}
}

func TestRecovererWritesEnvelope(t *testing.T) {
	core, observed := observer.New(zap.ErrorLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	h := RequestID(Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := message(t, rec); got != "Internal server error" {
		t.Errorf("message = %q", got)
	}
	if observed.FilterMessage("panic recovered").Len() != 1 {
		t.Fatal("паника не залогирована")
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("нет X-Request-ID")
	}
}

func TestRequestIDKeepsIncoming(t *testing.T) {
	var got string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = reqctx.GetRequestID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got != "abc-123" {
		t.Errorf("request id = %q", got)
	}
}
